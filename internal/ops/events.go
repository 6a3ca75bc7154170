package ops

import (
	"time"

	"portside/models"
)

// EventType identifies the tool operation an event originates from.
type EventType string

const (
	EventContainerQueried  EventType = "containerQueried"
	EventContainerUpdated  EventType = "containerUpdated"
	EventGatepassGenerated EventType = "gatepassGenerated"
	EventVesselQueried     EventType = "vesselQueried"
	EventSSRSubmitted      EventType = "ssrSubmitted"
)

// Actions carried alongside the event type for dashboard display.
const (
	ActionStatusQuery         = "STATUS_QUERY"
	ActionStatusUpdate        = "STATUS_UPDATE"
	ActionGatepassGenerated   = "GATEPASS_GENERATED"
	ActionVesselScheduleQuery = "VESSEL_SCHEDULE_QUERY"
	ActionSSRSubmitted        = "SSR_SUBMITTED"
)

// Event is the envelope pushed to every connected dashboard when a tool
// operation succeeds. Events are ephemeral: they are never persisted.
// The broadcaster stamps Timestamp at fan-out time.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`

	ContainerNumber string `json:"containerNumber,omitempty"`
	VesselName      string `json:"vesselName,omitempty"`
	OldStatus       string `json:"oldStatus,omitempty"`
	NewStatus       string `json:"newStatus,omitempty"`

	Data     any              `json:"data,omitempty"`
	Gatepass *models.Gatepass `json:"gatepass,omitempty"`
	SSR      *models.SSR      `json:"ssr,omitempty"`
}
