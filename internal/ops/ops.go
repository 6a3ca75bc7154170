// Package ops implements the tool operations layer: the five operations
// the voice agent invokes against the terminal systems. Each operation
// reads from a store, applies the container-lifecycle and gate-pass
// eligibility rules, writes back if applicable, and emits exactly one
// event to the broadcaster on success. Failed operations emit nothing.
//
// The package owns no state of its own beyond the current request: all
// records live in the injected stores, and the broadcaster owns the
// subscriber set.
package ops

import (
	"time"

	"portside/models"
)

// ContainerStore holds container records keyed by container number.
// Absent records surface models.ErrNotFound. Each call is atomic at the
// single-record granularity; concurrent updates to the same container
// are last-writer-wins.
type ContainerStore interface {
	FindContainer(number string) (*models.Container, error)
	UpdateContainer(number string, patch models.ContainerPatch) (*models.Container, error)
	AppendContainerSSR(number, ssrID string) (*models.Container, error)
	ListContainers() ([]*models.Container, error)
}

// VesselStore holds the vessel schedule. Read-only after seeding.
type VesselStore interface {
	// FindVesselByName matches case-insensitively on a name substring
	// and returns the first match in stored order.
	FindVesselByName(name string) (*models.Vessel, error)

	// FindVesselByVoyage matches the voyage code exactly after
	// upper-casing the input.
	FindVesselByVoyage(code string) (*models.Vessel, error)

	ListVessels() ([]*models.Vessel, error)
}

// GatepassLedger is the append-only record of issued gate passes.
type GatepassLedger interface {
	InsertGatepass(gp *models.Gatepass) error
	ListGatepasses() ([]*models.Gatepass, error)
}

// SSRLedger is the append-only record of submitted service requests.
type SSRLedger interface {
	InsertSSR(ssr *models.SSR) error
	ListSSRs() ([]*models.SSR, error)
}

// Broadcaster fans an event out to all live dashboard subscribers.
// Delivery is fire-and-forget: Publish never blocks on or reports
// individual subscriber failures.
type Broadcaster interface {
	Publish(event Event)
}

// Stores bundles the four store dependencies of the service. A single
// backend type usually implements all of them.
type Stores struct {
	Containers ContainerStore
	Vessels    VesselStore
	Gatepasses GatepassLedger
	SSRs       SSRLedger
}

// Service is the tool operations layer.
type Service struct {
	containers ContainerStore
	vessels    VesselStore
	gatepasses GatepassLedger
	ssrs       SSRLedger
	events     Broadcaster

	// now is the clock used for id synthesis and timestamps
	now func() time.Time
}

// NewService creates the operations service over the given stores and
// broadcaster.
func NewService(stores Stores, events Broadcaster) *Service {
	return &Service{
		containers: stores.Containers,
		vessels:    stores.Vessels,
		gatepasses: stores.Gatepasses,
		ssrs:       stores.SSRs,
		events:     events,
		now:        func() time.Time { return time.Now().UTC() },
	}
}
