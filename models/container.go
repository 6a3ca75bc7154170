package models

import "time"

// Container lifecycle statuses with special handling in the tool
// operations layer. Any other status value is accepted as-is but never
// makes the container eligible for pickup.
const (
	StatusDischarged           = "DISCHARGED"
	StatusAvailableForDelivery = "AVAILABLE_FOR_DELIVERY"
	StatusGatedOut             = "GATED_OUT"
)

// Clearance states checked during gate-pass eligibility.
const (
	EDOReleased    = "RELEASED"
	CustomsCleared = "CLEARED"
)

// Container represents a shipping container tracked by the terminal.
// It follows the repository's CouchDB document conventions: the id
// maps to the document _id ("container:<containerNumber>") and @type
// is always "Container".
//
// The descriptive and billing fields (charges, weight, size, consignee,
// shipping agent, port of loading) are reference data loaded at seed
// time and never mutated by the tool operations.
type Container struct {
	// Context is the JSON-LD @context URL (typically https://schema.org)
	Context string `json:"@context,omitempty"`

	// DocType is the document @type ("Container")
	DocType string `json:"@type,omitempty"`

	// ID is the document identifier (maps to CouchDB _id)
	ID string `json:"id" couchdb:"_id"`

	// Rev is the CouchDB document revision
	Rev string `json:"_rev,omitempty" couchdb:"_rev"`

	// ContainerNumber is the unique container key (e.g. ABCD1234567)
	ContainerNumber string `json:"containerNumber" couchdb:"required,index"`

	// Status is the current lifecycle state
	Status string `json:"status" couchdb:"index"`

	// Location is the yard position (e.g. "Block A-15")
	Location string `json:"location"`

	VesselName    string `json:"vesselName"`
	VoyageNumber  string `json:"voyageNumber"`
	ArrivalDate   string `json:"arrivalDate,omitempty"`
	DischargeDate string `json:"dischargeDate,omitempty"`
	ContainerType string `json:"containerType"`
	Size          string `json:"size"`
	Weight        string `json:"weight"`

	// AvailableForPickup is derived from Status on every update and is
	// never set independently: true iff Status is DISCHARGED or
	// AVAILABLE_FOR_DELIVERY, with GATED_OUT forcing false.
	AvailableForPickup bool `json:"availableForPickup"`

	Charges       float64 `json:"charges"`
	Currency      string  `json:"currency"`
	EDOStatus     string  `json:"edoStatus"`
	CustomsStatus string  `json:"customsStatus"`

	// ActiveGatepass references the most recently generated gate pass.
	// Overwritten, not appended, by each successful generation.
	ActiveGatepass string `json:"activeGatepass,omitempty"`

	// GateOutTime is stamped when the container status becomes GATED_OUT
	GateOutTime *time.Time `json:"gateOutTime,omitempty"`

	LastUpdated time.Time `json:"lastUpdated"`

	Consignee     string `json:"consignee"`
	ShippingAgent string `json:"shippingAgent"`
	PortOfLoading string `json:"portOfLoading"`

	// SSRHistory holds the ids of all special service requests ever
	// submitted for this container, oldest first. Append-only.
	SSRHistory []string `json:"ssrHistory"`
}

// ContainerPatch is a partial container update applied by a store.
// Only non-nil fields are merged; the store always stamps lastUpdated.
type ContainerPatch struct {
	Status             *string
	Location           *string
	AvailableForPickup *bool
	GateOutTime        *time.Time
	ActiveGatepass     *string
}

// PickupEligible reports whether the given status makes a container
// available for pickup.
func PickupEligible(status string) bool {
	return status == StatusDischarged || status == StatusAvailableForDelivery
}

// ContainerDocID returns the CouchDB document id for a container number.
func ContainerDocID(number string) string {
	return "container:" + number
}
