package models

import "time"

// GatepassValidity is how long a generated gate pass stays valid.
const GatepassValidity = 48 * time.Hour

// GatepassStatusActive is the only status a gate pass is ever written
// with: passes are append-only and never revoked here.
const GatepassStatusActive = "ACTIVE"

// GeneratedBy identifies the voice agent as the author of gate passes
// and service requests.
const GeneratedBy = "AISHA_AI_AGENT"

// Gatepass is an issued electronic gate pass. It snapshots the
// container's charges, type, size, weight and location at generation
// time so the pass stays meaningful even after the container moves.
type Gatepass struct {
	Context string `json:"@context,omitempty"`
	DocType string `json:"@type,omitempty"`

	// ID is the generated gate-pass id ("GP<unix>-<suffix>"), also the
	// CouchDB document _id.
	ID  string `json:"id" couchdb:"_id"`
	Rev string `json:"_rev,omitempty" couchdb:"_rev"`

	ContainerNumber string `json:"containerNumber" couchdb:"required,index"`
	HaulierCompany  string `json:"haulierCompany"`
	TruckNumber     string `json:"truckNumber"`

	GeneratedAt time.Time `json:"generatedAt"`

	// ValidUntil is GeneratedAt plus GatepassValidity
	ValidUntil time.Time `json:"validUntil"`

	Status      string  `json:"status"`
	GeneratedBy string  `json:"generatedBy"`
	Charges     float64 `json:"charges"`

	ContainerDetails GatepassContainerDetails `json:"containerDetails"`
}

// GatepassContainerDetails is the container snapshot embedded in a
// gate pass.
type GatepassContainerDetails struct {
	Type     string `json:"type"`
	Size     string `json:"size"`
	Weight   string `json:"weight"`
	Location string `json:"location"`
}
