package models

import "time"

// SSRStatusSubmitted is the status every new special service request is
// written with. Requests are never mutated after submission.
const SSRStatusSubmitted = "SUBMITTED"

// SSRProcessingTime is the fixed processing-time estimate quoted to the
// caller on every submission.
const SSRProcessingTime = "24-48 hours"

// SSR is a submitted special service request (storage extension,
// inter-terminal transfer, and so on). The ssrType is free-form
// categorical and requestDetails is free text.
type SSR struct {
	Context string `json:"@context,omitempty"`
	DocType string `json:"@type,omitempty"`

	// ID is the generated request id ("SSR<unix>-<suffix>"), also the
	// CouchDB document _id.
	ID  string `json:"id" couchdb:"_id"`
	Rev string `json:"_rev,omitempty" couchdb:"_rev"`

	ContainerNumber string `json:"containerNumber" couchdb:"required,index"`
	SSRType         string `json:"ssrType"`
	RequestDetails  string `json:"requestDetails"`

	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
	SubmittedBy string    `json:"submittedBy"`

	ExpectedProcessingTime string `json:"expectedProcessingTime"`
}
