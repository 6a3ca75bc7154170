package models

import "time"

// Vessel represents a vessel call at the terminal. Vessels are seeded
// at initialization and read-only afterwards: no tool operation mutates
// a vessel schedule.
type Vessel struct {
	Context string `json:"@context,omitempty"`
	DocType string `json:"@type,omitempty"`

	// ID is the document identifier ("vessel:<voyageNumber>")
	ID  string `json:"id" couchdb:"_id"`
	Rev string `json:"_rev,omitempty" couchdb:"_rev"`

	// VesselName is the unique vessel name (e.g. "MSC MAYA")
	VesselName string `json:"vesselName" couchdb:"required,index"`

	IMONumber string `json:"imoNumber"`

	// VoyageNumber is the unique voyage code, stored upper-case
	VoyageNumber string `json:"voyageNumber" couchdb:"required,index"`

	ETA    time.Time `json:"eta"`
	ETD    time.Time `json:"etd"`
	Berth  string    `json:"berth"`
	Status string    `json:"status"`
	Agent  string    `json:"agent"`
}

// VesselDocID returns the CouchDB document id for a voyage number.
func VesselDocID(voyage string) string {
	return "vessel:" + voyage
}
