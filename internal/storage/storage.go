// Package storage provides the CouchDB-backed store layer for Portside.
// It wraps the eve.evalgo.org/db library with type-safe operations for
// container, vessel, gate-pass and service-request documents.
//
// All documents carry a JSON-LD @context/@type pair and are keyed by
// natural ids: "container:<number>", "vessel:<voyage>", or the
// generated gate-pass / SSR id. Partial updates are read-merge-write
// with a single conflict retry; there is no cross-document transaction.
package storage

import (
	"fmt"
	"log"

	"eve.evalgo.org/db"

	"portside/internal/config"
)

// Document @type values used in Mango queries.
const (
	docContext    = "https://schema.org"
	typeContainer = "Container"
	typeVessel    = "Vessel"
	typeGatepass  = "Gatepass"
	typeSSR       = "SpecialServiceRequest"
)

// Storage provides the CouchDB store for Portside. It implements the
// store interfaces of the tool operations layer.
type Storage struct {
	service *db.CouchDBService
	config  *config.Config
}

// debugLog logs a message only if debug mode is enabled in config
func (s *Storage) debugLog(format string, args ...interface{}) {
	if s.config.Server.Debug {
		log.Printf(format, args...)
	}
}

// New creates a new Storage instance from the application
// configuration. It initializes the CouchDB connection, ensures the
// database exists and creates the query indexes.
func New(cfg *config.Config) (*Storage, error) {
	couchConfig := db.CouchDBConfig{
		URL:             cfg.CouchDB.URL,
		Database:        cfg.CouchDB.Database,
		Username:        cfg.CouchDB.Username,
		Password:        cfg.CouchDB.Password,
		CreateIfMissing: true,
	}

	service, err := db.NewCouchDBServiceFromConfig(couchConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create CouchDB service: %w", err)
	}

	storage := &Storage{
		service: service,
		config:  cfg,
	}

	if err := storage.initializeSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize database schema: %w", err)
	}

	return storage, nil
}

// initializeSchema creates the indexes backing the list queries.
func (s *Storage) initializeSchema() error {
	indexes := []db.Index{
		{
			Name:   "containers-number",
			Fields: []string{"@type", "containerNumber"},
			Type:   "json",
		},
		{
			Name:   "vessels-voyage",
			Fields: []string{"@type", "voyageNumber"},
			Type:   "json",
		},
		{
			Name:   "records-by-type",
			Fields: []string{"@type"},
			Type:   "json",
		},
	}

	for _, index := range indexes {
		if err := s.service.CreateIndex(index); err != nil {
			// Index might already exist
			fmt.Printf("Warning: failed to create index %s: %v\n", index.Name, err)
		}
	}

	return nil
}

// Close closes the storage connection.
func (s *Storage) Close() error {
	return s.service.Close()
}

// isNotFound reports whether err is a CouchDB 404.
func isNotFound(err error) bool {
	couchErr, ok := err.(*db.CouchDBError)
	return ok && couchErr.IsNotFound()
}

// isConflict reports whether err is a CouchDB revision conflict.
func isConflict(err error) bool {
	couchErr, ok := err.(*db.CouchDBError)
	return ok && couchErr.IsConflict()
}
