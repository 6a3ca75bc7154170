package storage

import (
	"fmt"
	"sort"

	"eve.evalgo.org/db"

	"portside/models"
)

// InsertGatepass appends an issued gate pass to the ledger. Gate passes
// are append-only: no update or delete exists here.
func (s *Storage) InsertGatepass(gp *models.Gatepass) error {
	if gp.Context == "" {
		gp.Context = docContext
	}
	if gp.DocType == "" {
		gp.DocType = typeGatepass
	}

	if _, err := s.service.SaveGenericDocument(gp); err != nil {
		return fmt.Errorf("failed to insert gatepass %s: %w", gp.ID, err)
	}
	return nil
}

// ListGatepasses retrieves all issued gate passes, oldest first.
func (s *Storage) ListGatepasses() ([]*models.Gatepass, error) {
	query := db.NewQueryBuilder().
		Where("@type", "$eq", typeGatepass).
		Build()

	passes, err := db.FindTyped[models.Gatepass](s.service, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list gatepasses: %w", err)
	}

	result := make([]*models.Gatepass, len(passes))
	for i := range passes {
		result[i] = &passes[i]
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].GeneratedAt.Before(result[j].GeneratedAt)
	})

	return result, nil
}

// InsertSSR appends a submitted service request to the ledger.
func (s *Storage) InsertSSR(ssr *models.SSR) error {
	if ssr.Context == "" {
		ssr.Context = docContext
	}
	if ssr.DocType == "" {
		ssr.DocType = typeSSR
	}

	if _, err := s.service.SaveGenericDocument(ssr); err != nil {
		return fmt.Errorf("failed to insert SSR %s: %w", ssr.ID, err)
	}
	return nil
}

// ListSSRs retrieves all submitted service requests, oldest first.
func (s *Storage) ListSSRs() ([]*models.SSR, error) {
	query := db.NewQueryBuilder().
		Where("@type", "$eq", typeSSR).
		Build()

	ssrs, err := db.FindTyped[models.SSR](s.service, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list SSRs: %w", err)
	}

	result := make([]*models.SSR, len(ssrs))
	for i := range ssrs {
		result[i] = &ssrs[i]
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].SubmittedAt.Before(result[j].SubmittedAt)
	})

	return result, nil
}
