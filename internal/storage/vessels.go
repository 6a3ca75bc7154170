package storage

import (
	"fmt"
	"sort"
	"strings"

	"eve.evalgo.org/db"

	"portside/models"
)

// FindVesselByName matches a case-insensitive substring of the vessel
// name and returns the first match in stored (voyage-key) order. When
// several vessels share the substring the lowest voyage key wins; the
// choice is deterministic, not meaningful.
func (s *Storage) FindVesselByName(name string) (*models.Vessel, error) {
	vessels, err := s.ListVessels()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(name)
	for _, v := range vessels {
		if strings.Contains(strings.ToLower(v.VesselName), needle) {
			return v, nil
		}
	}
	return nil, models.ErrNotFound
}

// FindVesselByVoyage matches the voyage code exactly after upper-casing
// the input.
func (s *Storage) FindVesselByVoyage(code string) (*models.Vessel, error) {
	var vessel models.Vessel
	err := s.service.GetGenericDocument(models.VesselDocID(strings.ToUpper(code)), &vessel)
	if err != nil {
		if isNotFound(err) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vessel %s: %w", code, err)
	}
	return &vessel, nil
}

// ListVessels retrieves all vessels ordered by voyage key.
func (s *Storage) ListVessels() ([]*models.Vessel, error) {
	query := db.NewQueryBuilder().
		Where("@type", "$eq", typeVessel).
		Build()

	vessels, err := db.FindTyped[models.Vessel](s.service, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list vessels: %w", err)
	}

	result := make([]*models.Vessel, len(vessels))
	for i := range vessels {
		result[i] = &vessels[i]
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].VoyageNumber < result[j].VoyageNumber
	})

	return result, nil
}

// SaveVessel writes a vessel document, filling in the document identity
// fields when absent. Used by seeding; vessels are read-only afterwards.
func (s *Storage) SaveVessel(vessel *models.Vessel) error {
	if vessel.Context == "" {
		vessel.Context = docContext
	}
	if vessel.DocType == "" {
		vessel.DocType = typeVessel
	}
	if vessel.ID == "" {
		vessel.ID = models.VesselDocID(vessel.VoyageNumber)
	}

	_, err := s.service.SaveGenericDocument(vessel)
	if err != nil && isConflict(err) {
		existing, getErr := s.FindVesselByVoyage(vessel.VoyageNumber)
		if getErr == nil {
			vessel.Rev = existing.Rev
			_, err = s.service.SaveGenericDocument(vessel)
		}
	}
	return err
}
