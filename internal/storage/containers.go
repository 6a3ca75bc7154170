package storage

import (
	"fmt"
	"sort"
	"time"

	"eve.evalgo.org/db"

	"portside/models"
)

// FindContainer retrieves a container by its container number.
func (s *Storage) FindContainer(number string) (*models.Container, error) {
	var container models.Container
	err := s.service.GetGenericDocument(models.ContainerDocID(number), &container)
	if err != nil {
		if isNotFound(err) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get container %s: %w", number, err)
	}
	return &container, nil
}

// UpdateContainer merges the set patch fields into the stored document
// and stamps lastUpdated. On a revision conflict the document is
// re-read and the patch re-applied once: single-record read-then-write
// atomicity, last-writer-wins across concurrent updates.
func (s *Storage) UpdateContainer(number string, patch models.ContainerPatch) (*models.Container, error) {
	return s.mutateContainer(number, func(c *models.Container) {
		if patch.Status != nil {
			c.Status = *patch.Status
		}
		if patch.Location != nil {
			c.Location = *patch.Location
		}
		if patch.AvailableForPickup != nil {
			c.AvailableForPickup = *patch.AvailableForPickup
		}
		if patch.GateOutTime != nil {
			t := *patch.GateOutTime
			c.GateOutTime = &t
		}
		if patch.ActiveGatepass != nil {
			c.ActiveGatepass = *patch.ActiveGatepass
		}
	})
}

// AppendContainerSSR appends a service-request id to the container's
// history without touching prior entries.
func (s *Storage) AppendContainerSSR(number, ssrID string) (*models.Container, error) {
	return s.mutateContainer(number, func(c *models.Container) {
		c.SSRHistory = append(c.SSRHistory, ssrID)
	})
}

// ListContainers retrieves all containers ordered by container number.
func (s *Storage) ListContainers() ([]*models.Container, error) {
	query := db.NewQueryBuilder().
		Where("@type", "$eq", typeContainer).
		Build()

	containers, err := db.FindTyped[models.Container](s.service, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}

	result := make([]*models.Container, len(containers))
	for i := range containers {
		result[i] = &containers[i]
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ContainerNumber < result[j].ContainerNumber
	})

	return result, nil
}

// SaveContainer writes a container document, filling in the document
// identity fields when absent. Used by seeding.
func (s *Storage) SaveContainer(container *models.Container) error {
	if container.Context == "" {
		container.Context = docContext
	}
	if container.DocType == "" {
		container.DocType = typeContainer
	}
	if container.ID == "" {
		container.ID = models.ContainerDocID(container.ContainerNumber)
	}

	_, err := s.service.SaveGenericDocument(container)
	if err != nil && isConflict(err) {
		existing, getErr := s.FindContainer(container.ContainerNumber)
		if getErr == nil {
			container.Rev = existing.Rev
			_, err = s.service.SaveGenericDocument(container)
		}
	}
	return err
}

// mutateContainer applies apply to the stored document and saves it,
// retrying once on a revision conflict.
func (s *Storage) mutateContainer(number string, apply func(*models.Container)) (*models.Container, error) {
	for attempt := 0; ; attempt++ {
		container, err := s.FindContainer(number)
		if err != nil {
			return nil, err
		}

		apply(container)
		container.LastUpdated = time.Now().UTC()

		_, err = s.service.SaveGenericDocument(container)
		if err == nil {
			return container, nil
		}
		if isConflict(err) && attempt == 0 {
			s.debugLog("DEBUG: conflict updating container %s, retrying", number)
			continue
		}
		return nil, fmt.Errorf("failed to update container %s: %w", number, err)
	}
}
