package storage

import (
	"fmt"

	"portside/internal/storage/seed"
)

// Seed loads the demo dataset when the container collection is empty.
// Re-running against a populated database is a no-op, matching the
// demo's initialize-once behavior.
func (s *Storage) Seed() error {
	containers, err := s.ListContainers()
	if err != nil {
		return fmt.Errorf("failed to check for existing data: %w", err)
	}
	if len(containers) > 0 {
		s.debugLog("DEBUG: database already seeded (%d containers)", len(containers))
		return nil
	}

	for _, c := range seed.Containers() {
		if err := s.SaveContainer(c); err != nil {
			return fmt.Errorf("failed to seed container %s: %w", c.ContainerNumber, err)
		}
	}
	for _, v := range seed.Vessels() {
		if err := s.SaveVessel(v); err != nil {
			return fmt.Errorf("failed to seed vessel %s: %w", v.VoyageNumber, err)
		}
	}

	fmt.Printf("✓ Seeded %d containers and %d vessels\n",
		len(seed.Containers()), len(seed.Vessels()))
	return nil
}
