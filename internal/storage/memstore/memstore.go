// Package memstore provides an in-memory implementation of the store
// interfaces used by the tool operations layer. It backs the server
// when storage.backend is "memory" (demo runs without CouchDB) and
// doubles as the store fixture in tests.
//
// All records are deep-copied on the way in and out so callers can
// never alias store-owned state.
package memstore

import (
	"sort"
	"strings"
	"sync"
	"time"

	"portside/models"
)

// Store holds all four collections behind a single mutex. Each exported
// call is atomic at the single-record granularity; concurrent updates
// to the same record are last-writer-wins.
type Store struct {
	mu         sync.RWMutex
	containers map[string]*models.Container
	vessels    map[string]*models.Vessel
	gatepasses []*models.Gatepass
	ssrs       []*models.SSR
}

// New creates an empty store.
func New() *Store {
	return &Store{
		containers: make(map[string]*models.Container),
		vessels:    make(map[string]*models.Vessel),
	}
}

// PutContainer inserts or replaces a container record.
func (s *Store) PutContainer(c *models.Container) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := cloneContainer(c)
	if cp.ID == "" {
		cp.ID = models.ContainerDocID(cp.ContainerNumber)
	}
	s.containers[cp.ContainerNumber] = cp
}

// PutVessel inserts or replaces a vessel record, keyed by voyage number.
func (s *Store) PutVessel(v *models.Vessel) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *v
	if cp.ID == "" {
		cp.ID = models.VesselDocID(cp.VoyageNumber)
	}
	s.vessels[cp.VoyageNumber] = &cp
}

// FindContainer returns the container with the given number or
// models.ErrNotFound.
func (s *Store) FindContainer(number string) (*models.Container, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.containers[number]
	if !ok {
		return nil, models.ErrNotFound
	}
	return cloneContainer(c), nil
}

// UpdateContainer merges the set patch fields into the stored record
// and stamps lastUpdated.
func (s *Store) UpdateContainer(number string, patch models.ContainerPatch) (*models.Container, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.containers[number]
	if !ok {
		return nil, models.ErrNotFound
	}

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
	c.LastUpdated = time.Now().UTC()

	return cloneContainer(c), nil
}

// AppendContainerSSR appends a service-request id to the container's
// history. Existing entries are never removed.
func (s *Store) AppendContainerSSR(number, ssrID string) (*models.Container, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.containers[number]
	if !ok {
		return nil, models.ErrNotFound
	}

	c.SSRHistory = append(c.SSRHistory, ssrID)
	c.LastUpdated = time.Now().UTC()

	return cloneContainer(c), nil
}

// ListContainers returns all containers ordered by container number for
// stable dashboard display.
func (s *Store) ListContainers() ([]*models.Container, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Container, 0, len(s.containers))
	for _, c := range s.containers {
		out = append(out, cloneContainer(c))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ContainerNumber < out[j].ContainerNumber
	})
	return out, nil
}

// FindVesselByName matches a case-insensitive name substring and
// returns the first match in stored (voyage-key) order.
func (s *Store) FindVesselByName(name string) (*models.Vessel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(name)
	for _, voyage := range s.sortedVoyages() {
		v := s.vessels[voyage]
		if strings.Contains(strings.ToLower(v.VesselName), needle) {
			cp := *v
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

// FindVesselByVoyage matches a voyage code exactly after upper-casing
// the input.
func (s *Store) FindVesselByVoyage(code string) (*models.Vessel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.vessels[strings.ToUpper(code)]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *v
	return &cp, nil
}

// ListVessels returns all vessels in voyage-key order.
func (s *Store) ListVessels() ([]*models.Vessel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Vessel, 0, len(s.vessels))
	for _, voyage := range s.sortedVoyages() {
		cp := *s.vessels[voyage]
		out = append(out, &cp)
	}
	return out, nil
}

// InsertGatepass appends a gate pass to the ledger.
func (s *Store) InsertGatepass(gp *models.Gatepass) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *gp
	s.gatepasses = append(s.gatepasses, &cp)
	return nil
}

// ListGatepasses returns all issued gate passes in insertion order.
func (s *Store) ListGatepasses() ([]*models.Gatepass, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Gatepass, 0, len(s.gatepasses))
	for _, gp := range s.gatepasses {
		cp := *gp
		out = append(out, &cp)
	}
	return out, nil
}

// InsertSSR appends a service request to the ledger.
func (s *Store) InsertSSR(ssr *models.SSR) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *ssr
	s.ssrs = append(s.ssrs, &cp)
	return nil
}

// ListSSRs returns all submitted service requests in insertion order.
func (s *Store) ListSSRs() ([]*models.SSR, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.SSR, 0, len(s.ssrs))
	for _, ssr := range s.ssrs {
		cp := *ssr
		out = append(out, &cp)
	}
	return out, nil
}

// sortedVoyages must be called with the lock held.
func (s *Store) sortedVoyages() []string {
	voyages := make([]string, 0, len(s.vessels))
	for voyage := range s.vessels {
		voyages = append(voyages, voyage)
	}
	sort.Strings(voyages)
	return voyages
}

func cloneContainer(c *models.Container) *models.Container {
	cp := *c
	if c.SSRHistory != nil {
		// keep empty slices non-nil so they marshal as [] not null
		cp.SSRHistory = append([]string{}, c.SSRHistory...)
	}
	if c.GateOutTime != nil {
		t := *c.GateOutTime
		cp.GateOutTime = &t
	}
	return &cp
}
