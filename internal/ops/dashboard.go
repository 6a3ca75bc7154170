package ops

import "portside/models"

// DashboardData aggregates all four collections for dashboard display.
type DashboardData struct {
	Containers  []*models.Container `json:"containers"`
	Vessels     []*models.Vessel    `json:"vessels"`
	Gatepasses  []*models.Gatepass  `json:"gatepasses"`
	SSRRequests []*models.SSR       `json:"ssrRequests"`
}

// Dashboard lists every container, vessel, gate pass and service
// request. Reads only; nothing is broadcast.
func (s *Service) Dashboard() (*Result, error) {
	containers, err := s.containers.ListContainers()
	if err != nil {
		return nil, err
	}
	vessels, err := s.vessels.ListVessels()
	if err != nil {
		return nil, err
	}
	gatepasses, err := s.gatepasses.ListGatepasses()
	if err != nil {
		return nil, err
	}
	ssrs, err := s.ssrs.ListSSRs()
	if err != nil {
		return nil, err
	}

	return &Result{
		Success: true,
		Data: DashboardData{
			Containers:  containers,
			Vessels:     vessels,
			Gatepasses:  gatepasses,
			SSRRequests: ssrs,
		},
	}, nil
}
