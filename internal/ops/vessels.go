package ops

import (
	"errors"

	"portside/models"
)

// CheckVesselSchedule looks a vessel up by name or voyage number.
// The name takes priority when both are given: lookup tries the name
// first when present, otherwise the voyage code. Name matching is a
// case-insensitive substring match with deterministic first-match
// semantics; voyage matching is exact after upper-casing the input.
func (s *Service) CheckVesselSchedule(vesselName, voyageNumber string) (*Result, error) {
	var (
		vessel *models.Vessel
		err    error
	)
	switch {
	case vesselName != "":
		vessel, err = s.vessels.FindVesselByName(vesselName)
	case voyageNumber != "":
		vessel, err = s.vessels.FindVesselByVoyage(voyageNumber)
	default:
		err = models.ErrNotFound
	}
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &NotFoundError{
				Message:      "Vessel not found in CBAS system. Please check vessel name or voyage number.",
				SystemSource: "CBAS",
			}
		}
		return nil, err
	}

	s.events.Publish(Event{
		Type:       EventVesselQueried,
		Action:     ActionVesselScheduleQuery,
		VesselName: vessel.VesselName,
		Data:       vessel,
	})

	return &Result{
		Success:      true,
		Data:         vessel,
		Message:      "Vessel schedule information retrieved from CBAS system",
		SystemSource: "CBAS",
	}, nil
}
