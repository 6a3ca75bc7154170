package ops

import (
	"errors"
	"fmt"

	"portside/models"
)

// QueryContainerStatus looks up a container by number and returns its
// full snapshot. A successful query is itself broadcast so dashboards
// can show what the voice agent is looking at.
func (s *Service) QueryContainerStatus(number string) (*Result, error) {
	container, err := s.containers.FindContainer(number)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &NotFoundError{
				Message: fmt.Sprintf(
					"Container %s not found in our ETP/OPUS system. Please verify the container number format (ABCD1234567).",
					number),
				SystemSource: "ETP/OPUS",
			}
		}
		return nil, err
	}

	s.events.Publish(Event{
		Type:            EventContainerQueried,
		Action:          ActionStatusQuery,
		ContainerNumber: number,
		Data:            container,
	})

	return &Result{
		Success:      true,
		Data:         container,
		Message:      fmt.Sprintf("Container %s found successfully in ETP system", number),
		SystemSource: "ETP/OPUS",
	}, nil
}

// UpdateContainerStatus transitions a container to a new status and
// optionally relocates it. availableForPickup is recomputed from the
// new status on every update: true only for DISCHARGED and
// AVAILABLE_FOR_DELIVERY. GATED_OUT additionally stamps the gate-out
// time and forces availableForPickup to false.
func (s *Service) UpdateContainerStatus(number, newStatus, location string) (*Result, error) {
	container, err := s.containers.FindContainer(number)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &NotFoundError{
				Message:      fmt.Sprintf("Container %s not found in our system", number),
				SystemSource: "OPUS/ETP",
			}
		}
		return nil, err
	}

	oldStatus := container.Status

	available := models.PickupEligible(newStatus)
	patch := models.ContainerPatch{
		Status:             &newStatus,
		AvailableForPickup: &available,
	}
	if location != "" {
		patch.Location = &location
	}
	if newStatus == models.StatusGatedOut {
		gateOut := s.now()
		patch.GateOutTime = &gateOut
		available = false
	}

	updated, err := s.containers.UpdateContainer(number, patch)
	if err != nil {
		return nil, err
	}

	s.events.Publish(Event{
		Type:            EventContainerUpdated,
		Action:          ActionStatusUpdate,
		ContainerNumber: number,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
		Data:            updated,
	})

	return &Result{
		Success: true,
		Data:    updated,
		Message: fmt.Sprintf("Container %s successfully updated from %s to %s in OPUS system",
			number, oldStatus, newStatus),
		SystemSource: "OPUS/ETP",
	}, nil
}
