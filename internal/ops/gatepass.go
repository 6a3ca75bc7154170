package ops

import (
	"errors"
	"fmt"
	"strings"

	"portside/models"
)

// GenerateGatepass issues an electronic gate pass for a container.
// Three independent eligibility rules are evaluated against the current
// record, and every violated rule is reported together rather than
// short-circuiting on the first:
//
//  1. the EDO must be RELEASED by the shipping agent
//  2. customs must have CLEARED the container
//  3. the container must be available for pickup
//
// A successful generation persists the pass, points the container's
// activeGatepass at it (the previous pass, if any, is left untouched),
// and broadcasts the new pass.
func (s *Service) GenerateGatepass(number, haulierCompany, truckNumber string) (*Result, error) {
	container, err := s.containers.FindContainer(number)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &NotFoundError{
				Message: fmt.Sprintf("Container %s not found in ETP system", number),
			}
		}
		return nil, err
	}

	var violations []string
	if container.EDOStatus != models.EDOReleased {
		violations = append(violations, "EDO not released by shipping agent")
	}
	if container.CustomsStatus != models.CustomsCleared {
		violations = append(violations, "Customs clearance pending")
	}
	if !container.AvailableForPickup {
		violations = append(violations,
			fmt.Sprintf("Container status %s not eligible for pickup", container.Status))
	}
	if len(violations) > 0 {
		return nil, &ValidationError{
			Message:      "Cannot generate eGatepass: " + strings.Join(violations, ", "),
			SystemSource: "ETP",
			Violations:   violations,
		}
	}

	now := s.now()
	gatepass := &models.Gatepass{
		ID:              models.NewRecordID("GP", now),
		ContainerNumber: number,
		HaulierCompany:  haulierCompany,
		TruckNumber:     truckNumber,
		GeneratedAt:     now,
		ValidUntil:      now.Add(models.GatepassValidity),
		Status:          models.GatepassStatusActive,
		GeneratedBy:     models.GeneratedBy,
		Charges:         container.Charges,
		ContainerDetails: models.GatepassContainerDetails{
			Type:     container.ContainerType,
			Size:     container.Size,
			Weight:   container.Weight,
			Location: container.Location,
		},
	}

	if err := s.gatepasses.InsertGatepass(gatepass); err != nil {
		return nil, err
	}
	if _, err := s.containers.UpdateContainer(number, models.ContainerPatch{
		ActiveGatepass: &gatepass.ID,
	}); err != nil {
		return nil, err
	}

	s.events.Publish(Event{
		Type:            EventGatepassGenerated,
		Action:          ActionGatepassGenerated,
		ContainerNumber: number,
		Gatepass:        gatepass,
	})

	return &Result{
		Success: true,
		Data:    gatepass,
		Message: fmt.Sprintf("eGatepass %s generated successfully for container %s. Valid until %s",
			gatepass.ID, number, gatepass.ValidUntil.Format("2006-01-02 15:04:05")),
		SystemSource: "ETP",
	}, nil
}
