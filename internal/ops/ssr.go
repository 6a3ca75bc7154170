package ops

import (
	"errors"
	"fmt"

	"portside/models"
)

// SubmitSSR files a special service request against a container,
// persists it in the ledger and appends its id to the container's
// request history. Prior history entries are never removed.
func (s *Service) SubmitSSR(number, ssrType, requestDetails string) (*Result, error) {
	if _, err := s.containers.FindContainer(number); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &NotFoundError{
				Message: fmt.Sprintf("Container %s not found in ETP system", number),
			}
		}
		return nil, err
	}

	now := s.now()
	ssr := &models.SSR{
		ID:                     models.NewRecordID("SSR", now),
		ContainerNumber:        number,
		SSRType:                ssrType,
		RequestDetails:         requestDetails,
		Status:                 models.SSRStatusSubmitted,
		SubmittedAt:            now,
		SubmittedBy:            models.GeneratedBy,
		ExpectedProcessingTime: models.SSRProcessingTime,
	}

	if err := s.ssrs.InsertSSR(ssr); err != nil {
		return nil, err
	}
	if _, err := s.containers.AppendContainerSSR(number, ssr.ID); err != nil {
		return nil, err
	}

	s.events.Publish(Event{
		Type:            EventSSRSubmitted,
		Action:          ActionSSRSubmitted,
		ContainerNumber: number,
		SSR:             ssr,
	})

	return &Result{
		Success: true,
		Data:    ssr,
		Message: fmt.Sprintf("SSR %s submitted successfully for %s. Expected processing time: %s",
			ssr.ID, ssrType, models.SSRProcessingTime),
		SystemSource: "ETP",
	}, nil
}
