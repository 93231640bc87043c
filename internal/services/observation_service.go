package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nebulanotes/internal/models"
)

type ObservationStore interface {
	ListByUser(ctx context.Context, userID int64) ([]models.Observation, error)
	FindByIDForUser(ctx context.Context, id, userID int64) (*models.Observation, error)
	Create(ctx context.Context, o *models.Observation) error
	Update(ctx context.Context, o *models.Observation) (bool, error)
	Delete(ctx context.Context, id, userID int64) (bool, error)
}

type ObservationInput struct {
	AstronomicalObjectID *int64
	EventID              *int64
	ObservationDate      *time.Time
	Location             string
	Notes                string
}

// ObservationService works on behalf of one user per call. The owner id is
// always the caller's, never taken from input.
type ObservationService struct {
	repo    ObservationStore
	objects existenceChecker
	events  existenceChecker
	now     func() time.Time
}

func NewObservationService(repo ObservationStore, objects, events existenceChecker) *ObservationService {
	return &ObservationService{repo: repo, objects: objects, events: events, now: time.Now}
}

func (s *ObservationService) List(ctx context.Context, userID int64) ([]models.Observation, error) {
	observations, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list observations: %w", err)
	}
	return observations, nil
}

func (s *ObservationService) Get(ctx context.Context, id, userID int64) (*models.Observation, error) {
	o, err := s.repo.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("find observation %d: %w", id, err)
	}
	if o == nil {
		return nil, ErrNotFound
	}
	return o, nil
}

func (s *ObservationService) Create(ctx context.Context, userID int64, in ObservationInput) (*models.Observation, error) {
	o := &models.Observation{UserID: userID}
	if err := s.apply(ctx, o, in); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("save observation: %w", err)
	}
	return o, nil
}

func (s *ObservationService) Update(ctx context.Context, id, userID int64, in ObservationInput) (*models.Observation, error) {
	o, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, o, in); err != nil {
		return nil, err
	}

	ok, err := s.repo.Update(ctx, o)
	if err != nil {
		return nil, fmt.Errorf("save observation %d: %w", id, err)
	}
	if !ok {
		return nil, ErrNotFound
	}
	return o, nil
}

func (s *ObservationService) Delete(ctx context.Context, id, userID int64) error {
	ok, err := s.repo.Delete(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("delete observation %d: %w", id, err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *ObservationService) apply(ctx context.Context, o *models.Observation, in ObservationInput) error {
	ve := NewValidationError()

	switch {
	case in.ObservationDate == nil:
		ve.Add("observation_date", MsgRequired)
	case in.ObservationDate.After(s.now()):
		ve.Add("observation_date", MsgFutureObservation)
	}

	if in.AstronomicalObjectID != nil {
		if err := checkChoice(ctx, s.objects, *in.AstronomicalObjectID, "astronomical_object", ve); err != nil {
			return err
		}
	}
	if in.EventID != nil {
		if err := checkChoice(ctx, s.events, *in.EventID, "event", ve); err != nil {
			return err
		}
	}

	if err := ve.Err(); err != nil {
		return err
	}

	o.AstronomicalObjectID = in.AstronomicalObjectID
	o.EventID = in.EventID
	o.ObservationDate = *in.ObservationDate
	o.Location = strings.TrimSpace(in.Location)
	o.Notes = strings.TrimSpace(in.Notes)
	o.AstronomicalObject = nil
	o.Event = nil
	return nil
}
