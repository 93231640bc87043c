package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nebulanotes/internal/models"
)

type EventStore interface {
	List(ctx context.Context, desc bool) ([]models.Event, error)
	FindByID(ctx context.Context, id int64) (*models.Event, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, e *models.Event) error
	Update(ctx context.Context, e *models.Event) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type objectFinder interface {
	FindByIDs(ctx context.Context, ids []int64) ([]models.AstronomicalObject, error)
}

type EventInput struct {
	Name             string
	Date             *time.Time
	Description      string
	RelatedObjectIDs []int64
}

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

type EventService struct {
	repo    EventStore
	objects objectFinder
}

func NewEventService(repo EventStore, objects objectFinder) *EventService {
	return &EventService{repo: repo, objects: objects}
}

// List orders events by date. Only "desc" reverses the order; any other
// value sorts ascending.
func (s *EventService) List(ctx context.Context, sort string) ([]models.Event, error) {
	events, err := s.repo.List(ctx, strings.EqualFold(sort, SortDesc))
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *EventService) Get(ctx context.Context, id int64) (*models.Event, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find event %d: %w", id, err)
	}
	if e == nil {
		return nil, ErrNotFound
	}
	return e, nil
}

func (s *EventService) Create(ctx context.Context, in EventInput) (*models.Event, error) {
	e := &models.Event{}
	if err := s.apply(ctx, e, in); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("save event: %w", err)
	}
	return e, nil
}

func (s *EventService) Update(ctx context.Context, id int64, in EventInput) (*models.Event, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, e, in); err != nil {
		return nil, err
	}
	ok, err := s.repo.Update(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("save event %d: %w", id, err)
	}
	if !ok {
		return nil, ErrNotFound
	}
	return e, nil
}

func (s *EventService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event %d: %w", id, err)
	}
	return nil
}

func (s *EventService) apply(ctx context.Context, e *models.Event, in EventInput) error {
	ve := NewValidationError()

	name := strings.TrimSpace(in.Name)
	if name == "" {
		ve.Add("name", MsgRequired)
	}
	if in.Date == nil {
		ve.Add("date", MsgRequired)
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		ve.Add("description", MsgRequired)
	}

	related, err := s.objects.FindByIDs(ctx, in.RelatedObjectIDs)
	if err != nil {
		return fmt.Errorf("find related objects: %w", err)
	}
	for _, id := range in.RelatedObjectIDs {
		if !containsObject(related, id) {
			ve.Add("related_objects", fmt.Sprintf("Select a valid choice. %d is not one of the available choices.", id))
			break
		}
	}

	if err := ve.Err(); err != nil {
		return err
	}

	e.Name = name
	e.Date = *in.Date
	e.Description = description
	e.RelatedObjects = related
	return nil
}

func containsObject(objects []models.AstronomicalObject, id int64) bool {
	for _, o := range objects {
		if o.ID == id {
			return true
		}
	}
	return false
}
