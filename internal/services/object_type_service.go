package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nebulanotes/internal/models"
	"nebulanotes/internal/repositories"
)

type ObjectTypeStore interface {
	List(ctx context.Context) ([]models.ObjectType, error)
	FindByID(ctx context.Context, id int64) (*models.ObjectType, error)
	FindByName(ctx context.Context, name string) (*models.ObjectType, error)
	Create(ctx context.Context, t *models.ObjectType) error
	Update(ctx context.Context, t *models.ObjectType) error
	Delete(ctx context.Context, id int64) error
}

type ObjectTypeInput struct {
	Name string
}

type ObjectTypeService struct {
	repo ObjectTypeStore
}

func NewObjectTypeService(repo ObjectTypeStore) *ObjectTypeService {
	return &ObjectTypeService{repo: repo}
}

func (s *ObjectTypeService) List(ctx context.Context) ([]models.ObjectType, error) {
	types, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list object types: %w", err)
	}
	return types, nil
}

func (s *ObjectTypeService) Get(ctx context.Context, id int64) (*models.ObjectType, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find object type %d: %w", id, err)
	}
	if t == nil {
		return nil, ErrNotFound
	}
	return t, nil
}

func (s *ObjectTypeService) Create(ctx context.Context, in ObjectTypeInput) (*models.ObjectType, error) {
	t := &models.ObjectType{}
	if err := s.apply(ctx, t, in); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, s.saveError(err)
	}
	return t, nil
}

func (s *ObjectTypeService) Update(ctx context.Context, id int64, in ObjectTypeInput) (*models.ObjectType, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Objects = nil
	if err := s.apply(ctx, t, in); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, s.saveError(err)
	}
	return t, nil
}

// Delete removes the type; its objects go with it.
func (s *ObjectTypeService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete object type %d: %w", id, err)
	}
	return nil
}

func (s *ObjectTypeService) apply(ctx context.Context, t *models.ObjectType, in ObjectTypeInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		ve := NewValidationError()
		ve.Add("name", MsgRequired)
		return ve
	}

	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return fmt.Errorf("find object type by name: %w", err)
	}
	if existing != nil && existing.ID != t.ID {
		ve := NewValidationError()
		ve.Add("name", MsgNameTaken("Astronomical object type"))
		return ve
	}

	t.Name = name
	return nil
}

func (s *ObjectTypeService) saveError(err error) error {
	if errors.Is(err, repositories.ErrDuplicateKey) {
		ve := NewValidationError()
		ve.Add("name", MsgNameTaken("Astronomical object type"))
		return ve
	}
	return fmt.Errorf("save object type: %w", err)
}
