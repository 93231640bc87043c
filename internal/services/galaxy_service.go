package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nebulanotes/internal/models"
	"nebulanotes/internal/repositories"
	"nebulanotes/internal/utils"
)

type GalaxyStore interface {
	List(ctx context.Context) ([]models.Galaxy, error)
	FindByID(ctx context.Context, id int64) (*models.Galaxy, error)
	FindByName(ctx context.Context, name string) (*models.Galaxy, error)
	Create(ctx context.Context, g *models.Galaxy) error
	Update(ctx context.Context, g *models.Galaxy) error
	Delete(ctx context.Context, id int64) error
}

type GalaxyInput struct {
	Name        string
	Type        string
	Description string
	ImageURL    string
}

type GalaxyService struct {
	repo GalaxyStore
}

func NewGalaxyService(repo GalaxyStore) *GalaxyService {
	return &GalaxyService{repo: repo}
}

func (s *GalaxyService) List(ctx context.Context) ([]models.Galaxy, error) {
	galaxies, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list galaxies: %w", err)
	}
	return galaxies, nil
}

func (s *GalaxyService) Get(ctx context.Context, id int64) (*models.Galaxy, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find galaxy %d: %w", id, err)
	}
	if g == nil {
		return nil, ErrNotFound
	}
	return g, nil
}

func (s *GalaxyService) Create(ctx context.Context, in GalaxyInput) (*models.Galaxy, error) {
	g := &models.Galaxy{}
	if err := s.apply(ctx, g, in); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, s.saveError(err)
	}
	return g, nil
}

func (s *GalaxyService) Update(ctx context.Context, id int64, in GalaxyInput) (*models.Galaxy, error) {
	g, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	g.Objects = nil
	if err := s.apply(ctx, g, in); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, g); err != nil {
		return nil, s.saveError(err)
	}
	return g, nil
}

func (s *GalaxyService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete galaxy %d: %w", id, err)
	}
	return nil
}

func (s *GalaxyService) apply(ctx context.Context, g *models.Galaxy, in GalaxyInput) error {
	ve := NewValidationError()

	name := strings.TrimSpace(in.Name)
	if name == "" {
		ve.Add("name", MsgRequired)
	} else {
		existing, err := s.repo.FindByName(ctx, name)
		if err != nil {
			return fmt.Errorf("find galaxy by name: %w", err)
		}
		if existing != nil && existing.ID != g.ID {
			ve.Add("name", MsgNameTaken("Galaxy"))
		}
	}

	switch {
	case in.Type == "":
		ve.Add("type", MsgRequired)
	case !utils.Contains(models.GalaxyTypes, in.Type):
		ve.Add("type", fmt.Sprintf("Select a valid choice. %s is not one of the available choices.", in.Type))
	}

	if err := ve.Err(); err != nil {
		return err
	}

	g.Name = name
	g.Type = in.Type
	g.Description = strings.TrimSpace(in.Description)
	g.ImageURL = strings.TrimSpace(in.ImageURL)
	return nil
}

func (s *GalaxyService) saveError(err error) error {
	if errors.Is(err, repositories.ErrDuplicateKey) {
		ve := NewValidationError()
		ve.Add("name", MsgNameTaken("Galaxy"))
		return ve
	}
	return fmt.Errorf("save galaxy: %w", err)
}
