package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nebulanotes/internal/models"
	"nebulanotes/internal/repositories"
)

type AstronomicalObjectStore interface {
	List(ctx context.Context, typeID *int64) ([]models.AstronomicalObject, error)
	FindByID(ctx context.Context, id int64) (*models.AstronomicalObject, error)
	FindByName(ctx context.Context, name string) (*models.AstronomicalObject, error)
	FindByIDs(ctx context.Context, ids []int64) ([]models.AstronomicalObject, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, o *models.AstronomicalObject) error
	Update(ctx context.Context, o *models.AstronomicalObject) error
	Delete(ctx context.Context, id int64) error
}

// Existence checks for foreign keys chosen on a form.
type existenceChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// AstronomicalObjectInput holds parsed form values. A nil pointer means the
// field was left empty.
type AstronomicalObjectInput struct {
	Name              string
	TypeID            *int64
	GalaxyID          *int64
	DistanceFromEarth *float64
	DiscoveryYear     *int
	Description       string
	ImageURL          string
}

type AstronomicalObjectService struct {
	repo     AstronomicalObjectStore
	types    existenceChecker
	galaxies existenceChecker
}

func NewAstronomicalObjectService(repo AstronomicalObjectStore, types, galaxies existenceChecker) *AstronomicalObjectService {
	return &AstronomicalObjectService{repo: repo, types: types, galaxies: galaxies}
}

// List returns all objects, or only those of typeID when it is set.
func (s *AstronomicalObjectService) List(ctx context.Context, typeID *int64) ([]models.AstronomicalObject, error) {
	objects, err := s.repo.List(ctx, typeID)
	if err != nil {
		return nil, fmt.Errorf("list objects: %w", err)
	}
	return objects, nil
}

func (s *AstronomicalObjectService) Get(ctx context.Context, id int64) (*models.AstronomicalObject, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find object %d: %w", id, err)
	}
	if o == nil {
		return nil, ErrNotFound
	}
	return o, nil
}

func (s *AstronomicalObjectService) Create(ctx context.Context, in AstronomicalObjectInput) (*models.AstronomicalObject, error) {
	o := &models.AstronomicalObject{}
	if err := s.apply(ctx, o, in); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, s.saveError(err)
	}
	return o, nil
}

func (s *AstronomicalObjectService) Update(ctx context.Context, id int64, in AstronomicalObjectInput) (*models.AstronomicalObject, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, o, in); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, o); err != nil {
		return nil, s.saveError(err)
	}
	return o, nil
}

func (s *AstronomicalObjectService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete object %d: %w", id, err)
	}
	return nil
}

func (s *AstronomicalObjectService) apply(ctx context.Context, o *models.AstronomicalObject, in AstronomicalObjectInput) error {
	ve := NewValidationError()

	name := strings.TrimSpace(in.Name)
	if name == "" {
		ve.Add("name", MsgRequired)
	} else {
		existing, err := s.repo.FindByName(ctx, name)
		if err != nil {
			return fmt.Errorf("find object by name: %w", err)
		}
		if existing != nil && existing.ID != o.ID {
			ve.Add("name", MsgNameTaken("Astronomical object"))
		}
	}

	if in.TypeID == nil {
		ve.Add("type", MsgRequired)
	} else if err := checkChoice(ctx, s.types, *in.TypeID, "type", ve); err != nil {
		return err
	}

	if in.GalaxyID != nil {
		if err := checkChoice(ctx, s.galaxies, *in.GalaxyID, "galaxy", ve); err != nil {
			return err
		}
	}

	if in.DistanceFromEarth == nil {
		ve.Add("distance_from_earth", MsgRequired)
	}

	if err := ve.Err(); err != nil {
		return err
	}

	o.Name = name
	o.TypeID = *in.TypeID
	o.GalaxyID = in.GalaxyID
	o.DistanceFromEarth = *in.DistanceFromEarth
	o.DiscoveryYear = in.DiscoveryYear
	o.Description = strings.TrimSpace(in.Description)
	o.ImageURL = strings.TrimSpace(in.ImageURL)
	// Stale after a change of type or galaxy; reloaded on the next read.
	o.Type = nil
	o.Galaxy = nil
	return nil
}

func (s *AstronomicalObjectService) saveError(err error) error {
	if errors.Is(err, repositories.ErrDuplicateKey) {
		ve := NewValidationError()
		ve.Add("name", MsgNameTaken("Astronomical object"))
		return ve
	}
	return fmt.Errorf("save object: %w", err)
}

func checkChoice(ctx context.Context, c existenceChecker, id int64, field string, ve *ValidationError) error {
	ok, err := c.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check %s %d: %w", field, id, err)
	}
	if !ok {
		ve.Add(field, MsgInvalidChoice)
	}
	return nil
}
