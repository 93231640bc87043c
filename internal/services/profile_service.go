package services

import (
	"context"
	"fmt"

	"nebulanotes/internal/models"
)

type ProfileStore interface {
	GetOrCreate(ctx context.Context, userID int64) (*models.UserProfile, error)
	FindByUserID(ctx context.Context, userID int64) (*models.UserProfile, error)
	AddFavorite(ctx context.Context, p *models.UserProfile, o *models.AstronomicalObject) error
	RemoveFavorite(ctx context.Context, p *models.UserProfile, o *models.AstronomicalObject) error
}

type objectGetter interface {
	FindByID(ctx context.Context, id int64) (*models.AstronomicalObject, error)
}

type ProfileService struct {
	repo    ProfileStore
	objects objectGetter
}

func NewProfileService(repo ProfileStore, objects objectGetter) *ProfileService {
	return &ProfileService{repo: repo, objects: objects}
}

func (s *ProfileService) Get(ctx context.Context, userID int64) (*models.UserProfile, error) {
	p, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile for user %d: %w", userID, err)
	}
	return p, nil
}

// IsFavorite reports whether the user marked objectID as a favourite. It never
// creates a profile; a user without one has no favourites.
func (s *ProfileService) IsFavorite(ctx context.Context, userID, objectID int64) (bool, error) {
	p, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("find profile for user %d: %w", userID, err)
	}
	return p.HasFavorite(objectID), nil
}

func (s *ProfileService) AddFavorite(ctx context.Context, userID, objectID int64) error {
	p, o, err := s.load(ctx, userID, objectID)
	if err != nil {
		return err
	}
	if err := s.repo.AddFavorite(ctx, p, o); err != nil {
		return fmt.Errorf("add favourite %d: %w", objectID, err)
	}
	return nil
}

func (s *ProfileService) RemoveFavorite(ctx context.Context, userID, objectID int64) error {
	p, o, err := s.load(ctx, userID, objectID)
	if err != nil {
		return err
	}
	if err := s.repo.RemoveFavorite(ctx, p, o); err != nil {
		return fmt.Errorf("remove favourite %d: %w", objectID, err)
	}
	return nil
}

func (s *ProfileService) load(ctx context.Context, userID, objectID int64) (*models.UserProfile, *models.AstronomicalObject, error) {
	o, err := s.objects.FindByID(ctx, objectID)
	if err != nil {
		return nil, nil, fmt.Errorf("find object %d: %w", objectID, err)
	}
	if o == nil {
		return nil, nil, ErrNotFound
	}
	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return p, o, nil
}
