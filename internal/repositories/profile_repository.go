package repositories

import (
	"context"

	"gorm.io/gorm"

	"nebulanotes/internal/models"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetOrCreate returns the user's profile with favourites loaded, creating an
// empty profile for users registered before profiles existed.
func (r *ProfileRepository) GetOrCreate(ctx context.Context, userID int64) (*models.UserProfile, error) {
	var p models.UserProfile
	err := r.db.WithContext(ctx).
		Where(models.UserProfile{UserID: userID}).
		FirstOrCreate(&p).Error
	if err != nil {
		return nil, err
	}

	return r.FindByUserID(ctx, userID)
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID int64) (*models.UserProfile, error) {
	q := r.db.WithContext(ctx).
		Preload("FavoriteObjects", func(db *gorm.DB) *gorm.DB { return db.Order("astronomical_objects.id ASC") }).
		Preload("FavoriteObjects.Type").
		Where("user_id = ?", userID)
	return first[models.UserProfile](q)
}

func (r *ProfileRepository) AddFavorite(ctx context.Context, p *models.UserProfile, o *models.AstronomicalObject) error {
	return r.db.WithContext(ctx).Model(p).Omit("FavoriteObjects.*").Association("FavoriteObjects").Append(o)
}

func (r *ProfileRepository) RemoveFavorite(ctx context.Context, p *models.UserProfile, o *models.AstronomicalObject) error {
	return r.db.WithContext(ctx).Model(p).Association("FavoriteObjects").Delete(o)
}
