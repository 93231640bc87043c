package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nebulanotes/internal/models"
)

// ObservationRepository scopes every read and write by owner: a row that
// belongs to another user is indistinguishable from a missing one.
type ObservationRepository struct {
	db *gorm.DB
}

func NewObservationRepository(db *gorm.DB) *ObservationRepository {
	return &ObservationRepository{db: db}
}

func (r *ObservationRepository) ListByUser(ctx context.Context, userID int64) ([]models.Observation, error) {
	var observations []models.Observation
	err := r.db.WithContext(ctx).
		Preload("AstronomicalObject").
		Preload("Event").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&observations).Error
	return observations, err
}

func (r *ObservationRepository) FindByIDForUser(ctx context.Context, id, userID int64) (*models.Observation, error) {
	q := r.db.WithContext(ctx).
		Preload("User").
		Preload("AstronomicalObject.Type").
		Preload("Event").
		Where("id = ? AND user_id = ?", id, userID)
	return first[models.Observation](q)
}

func (r *ObservationRepository) Create(ctx context.Context, o *models.Observation) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(o).Error
}

// Update writes o only if it is still owned by o.UserID. It reports whether a
// row was changed.
func (r *ObservationRepository) Update(ctx context.Context, o *models.Observation) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Observation{}).
		Where("id = ? AND user_id = ?", o.ID, o.UserID).
		Updates(map[string]interface{}{
			"astronomical_object_id": o.AstronomicalObjectID,
			"event_id":               o.EventID,
			"observation_date":       o.ObservationDate,
			"location":               o.Location,
			"notes":                  o.Notes,
		})
	return res.RowsAffected > 0, res.Error
}

func (r *ObservationRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Observation{})
	return res.RowsAffected > 0, res.Error
}
