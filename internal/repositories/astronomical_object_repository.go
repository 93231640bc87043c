package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nebulanotes/internal/models"
)

type AstronomicalObjectRepository struct {
	db *gorm.DB
}

func NewAstronomicalObjectRepository(db *gorm.DB) *AstronomicalObjectRepository {
	return &AstronomicalObjectRepository{db: db}
}

// List returns objects in insertion order. A non-nil typeID restricts the
// result to that object type.
func (r *AstronomicalObjectRepository) List(ctx context.Context, typeID *int64) ([]models.AstronomicalObject, error) {
	q := r.db.WithContext(ctx).Preload("Type").Preload("Galaxy")
	if typeID != nil {
		q = q.Where("type_id = ?", *typeID)
	}

	var objects []models.AstronomicalObject
	err := q.Order("id ASC").Find(&objects).Error
	return objects, err
}

func (r *AstronomicalObjectRepository) FindByID(ctx context.Context, id int64) (*models.AstronomicalObject, error) {
	q := r.db.WithContext(ctx).Preload("Type").Preload("Galaxy").Where("id = ?", id)
	return first[models.AstronomicalObject](q)
}

func (r *AstronomicalObjectRepository) FindByName(ctx context.Context, name string) (*models.AstronomicalObject, error) {
	return first[models.AstronomicalObject](r.db.WithContext(ctx).Where("name = ?", name))
}

// FindByIDs returns the objects whose ids are listed, ordered by id. Unknown
// ids are skipped.
func (r *AstronomicalObjectRepository) FindByIDs(ctx context.Context, ids []int64) ([]models.AstronomicalObject, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var objects []models.AstronomicalObject
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&objects).Error
	return objects, err
}

func (r *AstronomicalObjectRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists[models.AstronomicalObject](ctx, r.db, id)
}

func (r *AstronomicalObjectRepository) Create(ctx context.Context, o *models.AstronomicalObject) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(o).Error
}

func (r *AstronomicalObjectRepository) Update(ctx context.Context, o *models.AstronomicalObject) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(o).Error
}

func (r *AstronomicalObjectRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.AstronomicalObject{}, id).Error
}
