package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nebulanotes/internal/models"
)

type ObjectTypeRepository struct {
	db *gorm.DB
}

func NewObjectTypeRepository(db *gorm.DB) *ObjectTypeRepository {
	return &ObjectTypeRepository{db: db}
}

func (r *ObjectTypeRepository) List(ctx context.Context) ([]models.ObjectType, error) {
	var types []models.ObjectType
	err := r.db.WithContext(ctx).Order("id ASC").Find(&types).Error
	return types, err
}

func (r *ObjectTypeRepository) FindByID(ctx context.Context, id int64) (*models.ObjectType, error) {
	q := r.db.WithContext(ctx).
		Preload("Objects", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("id = ?", id)
	return first[models.ObjectType](q)
}

func (r *ObjectTypeRepository) FindByName(ctx context.Context, name string) (*models.ObjectType, error) {
	return first[models.ObjectType](r.db.WithContext(ctx).Where("name = ?", name))
}

func (r *ObjectTypeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists[models.ObjectType](ctx, r.db, id)
}

func (r *ObjectTypeRepository) Create(ctx context.Context, t *models.ObjectType) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(t).Error
}

func (r *ObjectTypeRepository) Update(ctx context.Context, t *models.ObjectType) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(t).Error
}

// Delete removes the type together with its objects (ON DELETE CASCADE).
func (r *ObjectTypeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.ObjectType{}, id).Error
}
