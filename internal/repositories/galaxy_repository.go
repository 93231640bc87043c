package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nebulanotes/internal/models"
)

type GalaxyRepository struct {
	db *gorm.DB
}

func NewGalaxyRepository(db *gorm.DB) *GalaxyRepository {
	return &GalaxyRepository{db: db}
}

func (r *GalaxyRepository) List(ctx context.Context) ([]models.Galaxy, error) {
	var galaxies []models.Galaxy
	err := r.db.WithContext(ctx).Order("id ASC").Find(&galaxies).Error
	return galaxies, err
}

// FindByID loads the galaxy with its objects, or returns nil when missing.
func (r *GalaxyRepository) FindByID(ctx context.Context, id int64) (*models.Galaxy, error) {
	q := r.db.WithContext(ctx).
		Preload("Objects", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Objects.Type").
		Where("id = ?", id)
	return first[models.Galaxy](q)
}

func (r *GalaxyRepository) FindByName(ctx context.Context, name string) (*models.Galaxy, error) {
	return first[models.Galaxy](r.db.WithContext(ctx).Where("name = ?", name))
}

func (r *GalaxyRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists[models.Galaxy](ctx, r.db, id)
}

func (r *GalaxyRepository) Create(ctx context.Context, g *models.Galaxy) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(g).Error
}

func (r *GalaxyRepository) Update(ctx context.Context, g *models.Galaxy) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(g).Error
}

// Delete removes the galaxy. galaxy_id on its objects is nulled by the
// foreign key.
func (r *GalaxyRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Galaxy{}, id).Error
}
