package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nebulanotes/internal/models"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// List orders events by date, ascending unless desc is set. Ties keep
// insertion order.
func (r *EventRepository) List(ctx context.Context, desc bool) ([]models.Event, error) {
	order := "date ASC, id ASC"
	if desc {
		order = "date DESC, id ASC"
	}

	var events []models.Event
	err := r.db.WithContext(ctx).Order(order).Find(&events).Error
	return events, err
}

func (r *EventRepository) FindByID(ctx context.Context, id int64) (*models.Event, error) {
	q := r.db.WithContext(ctx).
		Preload("RelatedObjects", func(db *gorm.DB) *gorm.DB { return db.Order("astronomical_objects.id ASC") }).
		Preload("RelatedObjects.Type").
		Where("id = ?", id)
	return first[models.Event](q)
}

func (r *EventRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists[models.Event](ctx, r.db, id)
}

// Create inserts the event and links e.RelatedObjects in one transaction.
func (r *EventRepository) Create(ctx context.Context, e *models.Event) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		related := e.RelatedObjects
		if err := tx.Omit(clause.Associations).Create(e).Error; err != nil {
			return err
		}
		return replaceRelated(tx, e, related)
	})
}

// Update writes the event columns and replaces its related objects with
// e.RelatedObjects. It reports whether the event still existed.
func (r *EventRepository) Update(ctx context.Context, e *models.Event) (bool, error) {
	var found bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		related := e.RelatedObjects
		res := tx.Model(e).Where("id = ?", e.ID).Select("*").Omit(clause.Associations).Updates(e)
		if res.Error != nil {
			return res.Error
		}
		if found = res.RowsAffected > 0; !found {
			return nil
		}
		return replaceRelated(tx, e, related)
	})
	return found, err
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Event{}, id).Error
}

func replaceRelated(tx *gorm.DB, e *models.Event, related []models.AstronomicalObject) error {
	assoc := tx.Model(e).Omit("RelatedObjects.*").Association("RelatedObjects")
	if len(related) == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(related)
}
