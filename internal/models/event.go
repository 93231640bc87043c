package models

import (
	"fmt"
	"time"
)

// DateLayout is the wire and display format of Event.Date.
const DateLayout = "2006-01-02"

type Event struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Date        time.Time `gorm:"type:date;not null" json:"date"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	RelatedObjects []AstronomicalObject `gorm:"many2many:event_related_objects;joinForeignKey:EventID;joinReferences:AstronomicalObjectID" json:"related_objects,omitempty"`
}

func (Event) TableName() string { return "events" }

func (e Event) String() string {
	return fmt.Sprintf("%s - %s", e.Name, e.Date.Format(DateLayout))
}

// RelatedObjectIDs returns the ids of the loaded related objects.
func (e Event) RelatedObjectIDs() []int64 {
	ids := make([]int64, 0, len(e.RelatedObjects))
	for _, o := range e.RelatedObjects {
		ids = append(ids, o.ID)
	}
	return ids
}
