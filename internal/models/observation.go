package models

import (
	"fmt"
	"time"
)

type Observation struct {
	ID                   int64     `gorm:"primaryKey" json:"id"`
	UserID               int64     `gorm:"not null;index" json:"user_id"`
	AstronomicalObjectID *int64    `json:"astronomical_object_id,omitempty"`
	EventID              *int64    `json:"event_id,omitempty"`
	ObservationDate      time.Time `gorm:"type:timestamptz;not null" json:"observation_date"`
	Location             string    `gorm:"type:varchar(255);not null;default:''" json:"location"`
	Notes                string    `gorm:"type:text;not null;default:''" json:"notes"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User               *User               `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
	AstronomicalObject *AstronomicalObject `gorm:"foreignKey:AstronomicalObjectID;references:ID;constraint:OnDelete:CASCADE;" json:"astronomical_object,omitempty"`
	Event              *Event              `gorm:"foreignKey:EventID;references:ID;constraint:OnDelete:CASCADE;" json:"event,omitempty"`
}

func (Observation) TableName() string { return "observations" }

func (o Observation) String() string {
	subject := "observation"
	if o.AstronomicalObject != nil {
		subject = o.AstronomicalObject.Name
	}
	if o.Event != nil {
		subject += " " + o.Event.Name
	}
	if o.User != nil {
		return fmt.Sprintf("Observation of %s made by %s", subject, o.User.Username)
	}
	return fmt.Sprintf("Observation of %s", subject)
}
