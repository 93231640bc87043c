package models

import (
	"fmt"
	"time"
)

type ObjectType struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null;unique" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// ObjectType <-> AstronomicalObject, objects are removed with their type
	Objects []AstronomicalObject `gorm:"foreignKey:TypeID;constraint:OnDelete:CASCADE;" json:"objects,omitempty"`
}

func (ObjectType) TableName() string { return "object_types" }

func (t ObjectType) String() string { return t.Name }

type AstronomicalObject struct {
	ID                int64     `gorm:"primaryKey" json:"id"`
	Name              string    `gorm:"type:varchar(100);not null;unique" json:"name"`
	TypeID            int64     `gorm:"not null;index" json:"type_id"`
	GalaxyID          *int64    `gorm:"index" json:"galaxy_id,omitempty"`
	DistanceFromEarth float64   `gorm:"not null" json:"distance_from_earth"` // light-years
	DiscoveryYear     *int      `json:"discovery_year,omitempty"`
	Description       string    `gorm:"type:text;not null;default:''" json:"description"`
	ImageURL          string    `gorm:"column:image_url;type:text;not null;default:''" json:"image_url,omitempty"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Type   *ObjectType `gorm:"foreignKey:TypeID;references:ID" json:"type,omitempty"`
	Galaxy *Galaxy     `gorm:"foreignKey:GalaxyID;references:ID" json:"galaxy,omitempty"`
}

func (AstronomicalObject) TableName() string { return "astronomical_objects" }

func (o AstronomicalObject) String() string {
	if o.Type == nil {
		return o.Name
	}
	return fmt.Sprintf("%s (%s)", o.Name, o.Type.Name)
}
