package models

import "time"

const (
	GalaxyTypeSpiral     = "Spiral"
	GalaxyTypeElliptical = "Elliptical"
	GalaxyTypeIrregular  = "Irregular"
	GalaxyTypeOther      = "Other"
)

// GalaxyTypes lists the values of the galaxy_type_t enum in display order.
var GalaxyTypes = []string{GalaxyTypeSpiral, GalaxyTypeElliptical, GalaxyTypeIrregular, GalaxyTypeOther}

type Galaxy struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null;unique" json:"name"`
	Type        string    `gorm:"type:galaxy_type_t;not null" json:"type"`
	Description string    `gorm:"type:text;not null;default:''" json:"description"`
	ImageURL    string    `gorm:"column:image_url;type:text;not null;default:''" json:"image_url,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Galaxy <-> AstronomicalObject, galaxy_id is nulled on delete
	Objects []AstronomicalObject `gorm:"foreignKey:GalaxyID;constraint:OnDelete:SET NULL;" json:"objects,omitempty"`
}

func (Galaxy) TableName() string { return "galaxies" }

func (g Galaxy) String() string { return g.Name }
