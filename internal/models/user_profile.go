package models

import "time"

type UserProfile struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	User            *User                `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	FavoriteObjects []AstronomicalObject `gorm:"many2many:user_profile_favorites;joinForeignKey:UserProfileID;joinReferences:AstronomicalObjectID" json:"favorite_objects"`
}

func (UserProfile) TableName() string { return "user_profiles" }

// HasFavorite reports whether objectID is among the loaded favourites. A nil
// profile has none.
func (p *UserProfile) HasFavorite(objectID int64) bool {
	if p == nil {
		return false
	}
	for _, o := range p.FavoriteObjects {
		if o.ID == objectID {
			return true
		}
	}
	return false
}
