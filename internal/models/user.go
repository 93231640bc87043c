package models

import (
	"strings"
	"time"
)

// User matches the users table. PasswordHash holds an argon2id encoded hash,
// never the plaintext.
type User struct {
	ID           int64      `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"type:varchar(150);not null;unique" json:"username"`
	Email        string     `gorm:"type:text;not null" json:"email"`
	FirstName    string     `gorm:"type:varchar(150);not null;default:''" json:"first_name"`
	LastName     string     `gorm:"type:varchar(150);not null;default:''" json:"last_name"`
	PasswordHash string     `gorm:"type:text;not null" json:"-"`
	CreatedAt    time.Time  `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	LastLoginAt  *time.Time `gorm:"type:timestamptz" json:"last_login_at,omitempty"`
}

func (User) TableName() string { return "users" }

func (u *User) Prepare() {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.TrimSpace(u.Email)
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)
}
