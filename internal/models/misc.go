package models

import (
	"time"
)

// Builder is a property developer shown alongside listings.
type Builder struct {
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Name        string    `json:"name"`
	LogoURL     *string   `json:"logoUrl,omitempty"`
	Description *string   `json:"description,omitempty"`
	ID          int64     `json:"id"`
}

// PageStat is a per-page click counter. ClickCount only grows and is
// incremented atomically at the storage layer.
type PageStat struct {
	LastClicked *time.Time `json:"lastClicked,omitempty"`
	PageName    string     `json:"pageName"`
	ClickCount  int64      `json:"clickCount"`
	ID          int64      `json:"id"`
}

// AdminUser is a backend operator account. PasswordHash is a bcrypt
// hash and never serialized.
type AdminUser struct {
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	ID           int64     `json:"id"`
}
