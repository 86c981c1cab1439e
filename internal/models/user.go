// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account in Pollbox.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	IsAdmin   bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Polls     []Poll    `gorm:"foreignKey:CreatorID" json:"polls,omitempty"`
}
