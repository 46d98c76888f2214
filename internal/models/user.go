// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account. The password column only ever holds
// a bcrypt hash and is never serialized.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
	Posts     []Post    `gorm:"foreignKey:OwnerID" json:"posts,omitempty"`
}
