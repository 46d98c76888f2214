package models

import (
	"time"
)

// Post represents a post owned by exactly one user. Ownership never transfers.
type Post struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"not null" json:"title"`
	Content   string `gorm:"type:text;not null" json:"content"`
	Published bool   `gorm:"not null;default:true" json:"published"`
	OwnerID   uint   `gorm:"not null;index" json:"owner_id"`
	Owner     User   `gorm:"foreignKey:OwnerID" json:"owner"`
	// Votes is not persisted; computed by the feed query
	Votes     int       `gorm:"->" json:"votes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
