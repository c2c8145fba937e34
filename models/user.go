package models

import "time"

// User is the author of posts. Accounts and credentials live elsewhere;
// only what the blog renders is kept here.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"-" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
