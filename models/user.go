package models

import "time"

// User represents a registered account in the database
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email          string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	HashedPassword string    `gorm:"column:hashed_password;size:255;not null" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName overrides the table name used by User to `users`
func (User) TableName() string {
	return "users"
}
