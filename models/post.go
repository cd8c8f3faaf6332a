package models

import "time"

// Post represents a short message published by a user. CreatedAt is set once
// on insert and never changes; the edit window is measured against it.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"size:280;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:timestamp" json:"timestamp"`
	OwnerID   uint      `gorm:"column:owner_id;index;not null" json:"owner_id"`
	Owner     User      `gorm:"foreignKey:OwnerID" json:"-"`
}

// TableName overrides the table name used by Post to `posts`
func (Post) TableName() string {
	return "posts"
}
