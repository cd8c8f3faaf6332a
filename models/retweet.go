package models

import "time"

// Retweet is a join row marking that a user retweeted a post.
type Retweet struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false;column:user_id" json:"user_id"`
	PostID    uint      `gorm:"primaryKey;autoIncrement:false;column:post_id" json:"post_id"`
	CreatedAt time.Time `gorm:"column:timestamp" json:"timestamp"`
}

// TableName overrides the table name used by Retweet to `retweets`
func (Retweet) TableName() string {
	return "retweets"
}
