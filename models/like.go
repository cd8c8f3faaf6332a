package models

// Like is a join row marking that a user liked a post. The composite primary
// key keeps the pair unique; there is nothing else to store.
type Like struct {
	UserID uint `gorm:"primaryKey;autoIncrement:false;column:user_id" json:"user_id"`
	PostID uint `gorm:"primaryKey;autoIncrement:false;column:post_id" json:"post_id"`
}

// TableName overrides the table name used by Like to `likes`
func (Like) TableName() string {
	return "likes"
}
