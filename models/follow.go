package models

// Follow is a directed edge from follower to followee. At most one row per
// ordered pair; self-follows are rejected in the service layer, not here.
type Follow struct {
	FollowerID uint `gorm:"primaryKey;autoIncrement:false;column:follower_id" json:"follower_id"`
	FolloweeID uint `gorm:"primaryKey;autoIncrement:false;column:followee_id" json:"followee_id"`
}

// TableName overrides the table name used by Follow to `follows`
func (Follow) TableName() string {
	return "follows"
}
