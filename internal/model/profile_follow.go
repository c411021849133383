package model

import "time"

// ProfileFollow 关注关系：FollowerID 关注了 FollowingID
type ProfileFollow struct {
	FollowerID  uint64    `gorm:"primaryKey;autoIncrement:false" json:"followerId"`
	FollowingID uint64    `gorm:"primaryKey;autoIncrement:false;index:idx_profile_follows_following_id" json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (ProfileFollow) TableName() string {
	return "profile_follows"
}

