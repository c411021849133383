package model

import (
	"time"
)

// LikePost 点赞记录，(post_id, username) 唯一
type LikePost struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	PostID    uint64    `gorm:"not null;uniqueIndex:idx_like_posts_post_username" json:"postId"`
	Username  string    `gorm:"type:varchar(150);not null;uniqueIndex:idx_like_posts_post_username" json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

func (LikePost) TableName() string {
	return "like_posts"
}
