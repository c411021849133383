package model

import (
	"time"
)

type Post struct {
	ID         uint64    `gorm:"primaryKey"`
	UserID     uint64    `gorm:"not null;index:idx_posts_user_id" json:"user_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Image      string    `gorm:"type:varchar(512);not null;default:''" json:"image"`
	LikesCount int       `gorm:"not null;default:0" json:"likes_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// 关联关系
	User     User      `gorm:"foreignKey:UserID;references:ID"`
	Comments []Comment `gorm:"foreignKey:PostID;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}
