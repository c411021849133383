package model

import "time"

// Profile 用户的公开主页，与 User 一一对应
type Profile struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	UserID       uint64    `gorm:"not null;uniqueIndex:idx_profiles_user_id" json:"userId"`
	Bio          string    `gorm:"type:varchar(500);not null;default:''" json:"bio"`
	ProfilePic   string    `gorm:"type:varchar(512);not null;default:'default_avatar.png'" json:"profilePic"`
	WebsiteURL   string    `gorm:"type:varchar(255);not null;default:''" json:"websiteUrl"`
	FacebookURL  string    `gorm:"type:varchar(255);not null;default:''" json:"facebookUrl"`
	TwitterURL   string    `gorm:"type:varchar(255);not null;default:''" json:"twitterUrl"`
	InstagramURL string    `gorm:"type:varchar(255);not null;default:''" json:"instagramUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (Profile) TableName() string {
	return "profiles"
}
