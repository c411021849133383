package model

import (
	"time"
)

type User struct {
	ID        uint64    `gorm:"primaryKey"`
	Username  string    `gorm:"type:varchar(150);not null;uniqueIndex:idx_users_username"`
	Email     string    `gorm:"type:varchar(254);not null;uniqueIndex:idx_users_email"`
	Password  string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
