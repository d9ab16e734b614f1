package models

import (
	"time"

	"subtrack/internal/shared/constants"
)

// UserModel is the persistence model for accounts.
type UserModel struct {
	ID             uint   `gorm:"primarykey"`
	Username       string `gorm:"uniqueIndex;not null;size:50"`
	Email          string `gorm:"size:255"`
	PasswordHash   string `gorm:"size:128"`
	DisplayName    string `gorm:"size:50"`
	IsAdmin        bool   `gorm:"not null;default:false"`
	SocialProvider string `gorm:"size:20;index:idx_user_social"`
	SocialID       string `gorm:"size:100;index:idx_user_social"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
