package models

import (
	"time"

	"github.com/shopspring/decimal"

	"subtrack/internal/shared/constants"
)

// SubscriptionModel is the persistence model for subscription records.
// Memo is NOT NULL on purpose: absent memos are stored as empty strings.
type SubscriptionModel struct {
	ID              uint             `gorm:"primarykey"`
	UserID          uint             `gorm:"not null;index"`
	PlanID          uint             `gorm:"not null;index"`
	Status          string           `gorm:"not null;size:20;default:active"`
	StartDate       time.Time        `gorm:"not null"`
	NextPaymentDate time.Time        `gorm:"not null"`
	Memo            string           `gorm:"not null;type:text"`
	PriceOverride   *decimal.Decimal `gorm:"type:decimal(10,2)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	User UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Plan PlanModel `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
}

func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}
