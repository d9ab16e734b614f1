package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"subtrack/internal/shared/constants"
)

// PlanModel is the persistence model for pricing plans.
type PlanModel struct {
	ID           uint            `gorm:"primarykey"`
	ServiceID    uint            `gorm:"not null;index"`
	Name         string          `gorm:"not null;size:100"`
	BillingCycle string          `gorm:"not null;size:20;default:month"`
	Price        decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
	Currency     string          `gorm:"not null;size:3"`
	Benefits     datatypes.JSON
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (PlanModel) TableName() string {
	return constants.TablePlans
}

// BeforeCreate hook for GORM
func (p *PlanModel) BeforeCreate(tx *gorm.DB) error {
	if p.Currency == "" {
		p.Currency = constants.DefaultCurrency
	}
	return nil
}
