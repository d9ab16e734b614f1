package models

import (
	"time"

	"subtrack/internal/shared/constants"
)

// ServiceModel is the persistence model for catalog services. It is the
// anti-corruption layer between the domain entity and the database.
type ServiceModel struct {
	ID           uint   `gorm:"primarykey"`
	Name         string `gorm:"uniqueIndex;not null;size:120"`
	Category     string `gorm:"size:40;index"`
	Description  string `gorm:"type:text"`
	OfficialLink string `gorm:"size:255"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Plans []PlanModel `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}

func (ServiceModel) TableName() string {
	return constants.TableServices
}
