package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"subtrack/internal/domain/catalog"
)

// PlanDTO is the wire representation of a pricing plan. MonthlyPrice is the
// normalized monthly equivalent, so yearly plans are comparable in place.
type PlanDTO struct {
	ID           uint            `json:"id"`
	ServiceID    uint            `json:"service_id"`
	Name         string          `json:"name"`
	BillingCycle string          `json:"billing_cycle"`
	Price        decimal.Decimal `json:"price"`
	MonthlyPrice decimal.Decimal `json:"monthly_price"`
	Currency     string          `json:"currency"`
	Benefits     []string        `json:"benefits"`
	BenefitsHTML string          `json:"benefits_html,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ServiceDTO is the wire representation of a catalog service.
type ServiceDTO struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Description  string    `json:"description"`
	OfficialLink string    `json:"official_link,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ServiceDetailDTO is a service together with its ordered plans.
type ServiceDetailDTO struct {
	ServiceDTO
	Plans []*PlanDTO `json:"plans"`
}

// ComparisonDTO is the result of a multi-service comparison.
type ComparisonDTO struct {
	Services []*ServiceDetailDTO `json:"services"`
}

func ToServiceDTO(service *catalog.Service) *ServiceDTO {
	return &ServiceDTO{
		ID:           service.ID(),
		Name:         service.Name(),
		Category:     service.Category(),
		Description:  service.Description(),
		OfficialLink: service.OfficialLink(),
		CreatedAt:    service.CreatedAt(),
	}
}

func ToPlanDTO(plan *catalog.Plan) *PlanDTO {
	benefits := plan.Benefits()
	if benefits == nil {
		benefits = []string{}
	}
	return &PlanDTO{
		ID:           plan.ID(),
		ServiceID:    plan.ServiceID(),
		Name:         plan.Name(),
		BillingCycle: plan.BillingCycle().String(),
		Price:        plan.Price(),
		MonthlyPrice: plan.MonthlyPrice(),
		Currency:     plan.Currency(),
		Benefits:     benefits,
		CreatedAt:    plan.CreatedAt(),
	}
}

func ToPlanDTOs(plans []*catalog.Plan) []*PlanDTO {
	dtos := make([]*PlanDTO, 0, len(plans))
	for _, plan := range plans {
		dtos = append(dtos, ToPlanDTO(plan))
	}
	return dtos
}
