package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	"subtrack/internal/shared/query"
)

// ServiceFilter is the declarative filter specification for catalog listing.
// Price bounds apply to a plan's monthly-equivalent price, never the raw
// price, so yearly plans are normalized before comparison.
type ServiceFilter struct {
	Search   string
	Category string
	PriceMin *decimal.Decimal
	PriceMax *decimal.Decimal
	query.SortFilter
}

// ServiceRepository persists catalog services.
type ServiceRepository interface {
	Create(ctx context.Context, service *Service) error
	GetByID(ctx context.Context, id uint) (*Service, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Service, error)
	List(ctx context.Context, filter ServiceFilter) ([]*Service, error)
	Update(ctx context.Context, service *Service) error
	Delete(ctx context.Context, id uint) error
}

// PlanRepository persists pricing plans.
type PlanRepository interface {
	Create(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, id uint) (*Plan, error)
	ListByServiceID(ctx context.Context, serviceID uint) ([]*Plan, error)
	ListByServiceIDs(ctx context.Context, serviceIDs []uint) (map[uint][]*Plan, error)
	Update(ctx context.Context, plan *Plan) error
	Delete(ctx context.Context, id uint) error
}
