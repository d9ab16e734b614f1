package usecases

import (
	"context"

	"subtrack/internal/domain/catalog"
	"subtrack/internal/shared/errors"
	"subtrack/internal/shared/logger"
)

// fakeServiceRepo is an in-memory ServiceRepository for use case tests.
type fakeServiceRepo struct {
	services map[uint]*catalog.Service
	listErr  error
}

func newFakeServiceRepo(services ...*catalog.Service) *fakeServiceRepo {
	repo := &fakeServiceRepo{services: make(map[uint]*catalog.Service)}
	for _, s := range services {
		repo.services[s.ID()] = s
	}
	return repo
}

func (r *fakeServiceRepo) Create(ctx context.Context, service *catalog.Service) error {
	for _, existing := range r.services {
		if existing.Name() == service.Name() {
			return errors.NewDuplicateError("service name already exists")
		}
	}
	id := uint(len(r.services) + 1)
	if err := service.SetID(id); err != nil {
		return err
	}
	r.services[id] = service
	return nil
}

func (r *fakeServiceRepo) GetByID(ctx context.Context, id uint) (*catalog.Service, error) {
	return r.services[id], nil
}

func (r *fakeServiceRepo) GetByIDs(ctx context.Context, ids []uint) ([]*catalog.Service, error) {
	result := make([]*catalog.Service, 0, len(ids))
	seen := make(map[uint]bool)
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if s, ok := r.services[id]; ok {
			result = append(result, s)
		}
	}
	return result, nil
}

func (r *fakeServiceRepo) List(ctx context.Context, filter catalog.ServiceFilter) ([]*catalog.Service, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	result := make([]*catalog.Service, 0, len(r.services))
	for _, s := range r.services {
		result = append(result, s)
	}
	return result, nil
}

func (r *fakeServiceRepo) Update(ctx context.Context, service *catalog.Service) error {
	r.services[service.ID()] = service
	return nil
}

func (r *fakeServiceRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.services[id]; !ok {
		return errors.NewNotFoundError("service not found")
	}
	delete(r.services, id)
	return nil
}

// fakePlanRepo is an in-memory PlanRepository for use case tests.
type fakePlanRepo struct {
	plans map[uint]*catalog.Plan
}

func newFakePlanRepo(plans ...*catalog.Plan) *fakePlanRepo {
	repo := &fakePlanRepo{plans: make(map[uint]*catalog.Plan)}
	for _, p := range plans {
		repo.plans[p.ID()] = p
	}
	return repo
}

func (r *fakePlanRepo) Create(ctx context.Context, plan *catalog.Plan) error {
	id := uint(len(r.plans) + 1)
	if err := plan.SetID(id); err != nil {
		return err
	}
	r.plans[id] = plan
	return nil
}

func (r *fakePlanRepo) GetByID(ctx context.Context, id uint) (*catalog.Plan, error) {
	return r.plans[id], nil
}

func (r *fakePlanRepo) ListByServiceID(ctx context.Context, serviceID uint) ([]*catalog.Plan, error) {
	result := []*catalog.Plan{}
	for _, p := range r.plans {
		if p.ServiceID() == serviceID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *fakePlanRepo) ListByServiceIDs(ctx context.Context, serviceIDs []uint) (map[uint][]*catalog.Plan, error) {
	result := make(map[uint][]*catalog.Plan)
	for _, id := range serviceIDs {
		plans, _ := r.ListByServiceID(ctx, id)
		result[id] = plans
	}
	return result, nil
}

func (r *fakePlanRepo) Update(ctx context.Context, plan *catalog.Plan) error {
	r.plans[plan.ID()] = plan
	return nil
}

func (r *fakePlanRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.plans[id]; !ok {
		return errors.NewNotFoundError("plan not found")
	}
	delete(r.plans, id)
	return nil
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
