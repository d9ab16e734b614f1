package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"subtrack/internal/domain/billing"
	"subtrack/internal/domain/catalog"
	"subtrack/internal/domain/ledger"
	"subtrack/internal/shared/errors"
	"subtrack/internal/shared/logger"
)

type fakeSubscriptionRepo struct {
	subs   map[uint]*ledger.Subscription
	nextID uint
}

func newFakeSubscriptionRepo(subs ...*ledger.Subscription) *fakeSubscriptionRepo {
	repo := &fakeSubscriptionRepo{subs: make(map[uint]*ledger.Subscription), nextID: 100}
	for _, s := range subs {
		repo.subs[s.ID()] = s
	}
	return repo
}

func (r *fakeSubscriptionRepo) Create(ctx context.Context, sub *ledger.Subscription) error {
	r.nextID++
	if err := sub.SetID(r.nextID); err != nil {
		return err
	}
	r.subs[r.nextID] = sub
	return nil
}

func (r *fakeSubscriptionRepo) GetByID(ctx context.Context, id uint) (*ledger.Subscription, error) {
	return r.subs[id], nil
}

func (r *fakeSubscriptionRepo) ListByUserID(ctx context.Context, userID uint) ([]*ledger.Subscription, error) {
	result := []*ledger.Subscription{}
	for _, s := range r.subs {
		if s.UserID() == userID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (r *fakeSubscriptionRepo) Update(ctx context.Context, sub *ledger.Subscription) error {
	if _, ok := r.subs[sub.ID()]; !ok {
		return errors.NewNotFoundError("subscription not found")
	}
	r.subs[sub.ID()] = sub
	return nil
}

func (r *fakeSubscriptionRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.subs[id]; !ok {
		return errors.NewNotFoundError("subscription not found")
	}
	delete(r.subs, id)
	return nil
}

type fakeBookmarkRepo struct {
	bookmarks map[uint]*ledger.Bookmark
	nextID    uint
}

func newFakeBookmarkRepo(bookmarks ...*ledger.Bookmark) *fakeBookmarkRepo {
	repo := &fakeBookmarkRepo{bookmarks: make(map[uint]*ledger.Bookmark), nextID: 200}
	for _, b := range bookmarks {
		repo.bookmarks[b.ID()] = b
	}
	return repo
}

func (r *fakeBookmarkRepo) Create(ctx context.Context, bookmark *ledger.Bookmark) error {
	for _, existing := range r.bookmarks {
		if existing.UserID() == bookmark.UserID() && existing.ServiceID() == bookmark.ServiceID() {
			return errors.NewDuplicateError("service is already bookmarked")
		}
	}
	r.nextID++
	if err := bookmark.SetID(r.nextID); err != nil {
		return err
	}
	r.bookmarks[r.nextID] = bookmark
	return nil
}

func (r *fakeBookmarkRepo) GetByID(ctx context.Context, id uint) (*ledger.Bookmark, error) {
	return r.bookmarks[id], nil
}

func (r *fakeBookmarkRepo) ListByUserID(ctx context.Context, userID uint) ([]*ledger.Bookmark, error) {
	result := []*ledger.Bookmark{}
	for _, b := range r.bookmarks {
		if b.UserID() == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (r *fakeBookmarkRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.bookmarks[id]; !ok {
		return errors.NewNotFoundError("bookmark not found")
	}
	delete(r.bookmarks, id)
	return nil
}

type fakeServiceRepo struct {
	services map[uint]*catalog.Service
}

func newFakeServiceRepo(services ...*catalog.Service) *fakeServiceRepo {
	repo := &fakeServiceRepo{services: make(map[uint]*catalog.Service)}
	for _, s := range services {
		repo.services[s.ID()] = s
	}
	return repo
}

func (r *fakeServiceRepo) Create(ctx context.Context, service *catalog.Service) error {
	return nil
}

func (r *fakeServiceRepo) GetByID(ctx context.Context, id uint) (*catalog.Service, error) {
	return r.services[id], nil
}

func (r *fakeServiceRepo) GetByIDs(ctx context.Context, ids []uint) ([]*catalog.Service, error) {
	result := []*catalog.Service{}
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
	return nil, nil
}

func (r *fakeServiceRepo) Update(ctx context.Context, service *catalog.Service) error {
	return nil
}

func (r *fakeServiceRepo) Delete(ctx context.Context, id uint) error {
	return nil
}

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
	return nil
}

func (r *fakePlanRepo) Delete(ctx context.Context, id uint) error {
	return nil
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}

func seedService(t *testing.T, id uint, name string) *catalog.Service {
	t.Helper()
	now := time.Now()
	service, err := catalog.ReconstructService(id, name, "OTT", "", "", now, now)
	require.NoError(t, err)
	return service
}

func seedPlan(t *testing.T, id, serviceID uint, name string, cycle billing.Cycle, price string) *catalog.Plan {
	t.Helper()
	now := time.Now()
	plan, err := catalog.ReconstructPlan(id, serviceID, name, cycle,
		decimal.RequireFromString(price), "KRW", nil, now, now)
	require.NoError(t, err)
	return plan
}

func seedSubscription(t *testing.T, id, userID, planID uint, status ledger.Status, override *decimal.Decimal) *ledger.Subscription {
	t.Helper()
	now := time.Now()
	sub, err := ledger.ReconstructSubscription(id, userID, planID, status,
		now, now.AddDate(0, 1, 0), "", override, now, now)
	require.NoError(t, err)
	return sub
}
