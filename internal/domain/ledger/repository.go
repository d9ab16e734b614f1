package ledger

import "context"

// SubscriptionRepository persists a user's subscription records.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *Subscription) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	ListByUserID(ctx context.Context, userID uint) ([]*Subscription, error)
	Update(ctx context.Context, sub *Subscription) error
	Delete(ctx context.Context, id uint) error
}

// BookmarkRepository persists a user's bookmarks. Create must surface the
// storage-level (user, service) unique violation as a duplicate error rather
// than relying on a read-then-write check, so concurrent inserts stay safe.
type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *Bookmark) error
	GetByID(ctx context.Context, id uint) (*Bookmark, error)
	ListByUserID(ctx context.Context, userID uint) ([]*Bookmark, error)
	Delete(ctx context.Context, id uint) error
}
