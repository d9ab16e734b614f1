package ledger

import (
	"fmt"
	"time"
)

// Bookmark is a user's saved reference to a catalog service, independent of
// subscribing. A user can bookmark a service at most once; the storage layer
// enforces the (user, service) uniqueness with a composite constraint.
type Bookmark struct {
	id        uint
	userID    uint
	serviceID uint
	memo      string
	createdAt time.Time
}

// NewBookmark creates a bookmark. The memo is stored as an empty string when
// absent, never as NULL.
func NewBookmark(userID, serviceID uint, memo string) (*Bookmark, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if serviceID == 0 {
		return nil, fmt.Errorf("service ID is required")
	}

	return &Bookmark{
		userID:    userID,
		serviceID: serviceID,
		memo:      memo,
		createdAt: time.Now(),
	}, nil
}

// ReconstructBookmark rebuilds a bookmark from persistence.
func ReconstructBookmark(id, userID, serviceID uint, memo string, createdAt time.Time) (*Bookmark, error) {
	if id == 0 {
		return nil, fmt.Errorf("bookmark ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if serviceID == 0 {
		return nil, fmt.Errorf("service ID is required")
	}

	return &Bookmark{
		id:        id,
		userID:    userID,
		serviceID: serviceID,
		memo:      memo,
		createdAt: createdAt,
	}, nil
}

func (b *Bookmark) ID() uint {
	return b.id
}

func (b *Bookmark) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("bookmark ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("bookmark ID cannot be zero")
	}
	b.id = id
	return nil
}

func (b *Bookmark) UserID() uint {
	return b.userID
}

func (b *Bookmark) ServiceID() uint {
	return b.serviceID
}

func (b *Bookmark) Memo() string {
	return b.memo
}

func (b *Bookmark) CreatedAt() time.Time {
	return b.createdAt
}
