package models

import (
	"time"

	"subtrack/internal/shared/constants"
)

// BookmarkModel is the persistence model for bookmarks. The composite unique
// index on (user_id, service_id) is what resolves a race between two
// concurrent bookmark inserts; the repository maps the violation to a
// duplicate error.
type BookmarkModel struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_bookmark_user_service"`
	ServiceID uint   `gorm:"not null;uniqueIndex:idx_bookmark_user_service"`
	Memo      string `gorm:"not null;type:text"`
	CreatedAt time.Time

	User    UserModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Service ServiceModel `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}

func (BookmarkModel) TableName() string {
	return constants.TableBookmarks
}
