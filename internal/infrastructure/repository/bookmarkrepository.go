package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"subtrack/internal/domain/ledger"
	"subtrack/internal/infrastructure/persistence/models"
	"subtrack/internal/shared/errors"
	"subtrack/internal/shared/logger"
)

type BookmarkRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewBookmarkRepository(db *gorm.DB, logger logger.Interface) ledger.BookmarkRepository {
	return &BookmarkRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

// Create inserts the bookmark and relies on the (user_id, service_id) unique
// constraint to reject duplicates, including concurrent ones. The violation
// is mapped to a duplicate error instead of being checked application-side.
func (r *BookmarkRepositoryImpl) Create(ctx context.Context, bookmark *ledger.Bookmark) error {
	model := r.toModel(bookmark)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateKeyError(err) {
			return errors.NewDuplicateError("service is already bookmarked")
		}
		r.logger.Errorw("failed to create bookmark", "error", err,
			"user_id", bookmark.UserID(), "service_id", bookmark.ServiceID())
		return fmt.Errorf("failed to create bookmark: %w", err)
	}

	if err := bookmark.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("bookmark created", "bookmark_id", model.ID,
		"user_id", bookmark.UserID(), "service_id", bookmark.ServiceID())
	return nil
}

func (r *BookmarkRepositoryImpl) GetByID(ctx context.Context, id uint) (*ledger.Bookmark, error) {
	var model models.BookmarkModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get bookmark by ID", "error", err, "bookmark_id", id)
		return nil, fmt.Errorf("failed to get bookmark: %w", err)
	}

	return r.toEntity(&model)
}

func (r *BookmarkRepositoryImpl) ListByUserID(ctx context.Context, userID uint) ([]*ledger.Bookmark, error) {
	var bookmarkModels []*models.BookmarkModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&bookmarkModels).Error
	if err != nil {
		r.logger.Errorw("failed to list bookmarks", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}

	bookmarks := make([]*ledger.Bookmark, 0, len(bookmarkModels))
	for _, model := range bookmarkModels {
		bookmark, err := r.toEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to convert bookmark model %d: %w", model.ID, err)
		}
		bookmarks = append(bookmarks, bookmark)
	}
	return bookmarks, nil
}

func (r *BookmarkRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.BookmarkModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete bookmark", "error", result.Error, "bookmark_id", id)
		return fmt.Errorf("failed to delete bookmark: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("bookmark not found")
	}

	r.logger.Infow("bookmark deleted", "bookmark_id", id)
	return nil
}

func (r *BookmarkRepositoryImpl) toModel(bookmark *ledger.Bookmark) *models.BookmarkModel {
	return &models.BookmarkModel{
		ID:        bookmark.ID(),
		UserID:    bookmark.UserID(),
		ServiceID: bookmark.ServiceID(),
		Memo:      bookmark.Memo(),
		CreatedAt: bookmark.CreatedAt(),
	}
}

func (r *BookmarkRepositoryImpl) toEntity(model *models.BookmarkModel) (*ledger.Bookmark, error) {
	return ledger.ReconstructBookmark(
		model.ID,
		model.UserID,
		model.ServiceID,
		model.Memo,
		model.CreatedAt,
	)
}
