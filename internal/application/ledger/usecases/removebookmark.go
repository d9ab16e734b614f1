package usecases

import (
	"context"
	"fmt"

	"subtrack/internal/domain/ledger"
	"subtrack/internal/shared/errors"
	"subtrack/internal/shared/logger"
)

type RemoveBookmarkCommand struct {
	UserID     uint
	BookmarkID uint
}

type RemoveBookmarkUseCase struct {
	bookmarkRepo ledger.BookmarkRepository
	logger       logger.Interface
}

func NewRemoveBookmarkUseCase(bookmarkRepo ledger.BookmarkRepository, logger logger.Interface) *RemoveBookmarkUseCase {
	return &RemoveBookmarkUseCase{
		bookmarkRepo: bookmarkRepo,
		logger:       logger,
	}
}

func (uc *RemoveBookmarkUseCase) Execute(ctx context.Context, cmd RemoveBookmarkCommand) error {
	bookmark, err := uc.bookmarkRepo.GetByID(ctx, cmd.BookmarkID)
	if err != nil {
		uc.logger.Errorw("failed to get bookmark", "error", err, "bookmark_id", cmd.BookmarkID)
		return fmt.Errorf("failed to get bookmark: %w", err)
	}
	if bookmark == nil || bookmark.UserID() != cmd.UserID {
		return errors.NewNotFoundError("bookmark not found")
	}

	if err := uc.bookmarkRepo.Delete(ctx, cmd.BookmarkID); err != nil {
		uc.logger.Errorw("failed to delete bookmark", "error", err, "bookmark_id", cmd.BookmarkID)
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}

	uc.logger.Infow("bookmark removed",
		"bookmark_id", cmd.BookmarkID, "user_id", cmd.UserID)
	return nil
}
