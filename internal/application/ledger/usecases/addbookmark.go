package usecases

import (
	"context"
	"fmt"

	"subtrack/internal/application/ledger/dto"
	"subtrack/internal/domain/catalog"
	"subtrack/internal/domain/ledger"
	"subtrack/internal/shared/errors"
	"subtrack/internal/shared/logger"
	"subtrack/internal/shared/services/markdown"
)

type AddBookmarkCommand struct {
	UserID    uint
	ServiceID uint
	Memo      string
}

type AddBookmarkUseCase struct {
	bookmarkRepo ledger.BookmarkRepository
	serviceRepo  catalog.ServiceRepository
	markdown     markdown.Service
	logger       logger.Interface
}

func NewAddBookmarkUseCase(
	bookmarkRepo ledger.BookmarkRepository,
	serviceRepo catalog.ServiceRepository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *AddBookmarkUseCase {
	return &AddBookmarkUseCase{
		bookmarkRepo: bookmarkRepo,
		serviceRepo:  serviceRepo,
		markdown:     markdownSvc,
		logger:       logger,
	}
}

// Execute bookmarks a service for the user. A duplicate (user, service)
// pair is caught by the storage constraint and surfaces as a duplicate
// error.
func (uc *AddBookmarkUseCase) Execute(ctx context.Context, cmd AddBookmarkCommand) (*dto.BookmarkDTO, error) {
	service, err := uc.serviceRepo.GetByID(ctx, cmd.ServiceID)
	if err != nil {
		uc.logger.Errorw("failed to get service", "error", err, "service_id", cmd.ServiceID)
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	if service == nil {
		return nil, errors.NewNotFoundError("service not found")
	}

	bookmark, err := ledger.NewBookmark(cmd.UserID, cmd.ServiceID, uc.markdown.SanitizeMemo(cmd.Memo))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.bookmarkRepo.Create(ctx, bookmark); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create bookmark", "error", err,
			"user_id", cmd.UserID, "service_id", cmd.ServiceID)
		return nil, fmt.Errorf("failed to create bookmark: %w", err)
	}

	return &dto.BookmarkDTO{
		ID:          bookmark.ID(),
		ServiceID:   service.ID(),
		ServiceName: service.Name(),
		Category:    service.Category(),
		Memo:        bookmark.Memo(),
		CreatedAt:   bookmark.CreatedAt(),
	}, nil
}
