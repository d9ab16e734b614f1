package usecases

import (
	"context"
	"fmt"

	"subtrack/internal/application/ledger/dto"
	"subtrack/internal/domain/catalog"
	"subtrack/internal/domain/ledger"
	"subtrack/internal/shared/logger"
)

type ListBookmarksUseCase struct {
	bookmarkRepo ledger.BookmarkRepository
	serviceRepo  catalog.ServiceRepository
	logger       logger.Interface
}

func NewListBookmarksUseCase(
	bookmarkRepo ledger.BookmarkRepository,
	serviceRepo catalog.ServiceRepository,
	logger logger.Interface,
) *ListBookmarksUseCase {
	return &ListBookmarksUseCase{
		bookmarkRepo: bookmarkRepo,
		serviceRepo:  serviceRepo,
		logger:       logger,
	}
}

func (uc *ListBookmarksUseCase) Execute(ctx context.Context, userID uint) ([]*dto.BookmarkDTO, error) {
	bookmarks, err := uc.bookmarkRepo.ListByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list bookmarks", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}

	serviceIDs := make([]uint, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		serviceIDs = append(serviceIDs, bookmark.ServiceID())
	}

	services, err := uc.serviceRepo.GetByIDs(ctx, serviceIDs)
	if err != nil {
		uc.logger.Errorw("failed to get bookmarked services", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get services: %w", err)
	}
	byID := make(map[uint]*catalog.Service, len(services))
	for _, service := range services {
		byID[service.ID()] = service
	}

	dtos := make([]*dto.BookmarkDTO, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		service, ok := byID[bookmark.ServiceID()]
		if !ok {
			return nil, fmt.Errorf("bookmark %d references missing service %d",
				bookmark.ID(), bookmark.ServiceID())
		}
		dtos = append(dtos, &dto.BookmarkDTO{
			ID:          bookmark.ID(),
			ServiceID:   service.ID(),
			ServiceName: service.Name(),
			Category:    service.Category(),
			Memo:        bookmark.Memo(),
			CreatedAt:   bookmark.CreatedAt(),
		})
	}
	return dtos, nil
}
