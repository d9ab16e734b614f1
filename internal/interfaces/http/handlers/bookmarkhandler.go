package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"subtrack/internal/application/ledger/usecases"
	"subtrack/internal/shared/constants"
	"subtrack/internal/shared/logger"
	"subtrack/internal/shared/utils"
)

type BookmarkHandler struct {
	listBookmarksUC  *usecases.ListBookmarksUseCase
	addBookmarkUC    *usecases.AddBookmarkUseCase
	removeBookmarkUC *usecases.RemoveBookmarkUseCase
	logger           logger.Interface
}

func NewBookmarkHandler(
	listBookmarksUC *usecases.ListBookmarksUseCase,
	addBookmarkUC *usecases.AddBookmarkUseCase,
	removeBookmarkUC *usecases.RemoveBookmarkUseCase,
) *BookmarkHandler {
	return &BookmarkHandler{
		listBookmarksUC:  listBookmarksUC,
		addBookmarkUC:    addBookmarkUC,
		removeBookmarkUC: removeBookmarkUC,
		logger:           logger.NewLogger(),
	}
}

type AddBookmarkRequest struct {
	ServiceID uint   `json:"service_id" binding:"required"`
	Memo      string `json:"memo"`
}

func (h *BookmarkHandler) ListBookmarks(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)

	result, err := h.listBookmarksUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *BookmarkHandler) AddBookmark(c *gin.Context) {
	var req AddBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add bookmark", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.addBookmarkUC.Execute(c.Request.Context(), usecases.AddBookmarkCommand{
		UserID:    c.GetUint(constants.ContextKeyUserID),
		ServiceID: req.ServiceID,
		Memo:      req.Memo,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Bookmark added successfully")
}

func (h *BookmarkHandler) RemoveBookmark(c *gin.Context) {
	bookmarkID, err := utils.ParseIDParam(c, "id", "bookmark")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.removeBookmarkUC.Execute(c.Request.Context(), usecases.RemoveBookmarkCommand{
		UserID:     c.GetUint(constants.ContextKeyUserID),
		BookmarkID: bookmarkID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
