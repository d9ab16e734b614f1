package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"subtrack/internal/application/ledger/usecases"
	"subtrack/internal/infrastructure/export"
	"subtrack/internal/shared/constants"
	"subtrack/internal/shared/logger"
	"subtrack/internal/shared/utils"
)

type SubscriptionHandler struct {
	listSubscriptionsUC  *usecases.ListSubscriptionsUseCase
	createSubscriptionUC *usecases.CreateSubscriptionUseCase
	cancelSubscriptionUC *usecases.CancelSubscriptionUseCase
	renewSubscriptionUC  *usecases.RenewSubscriptionUseCase
	deleteSubscriptionUC *usecases.DeleteSubscriptionUseCase
	exportUC             *usecases.ExportSubscriptionsUseCase
	logger               logger.Interface
}

func NewSubscriptionHandler(
	listSubscriptionsUC *usecases.ListSubscriptionsUseCase,
	createSubscriptionUC *usecases.CreateSubscriptionUseCase,
	cancelSubscriptionUC *usecases.CancelSubscriptionUseCase,
	renewSubscriptionUC *usecases.RenewSubscriptionUseCase,
	deleteSubscriptionUC *usecases.DeleteSubscriptionUseCase,
	exportUC *usecases.ExportSubscriptionsUseCase,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		listSubscriptionsUC:  listSubscriptionsUC,
		createSubscriptionUC: createSubscriptionUC,
		cancelSubscriptionUC: cancelSubscriptionUC,
		renewSubscriptionUC:  renewSubscriptionUC,
		deleteSubscriptionUC: deleteSubscriptionUC,
		exportUC:             exportUC,
		logger:               logger.NewLogger(),
	}
}

type CreateSubscriptionRequest struct {
	PlanID        uint             `json:"plan_id" binding:"required"`
	Memo          string           `json:"memo"`
	PriceOverride *decimal.Decimal `json:"price_override"`
}

func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)

	result, err := h.listSubscriptionsUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create subscription", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createSubscriptionUC.Execute(c.Request.Context(), usecases.CreateSubscriptionCommand{
		UserID:        c.GetUint(constants.ContextKeyUserID),
		PlanID:        req.PlanID,
		Memo:          req.Memo,
		PriceOverride: req.PriceOverride,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Subscription created successfully")
}

func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	subscriptionID, err := utils.ParseIDParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.cancelSubscriptionUC.Execute(c.Request.Context(), usecases.CancelSubscriptionCommand{
		UserID:         c.GetUint(constants.ContextKeyUserID),
		SubscriptionID: subscriptionID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription canceled", nil)
}

func (h *SubscriptionHandler) RenewSubscription(c *gin.Context) {
	subscriptionID, err := utils.ParseIDParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.renewSubscriptionUC.Execute(c.Request.Context(), usecases.RenewSubscriptionCommand{
		UserID:         c.GetUint(constants.ContextKeyUserID),
		SubscriptionID: subscriptionID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription renewed", result)
}

func (h *SubscriptionHandler) DeleteSubscription(c *gin.Context) {
	subscriptionID, err := utils.ParseIDParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.deleteSubscriptionUC.Execute(c.Request.Context(), usecases.DeleteSubscriptionCommand{
		UserID:         c.GetUint(constants.ContextKeyUserID),
		SubscriptionID: subscriptionID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ExportSubscriptions streams the active ledger as a downloadable file.
// The format query parameter selects csv (default) or pdf.
func (h *SubscriptionHandler) ExportSubscriptions(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	var writer usecases.ReportWriter
	switch format {
	case "csv":
		writer = export.NewCSVWriter()
	case "pdf":
		writer = export.NewPDFWriter()
	default:
		utils.ErrorResponse(c, http.StatusBadRequest, "unsupported export format: "+format)
		return
	}

	filename := fmt.Sprintf("subscriptions_%s.%s", time.Now().Format("20060102"), format)
	c.Header("Content-Type", writer.ContentType())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	err := h.exportUC.Execute(c.Request.Context(), usecases.ExportSubscriptionsCommand{
		UserID:   c.GetUint(constants.ContextKeyUserID),
		Username: c.GetString(constants.ContextKeyUsername),
	}, writer, c.Writer)
	if err != nil {
		h.logger.Errorw("failed to export subscriptions", "error", err)
		// Headers may already be out; only respond if nothing was written
		if !c.Writer.Written() {
			utils.ErrorResponseWithError(c, err)
		}
	}
}
