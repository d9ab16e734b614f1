package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"subtrack/internal/application/catalog/usecases"
	"subtrack/internal/shared/logger"
	"subtrack/internal/shared/utils"
)

// CatalogHandler is the admin-only write side of the catalog. All routes
// sit behind authentication plus the admin check.
type CatalogHandler struct {
	createServiceUC *usecases.CreateServiceUseCase
	updateServiceUC *usecases.UpdateServiceUseCase
	deleteServiceUC *usecases.DeleteServiceUseCase
	createPlanUC    *usecases.CreatePlanUseCase
	updatePlanUC    *usecases.UpdatePlanUseCase
	deletePlanUC    *usecases.DeletePlanUseCase
	logger          logger.Interface
}

func NewCatalogHandler(
	createServiceUC *usecases.CreateServiceUseCase,
	updateServiceUC *usecases.UpdateServiceUseCase,
	deleteServiceUC *usecases.DeleteServiceUseCase,
	createPlanUC *usecases.CreatePlanUseCase,
	updatePlanUC *usecases.UpdatePlanUseCase,
	deletePlanUC *usecases.DeletePlanUseCase,
) *CatalogHandler {
	return &CatalogHandler{
		createServiceUC: createServiceUC,
		updateServiceUC: updateServiceUC,
		deleteServiceUC: deleteServiceUC,
		createPlanUC:    createPlanUC,
		updatePlanUC:    updatePlanUC,
		deletePlanUC:    deletePlanUC,
		logger:          logger.NewLogger(),
	}
}

type ServiceRequest struct {
	Name         string `json:"name" binding:"required"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	OfficialLink string `json:"official_link"`
}

type CreatePlanRequest struct {
	Name         string          `json:"name" binding:"required"`
	BillingCycle string          `json:"billing_cycle" binding:"required,oneof=month year"`
	Price        decimal.Decimal `json:"price" binding:"required"`
	Currency     string          `json:"currency"`
	Benefits     []string        `json:"benefits"`
}

type UpdatePlanRequest struct {
	Name         string          `json:"name" binding:"required"`
	BillingCycle string          `json:"billing_cycle" binding:"required,oneof=month year"`
	Price        decimal.Decimal `json:"price" binding:"required"`
	Benefits     []string        `json:"benefits"`
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create service", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createServiceUC.Execute(c.Request.Context(), usecases.CreateServiceCommand{
		Name:         req.Name,
		Category:     req.Category,
		Description:  req.Description,
		OfficialLink: req.OfficialLink,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Service created successfully")
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	serviceID, err := utils.ParseIDParam(c, "id", "service")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateServiceUC.Execute(c.Request.Context(), usecases.UpdateServiceCommand{
		ServiceID:    serviceID,
		Name:         req.Name,
		Category:     req.Category,
		Description:  req.Description,
		OfficialLink: req.OfficialLink,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Service updated successfully", result)
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	serviceID, err := utils.ParseIDParam(c, "id", "service")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteServiceUC.Execute(c.Request.Context(), serviceID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *CatalogHandler) CreatePlan(c *gin.Context) {
	serviceID, err := utils.ParseIDParam(c, "id", "service")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create plan", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createPlanUC.Execute(c.Request.Context(), usecases.CreatePlanCommand{
		ServiceID:    serviceID,
		Name:         req.Name,
		BillingCycle: req.BillingCycle,
		Price:        req.Price,
		Currency:     req.Currency,
		Benefits:     req.Benefits,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Plan created successfully")
}

func (h *CatalogHandler) UpdatePlan(c *gin.Context) {
	planID, err := utils.ParseIDParam(c, "id", "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updatePlanUC.Execute(c.Request.Context(), usecases.UpdatePlanCommand{
		PlanID:       planID,
		Name:         req.Name,
		BillingCycle: req.BillingCycle,
		Price:        req.Price,
		Benefits:     req.Benefits,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan updated successfully", result)
}

func (h *CatalogHandler) DeletePlan(c *gin.Context) {
	planID, err := utils.ParseIDParam(c, "id", "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deletePlanUC.Execute(c.Request.Context(), planID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
