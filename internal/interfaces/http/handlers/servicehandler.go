package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"subtrack/internal/application/catalog/usecases"
	"subtrack/internal/shared/errors"
	"subtrack/internal/shared/logger"
	"subtrack/internal/shared/utils"
)

// ServiceHandler serves the public, read-only side of the catalog.
type ServiceHandler struct {
	listServicesUC     *usecases.ListServicesUseCase
	getServiceDetailUC *usecases.GetServiceDetailUseCase
	listPlansUC        *usecases.ListPlansForServiceUseCase
	compareServicesUC  *usecases.CompareServicesUseCase
	logger             logger.Interface
}

func NewServiceHandler(
	listServicesUC *usecases.ListServicesUseCase,
	getServiceDetailUC *usecases.GetServiceDetailUseCase,
	listPlansUC *usecases.ListPlansForServiceUseCase,
	compareServicesUC *usecases.CompareServicesUseCase,
) *ServiceHandler {
	return &ServiceHandler{
		listServicesUC:     listServicesUC,
		getServiceDetailUC: getServiceDetailUC,
		listPlansUC:        listPlansUC,
		compareServicesUC:  compareServicesUC,
		logger:             logger.NewLogger(),
	}
}

func (h *ServiceHandler) ListServices(c *gin.Context) {
	q := usecases.ListServicesQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		PriceMin: c.Query("price_min"),
		PriceMax: c.Query("price_max"),
		Sort:     c.Query("sort"),
	}

	result, err := h.listServicesUC.Execute(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ServiceHandler) GetServiceDetail(c *gin.Context) {
	serviceID, err := utils.ParseIDParam(c, "id", "service")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getServiceDetailUC.Execute(c.Request.Context(), serviceID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ServiceHandler) ListPlans(c *gin.Context) {
	serviceID, err := utils.ParseIDParam(c, "id", "service")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listPlansUC.Execute(c.Request.Context(), serviceID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CompareServices keeps its own flat wire format: the comparison payload on
// success and {"error": "..."} on failure.
func (h *ServiceHandler) CompareServices(c *gin.Context) {
	result, err := h.compareServicesUC.Execute(c.Request.Context(), usecases.CompareServicesQuery{
		IDs: c.Query("ids"),
	})
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			c.JSON(appErr.Code, gin.H{"error": appErr.Message})
			return
		}
		h.logger.Errorw("comparison failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error occurred"})
		return
	}

	c.JSON(http.StatusOK, result)
}
