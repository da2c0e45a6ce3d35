package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bazar_api/internal/sales"
)

// salesHandler holds the sales service and implements HTTP handlers for sales operations.
type salesHandler struct {
	salesService *sales.Service
	logger       *zap.Logger
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(salesService *sales.Service, logger *zap.Logger) *salesHandler {
	return &salesHandler{
		salesService: salesService,
		logger:       logger,
	}
}

type messageResponse struct {
	Message string `json:"message" example:"sale not found"`
}

type createSaleResponse struct {
	Message string `json:"message" example:"sale created successfully"`
	SaleID  string `json:"saleId" example:"5f0c1b9e-9a8e-4f43-9a64-3b1c2f0b7d11"`
}

type statusResponse struct {
	Status string `json:"status" example:"Ok"`
}

// handleListSales handles the GET /sales endpoint.
//
//	@Summary		List sales
//	@Description	Returns every sale, optionally filtered by customer name, calendar day and product type.
//	@Tags			sales
//	@Produce		json
//	@Param			customerName	query		string	false	"substring of the customer name"
//	@Param			saleDate		query		string	false	"any timestamp on the wanted day"
//	@Param			productType		query		string	false	"exact product type"
//	@Success		200				{array}		sales.Sale
//	@Failure		500				{object}	messageResponse
//	@Router			/sales [get]
func (h *salesHandler) handleListSales(ctx *gin.Context) {
	customerName := ctx.Query("customerName")
	saleDate := ctx.Query("saleDate")
	productType := ctx.Query("productType")

	result, err := h.salesService.ListSales(ctx.Request.Context(), customerName, saleDate, productType)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, messageResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// handleCreateSale handles the POST /sales endpoint.
//
//	@Summary	Create a sale
//	@Tags		sales
//	@Accept		json
//	@Produce	json
//	@Param		sale	body		sales.NewSale	true	"sale to record"
//	@Success	201		{object}	createSaleResponse
//	@Failure	500		{object}	messageResponse
//	@Router		/sales [post]
func (h *salesHandler) handleCreateSale(ctx *gin.Context) {
	var req sales.NewSale

	// a body that cannot be coerced into a sale is a server-side failure, like a store coercion error
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, messageResponse{Message: err.Error()})
		return
	}

	saleID, err := h.salesService.CreateSale(ctx.Request.Context(), req)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, messageResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, createSaleResponse{Message: "sale created successfully", SaleID: saleID})
}

// handleDeleteSale handles the DELETE /sales/:saleId endpoint.
//
//	@Summary	Delete a sale
//	@Tags		sales
//	@Produce	json
//	@Param		saleId	path		string	true	"sale ID"
//	@Success	200		{object}	messageResponse
//	@Failure	404		{object}	messageResponse
//	@Failure	500		{object}	messageResponse
//	@Router		/sales/{saleId} [delete]
func (h *salesHandler) handleDeleteSale(ctx *gin.Context) {
	saleID := ctx.Param("saleId")

	err := h.salesService.DeleteSale(ctx.Request.Context(), saleID)
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, messageResponse{Message: "sale deleted successfully"})
	case errors.Is(err, sales.ErrNotFound):
		ctx.JSON(http.StatusNotFound, messageResponse{Message: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, messageResponse{Message: err.Error()})
	}
}

// handleSalesStatistics handles the GET /sales/statistics endpoint.
//
//	@Summary		Sales statistics
//	@Description	Aggregates the sales whose timestamp falls within [startDate, endDate].
//	@Tags			sales
//	@Produce		json
//	@Param			startDate	query		string	true	"range start"
//	@Param			endDate		query		string	true	"range end"
//	@Success		200			{object}	sales.Statistics
//	@Failure		400			{object}	messageResponse
//	@Failure		500			{object}	messageResponse
//	@Router			/sales/statistics [get]
func (h *salesHandler) handleSalesStatistics(ctx *gin.Context) {
	startDate := ctx.Query("startDate")
	endDate := ctx.Query("endDate")

	stats, err := h.salesService.SalesStatistics(ctx.Request.Context(), startDate, endDate)
	if err != nil {
		if errors.Is(err, sales.ErrMissingDateRange) {
			ctx.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, messageResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// handleStatus handles the GET /status endpoint. It never touches the store.
//
//	@Summary	Service status
//	@Tags		status
//	@Produce	json
//	@Success	200	{object}	statusResponse
//	@Router		/status [get]
func handleStatus(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, statusResponse{Status: "Ok"})
}
