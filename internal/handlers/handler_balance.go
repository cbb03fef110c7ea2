package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripweave/tripsplit/internal/apperrors"
	portssvc "github.com/tripweave/tripsplit/internal/core/ports/services"
	"github.com/tripweave/tripsplit/internal/dto"
	"github.com/tripweave/tripsplit/internal/middleware"
)

// balanceHandler handles HTTP requests for computed trip balances.
type balanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
	tripService    portssvc.TripReaderSvc
}

// registerBalanceRoutes registers the balance route under a trip.
func registerBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade, tripService portssvc.TripReaderSvc) {
	h := &balanceHandler{balanceService: balanceService, tripService: tripService}

	rg.GET("/balances", h.getBalances)
}

// getBalances godoc
// @Summary Get trip balances
// @Description Computes per-entity net balances from the trip's expenses and settlements
// @Tags balances
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Success 200 {object} dto.BalanceCalculationResponse
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse "Failed to calculate balances"
// @Security BearerAuth
// @Router /trips/{tripID}/balances [get]
func (h *balanceHandler) getBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	trip, err := h.tripService.GetTripByID(c.Request.Context(), tripID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		} else {
			logger.Error("Failed to get trip for balances", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate balances"})
		}
		return
	}

	calculation, err := h.balanceService.CalculateTripBalances(c.Request.Context(), tripID)
	if err != nil {
		logger.Error("Failed to calculate balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate balances"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceCalculationResponse(calculation, trip.DefaultCurrency))
}
