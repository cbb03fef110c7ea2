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

// settlementHandler handles HTTP requests for recorded settlements and the
// suggested settlement plan.
type settlementHandler struct {
	settlementService portssvc.SettlementSvcFacade
	balanceService    portssvc.BalanceSvcFacade
}

// registerSettlementRoutes registers settlement routes under a trip.
func registerSettlementRoutes(rg *gin.RouterGroup, settlementService portssvc.SettlementSvcFacade, balanceService portssvc.BalanceSvcFacade) {
	h := &settlementHandler{settlementService: settlementService, balanceService: balanceService}

	settlements := rg.Group("/settlements")
	{
		settlements.POST("", h.recordSettlement)
		settlements.GET("", h.listSettlements)
		settlements.GET("/plan", h.getSettlementPlan)
		settlements.DELETE("/:settlementID", h.deleteSettlement)
	}
}

// recordSettlement godoc
// @Summary Record a settlement
// @Description Records a real-world payment between two participants, in the trip's base currency
// @Tags settlements
// @Accept  json
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Param   settlement body dto.CreateSettlementRequest true "Settlement details"
// @Success 201 {object} dto.SettlementResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse "Failed to record settlement"
// @Security BearerAuth
// @Router /trips/{tripID}/settlements [post]
func (h *settlementHandler) recordSettlement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	var req dto.CreateSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for recordSettlement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	settlement, err := h.settlementService.RecordSettlement(c.Request.Context(), tripID, req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record settlement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record settlement"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToSettlementResponse(settlement))
}

// listSettlements godoc
// @Summary List settlements of a trip
// @Tags settlements
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Success 200 {array} dto.SettlementResponse
// @Failure 500 {object} ErrorResponse "Failed to list settlements"
// @Security BearerAuth
// @Router /trips/{tripID}/settlements [get]
func (h *settlementHandler) listSettlements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	settlements, err := h.settlementService.ListSettlements(c.Request.Context(), tripID)
	if err != nil {
		logger.Error("Failed to list settlements", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list settlements"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListSettlementResponse(settlements))
}

// getSettlementPlan godoc
// @Summary Get the suggested settlement plan
// @Description Computes the shortest list of payments that settles all current balances
// @Tags settlements
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Success 200 {object} dto.OptimalSettlementResponse
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse "Failed to compute settlement plan"
// @Security BearerAuth
// @Router /trips/{tripID}/settlements/plan [get]
func (h *settlementHandler) getSettlementPlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	plan, err := h.balanceService.SuggestSettlementPlan(c.Request.Context(), tripID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		} else {
			logger.Error("Failed to compute settlement plan", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute settlement plan"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToOptimalSettlementResponse(plan))
}

// deleteSettlement godoc
// @Summary Delete a settlement
// @Description Removes a mistakenly recorded settlement
// @Tags settlements
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Param   settlementID path string true "Settlement ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Settlement not found"
// @Failure 500 {object} ErrorResponse "Failed to delete settlement"
// @Security BearerAuth
// @Router /trips/{tripID}/settlements/{settlementID} [delete]
func (h *settlementHandler) deleteSettlement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")
	settlementID := c.Param("settlementID")

	if err := h.settlementService.DeleteSettlement(c.Request.Context(), tripID, settlementID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Settlement not found"})
		} else {
			logger.Error("Failed to delete settlement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete settlement"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
