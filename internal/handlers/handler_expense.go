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

// expenseHandler handles HTTP requests related to expenses.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

// registerExpenseRoutes registers expense routes under a trip.
func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := &expenseHandler{expenseService: expenseService}

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.GET("/:expenseID", h.getExpenseByID)
		expenses.DELETE("/:expenseID", h.deleteExpense)
	}
}

// createExpense godoc
// @Summary Create a new expense
// @Description Creates an expense with a distribution describing who shares it and how
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Param   expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse "Invalid input or split sums"
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse "Failed to create expense"
// @Security BearerAuth
// @Router /trips/{tripID}/expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), tripID, req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create expense", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expense"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// listExpenses godoc
// @Summary List expenses of a trip
// @Tags expenses
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Success 200 {array} dto.ExpenseResponse
// @Failure 500 {object} ErrorResponse "Failed to list expenses"
// @Security BearerAuth
// @Router /trips/{tripID}/expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), tripID)
	if err != nil {
		logger.Error("Failed to list expenses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list expenses"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListExpenseResponse(expenses))
}

// getExpenseByID godoc
// @Summary Get an expense by ID
// @Tags expenses
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Param   expenseID path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} ErrorResponse "Expense not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve expense"
// @Security BearerAuth
// @Router /trips/{tripID}/expenses/{expenseID} [get]
func (h *expenseHandler) getExpenseByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")
	expenseID := c.Param("expenseID")

	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), tripID, expenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		} else {
			logger.Error("Failed to get expense", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve expense"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// deleteExpense godoc
// @Summary Delete an expense
// @Tags expenses
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Param   expenseID path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Expense not found"
// @Failure 500 {object} ErrorResponse "Failed to delete expense"
// @Security BearerAuth
// @Router /trips/{tripID}/expenses/{expenseID} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")
	expenseID := c.Param("expenseID")

	if err := h.expenseService.DeleteExpense(c.Request.Context(), tripID, expenseID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		} else {
			logger.Error("Failed to delete expense", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
