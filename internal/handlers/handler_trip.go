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

// tripHandler handles HTTP requests related to trips.
type tripHandler struct {
	tripService portssvc.TripSvcFacade
}

// registerTripRoutes registers routes related to trips.
func registerTripRoutes(rg *gin.RouterGroup, tripService portssvc.TripSvcFacade) {
	h := &tripHandler{tripService: tripService}

	trips := rg.Group("/trips")
	{
		trips.POST("", h.createTrip)
		trips.GET("", h.listTrips)
		trips.GET("/:tripID", h.getTripByID)
		trips.PUT("/:tripID", h.updateTrip)
	}
}

// createTrip godoc
// @Summary Create a new trip
// @Description Creates a trip with a base currency, tracking mode and optional exchange rates
// @Tags trips
// @Accept  json
// @Produce  json
// @Param   trip body dto.CreateTripRequest true "Trip details"
// @Success 201 {object} dto.TripResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create trip"
// @Security BearerAuth
// @Router /trips [post]
func (h *tripHandler) createTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTrip", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	trip, err := h.tripService.CreateTrip(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create trip", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trip"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTripResponse(trip))
}

// listTrips godoc
// @Summary List trips
// @Description Retrieves all trips
// @Tags trips
// @Produce  json
// @Success 200 {array} dto.TripResponse
// @Failure 500 {object} ErrorResponse "Failed to list trips"
// @Security BearerAuth
// @Router /trips [get]
func (h *tripHandler) listTrips(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	trips, err := h.tripService.ListTrips(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list trips", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list trips"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTripResponse(trips))
}

// getTripByID godoc
// @Summary Get a trip by ID
// @Description Retrieves details for a specific trip
// @Tags trips
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Success 200 {object} dto.TripResponse
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve trip"
// @Security BearerAuth
// @Router /trips/{tripID} [get]
func (h *tripHandler) getTripByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	trip, err := h.tripService.GetTripByID(c.Request.Context(), tripID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		} else {
			logger.Error("Failed to get trip", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve trip"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

// updateTrip godoc
// @Summary Update a trip
// @Description Updates a trip's name, tracking mode or exchange rates
// @Tags trips
// @Accept  json
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Param   trip body dto.UpdateTripRequest true "Fields to update"
// @Success 200 {object} dto.TripResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse "Failed to update trip"
// @Security BearerAuth
// @Router /trips/{tripID} [put]
func (h *tripHandler) updateTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	var req dto.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateTrip", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	trip, err := h.tripService.UpdateTrip(c.Request.Context(), tripID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update trip", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update trip"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}
