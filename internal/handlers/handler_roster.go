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

// rosterHandler handles HTTP requests for a trip's participants and families.
type rosterHandler struct {
	rosterService portssvc.RosterSvcFacade
}

// registerRosterRoutes registers participant and family routes under a trip.
func registerRosterRoutes(rg *gin.RouterGroup, rosterService portssvc.RosterSvcFacade) {
	h := &rosterHandler{rosterService: rosterService}

	participants := rg.Group("/participants")
	{
		participants.POST("", h.addParticipant)
		participants.GET("", h.listParticipants)
		participants.DELETE("/:participantID", h.removeParticipant)
	}

	families := rg.Group("/families")
	{
		families.POST("", h.addFamily)
		families.GET("", h.listFamilies)
		families.DELETE("/:familyID", h.removeFamily)
	}
}

// addParticipant godoc
// @Summary Add a participant to a trip
// @Description Adds a participant, optionally attached to an existing family
// @Tags roster
// @Accept  json
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Param   participant body dto.CreateParticipantRequest true "Participant details"
// @Success 201 {object} dto.ParticipantResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse "Failed to add participant"
// @Security BearerAuth
// @Router /trips/{tripID}/participants [post]
func (h *rosterHandler) addParticipant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	var req dto.CreateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for addParticipant", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	participant, err := h.rosterService.AddParticipant(c.Request.Context(), tripID, req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to add participant", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add participant"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToParticipantResponse(participant))
}

// listParticipants godoc
// @Summary List participants of a trip
// @Tags roster
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Success 200 {array} dto.ParticipantResponse
// @Failure 500 {object} ErrorResponse "Failed to list participants"
// @Security BearerAuth
// @Router /trips/{tripID}/participants [get]
func (h *rosterHandler) listParticipants(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	participants, err := h.rosterService.ListParticipants(c.Request.Context(), tripID)
	if err != nil {
		logger.Error("Failed to list participants", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list participants"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListParticipantResponse(participants))
}

// removeParticipant godoc
// @Summary Remove a participant from a trip
// @Tags roster
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Param   participantID path string true "Participant ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Participant not found"
// @Failure 500 {object} ErrorResponse "Failed to remove participant"
// @Security BearerAuth
// @Router /trips/{tripID}/participants/{participantID} [delete]
func (h *rosterHandler) removeParticipant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")
	participantID := c.Param("participantID")

	if err := h.rosterService.RemoveParticipant(c.Request.Context(), tripID, participantID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Participant not found"})
		} else {
			logger.Error("Failed to remove participant", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove participant"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// addFamily godoc
// @Summary Add a family to a trip
// @Tags roster
// @Accept  json
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Param   family body dto.CreateFamilyRequest true "Family details"
// @Success 201 {object} dto.FamilyResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 500 {object} ErrorResponse "Failed to add family"
// @Security BearerAuth
// @Router /trips/{tripID}/families [post]
func (h *rosterHandler) addFamily(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	var req dto.CreateFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for addFamily", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	family, err := h.rosterService.AddFamily(c.Request.Context(), tripID, req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to add family", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add family"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToFamilyResponse(family))
}

// listFamilies godoc
// @Summary List families of a trip
// @Tags roster
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Success 200 {array} dto.FamilyResponse
// @Failure 500 {object} ErrorResponse "Failed to list families"
// @Security BearerAuth
// @Router /trips/{tripID}/families [get]
func (h *rosterHandler) listFamilies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")

	families, err := h.rosterService.ListFamilies(c.Request.Context(), tripID)
	if err != nil {
		logger.Error("Failed to list families", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list families"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListFamilyResponse(families))
}

// removeFamily godoc
// @Summary Remove a family from a trip
// @Description Removes a family; its members stay on the roster as standalone participants
// @Tags roster
// @Produce  json
// @Param   tripID path string true "Trip ID"
// @Param   familyID path string true "Family ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Family not found"
// @Failure 500 {object} ErrorResponse "Failed to remove family"
// @Security BearerAuth
// @Router /trips/{tripID}/families/{familyID} [delete]
func (h *rosterHandler) removeFamily(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tripID := c.Param("tripID")
	familyID := c.Param("familyID")

	if err := h.rosterService.RemoveFamily(c.Request.Context(), tripID, familyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Family not found"})
		} else {
			logger.Error("Failed to remove family", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove family"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
