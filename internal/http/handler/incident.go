package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cluey.app/bridge/internal/http/dto"
	"cluey.app/bridge/internal/service"
)

type IncidentHandler struct {
	incidents service.IncidentService
}

func NewIncidentHandler(incidents service.IncidentService) *IncidentHandler {
	return &IncidentHandler{incidents: incidents}
}

func (h *IncidentHandler) Start(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.StartIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid start request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.incidents.Start(ctx, service.StartIncidentParams{
		AlertID:     req.AlertID,
		Participant: req.Participant,
		OwnerID:     req.PID,
		Credential:  req.ClueyToken,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.ErrorContext(ctx, "failed to start incident session", "error", err, "alert_id", req.AlertID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start incident session"})
		return
	}

	c.JSON(http.StatusOK, dto.StartIncidentResponse{
		Status:      "started",
		AlertID:     result.AlertID,
		Participant: result.Participant,
	})
}
