package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hometrack/hometrack-api/internal/dto"
	apierrors "github.com/hometrack/hometrack-api/internal/errors"
	"github.com/hometrack/hometrack-api/internal/services"
)

type TaskSuggestHandler struct {
	aiService *services.AIService
	logger    *slog.Logger
}

func NewTaskSuggestHandler(aiService *services.AIService, logger *slog.Logger) *TaskSuggestHandler {
	return &TaskSuggestHandler{
		aiService: aiService,
		logger:    logger,
	}
}

// SuggestTasks extracts tasks from free text using AI. Nothing is stored;
// the client creates the tasks it wants to keep.
func (h *TaskSuggestHandler) SuggestTasks(c *gin.Context) {
	var req dto.SuggestTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err)
		return
	}

	if !h.aiService.Configured() {
		apierrors.ServiceUnavailable(c, "AI service is not configured")
		return
	}

	tasks, err := h.aiService.SuggestTasks(c.Request.Context(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAIServiceNotConfigured):
			apierrors.ServiceUnavailable(c, "AI service is not configured")
		default:
			_ = c.Error(err)
			h.logger.Warn("Task suggestion failed", "error", err)
			apierrors.BadGateway(c, "Failed to generate tasks")
		}
		return
	}

	c.JSON(http.StatusOK, dto.SuggestTasksResponse{Tasks: tasks})
}
