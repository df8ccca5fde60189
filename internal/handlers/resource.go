package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/hometrack/hometrack-api/internal/errors"
	"github.com/hometrack/hometrack-api/internal/middleware"
	"github.com/hometrack/hometrack-api/internal/models"
	"github.com/hometrack/hometrack-api/internal/services"
	"github.com/hometrack/hometrack-api/internal/utils"
)

// ResourceHandler exposes a ResourceService over HTTP
type ResourceHandler[T any, P interface {
	*T
	models.Document
}] struct {
	service *services.ResourceService[T, P]
	logger  *slog.Logger
}

// NewResourceHandler creates a new ResourceHandler
func NewResourceHandler[T any, P interface {
	*T
	models.Document
}](service *services.ResourceService[T, P], logger *slog.Logger) *ResourceHandler[T, P] {
	return &ResourceHandler[T, P]{
		service: service,
		logger:  logger,
	}
}

// Register mounts the CRUD routes and the derived views the resource enables
func (h *ResourceHandler[T, P]) Register(rg *gin.RouterGroup) {
	def := h.service.Definition()

	rg.POST("", h.Create)
	rg.GET("", h.List)

	if def.Views.Has(services.ViewLowStock) {
		rg.GET("/low-stock", h.LowStock)
	}
	if def.Views.Has(services.ViewNearExpiry) {
		rg.GET("/close-to-expiry", h.NearExpiry)
	}
	if def.Views.Has(services.ViewHighPriority) {
		rg.GET("/high-priority", h.HighPriority)
	}
	if def.Views.Has(services.ViewByStore) {
		rg.GET("/store/:store", h.ByStore)
	}

	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// Create stores a new document for the current user
func (h *ResourceHandler[T, P]) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var doc T
	if err := c.ShouldBindJSON(&doc); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), userID, &doc)
	if err != nil {
		h.respondError(c, err)
		return
	}

	def := h.service.Definition()
	c.JSON(http.StatusCreated, gin.H{
		"message":       def.CreatedMessage(),
		def.EnvelopeKey: created,
	})
}

// List returns the current user's documents, newest first
func (h *ResourceHandler[T, P]) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var opts services.ListOptions
	if params, ok := utils.GetPaginationParams(c); ok {
		opts.Limit = params.Limit
		opts.Offset = params.Offset
	}

	docs, err := h.service.List(c.Request.Context(), userID, opts)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, docs)
}

// Get returns a single document
func (h *ResourceHandler[T, P]) Get(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	doc, err := h.service.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// Update applies the fields present in the body to a document
func (h *ResourceHandler[T, P]) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	patch, err := c.GetRawData()
	if err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), userID, c.Param("id"), patch)
	if err != nil {
		h.respondError(c, err)
		return
	}

	def := h.service.Definition()
	c.JSON(http.StatusOK, gin.H{
		"message":       def.UpdatedMessage(),
		def.EnvelopeKey: updated,
	})
}

// Delete removes a document and echoes it back
func (h *ResourceHandler[T, P]) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	deleted, err := h.service.Delete(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	def := h.service.Definition()
	c.JSON(http.StatusOK, gin.H{
		"message":       def.DeletedMessage(),
		def.EnvelopeKey: deleted,
	})
}

func (h *ResourceHandler[T, P]) LowStock(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	docs, err := h.service.LowStock(c.Request.Context(), userID)
	h.respondList(c, docs, err)
}

func (h *ResourceHandler[T, P]) NearExpiry(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	docs, err := h.service.NearExpiry(c.Request.Context(), userID)
	h.respondList(c, docs, err)
}

func (h *ResourceHandler[T, P]) HighPriority(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	docs, err := h.service.HighPriority(c.Request.Context(), userID)
	h.respondList(c, docs, err)
}

func (h *ResourceHandler[T, P]) ByStore(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	docs, err := h.service.ByStore(c.Request.Context(), userID, c.Param("store"))
	h.respondList(c, docs, err)
}

func (h *ResourceHandler[T, P]) respondList(c *gin.Context, docs []T, err error) {
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *ResourceHandler[T, P]) respondError(c *gin.Context, err error) {
	def := h.service.Definition()

	var emptyView *services.EmptyViewError
	switch {
	case errors.As(err, &emptyView):
		apierrors.NotFound(c, emptyView.Message)
	case errors.Is(err, services.ErrNotFound):
		apierrors.NotFound(c, def.NotFoundMessage())
	case errors.Is(err, services.ErrDuplicate):
		apierrors.BadRequest(c, def.DuplicateMessage())
	case errors.Is(err, services.ErrInvalidInput):
		apierrors.BadRequestWithDetails(c, "Invalid request body", err)
	case errors.Is(err, services.ErrMissingOwner):
		apierrors.Unauthorized(c, "")
	default:
		_ = c.Error(err)
		h.logger.Error("Resource operation failed", "resource", def.Name, "error", err)
		apierrors.InternalError(c, "")
	}
}
