package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/publications-api/internal/service"
	"github.com/rs/zerolog"
)

// PublicationHandler handles publication lifecycle endpoints
type PublicationHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewPublicationHandler creates a new PublicationHandler
func NewPublicationHandler(services *service.Services, log zerolog.Logger) *PublicationHandler {
	return &PublicationHandler{
		services: services,
		log:      log.With().Str("handler", "publication").Logger(),
	}
}

type publicationRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// List handles GET /api/publication
func (h *PublicationHandler) List(c *gin.Context) {
	pubs, err := h.services.Publication.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list publications")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve publications"})
		return
	}
	if len(pubs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no publications found"})
		return
	}

	c.JSON(http.StatusOK, pubs)
}

// Get handles GET /api/publication/:id
func (h *PublicationHandler) Get(c *gin.Context) {
	pub, err := h.services.Publication.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPublicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "publication not found"})
			return
		}
		h.log.Error().Err(err).Str("publication_id", c.Param("id")).Msg("Failed to get publication")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve publication"})
		return
	}

	c.JSON(http.StatusOK, pub)
}

// Create handles POST /api/publication
// The author is always the authenticated caller, never the request body.
func (h *PublicationHandler) Create(c *gin.Context) {
	var req publicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and content are required"})
		return
	}

	author := c.GetString(identityKey)
	pub, err := h.services.Publication.Create(c.Request.Context(), author, req.Title, req.Content)
	if err != nil {
		h.log.Error().Err(err).Str("author", author).Msg("Failed to create publication")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create publication"})
		return
	}

	c.JSON(http.StatusCreated, pub)
}

// Update handles PUT /api/publication/:id
func (h *PublicationHandler) Update(c *gin.Context) {
	var req publicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and content are required"})
		return
	}

	_, err := h.services.Publication.Update(c.Request.Context(), c.Param("id"), req.Title, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrPublicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "publication not found"})
			return
		}
		h.log.Error().Err(err).Str("publication_id", c.Param("id")).Msg("Failed to update publication")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update publication"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "publication updated successfully"})
}

// Delete handles DELETE /api/publication/:id
func (h *PublicationHandler) Delete(c *gin.Context) {
	err := h.services.Publication.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPublicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "publication not found"})
			return
		}
		h.log.Error().Err(err).Str("publication_id", c.Param("id")).Msg("Failed to delete publication")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete publication"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "publication deleted successfully"})
}

// Trending handles GET /api/publication/trends/popular
func (h *PublicationHandler) Trending(c *gin.Context) {
	pubs, err := h.services.Publication.Trending(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoPublications) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no popular publications found"})
			return
		}
		h.log.Error().Err(err).Msg("Failed to get trending publications")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve popular publications"})
		return
	}

	c.JSON(http.StatusOK, pubs)
}
