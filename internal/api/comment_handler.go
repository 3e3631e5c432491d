package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/publications-api/internal/service"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment endpoints nested under a publication
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// List handles GET /api/publication/:id/comments
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.services.Comment.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPublicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "publication not found"})
			return
		}
		h.log.Error().Err(err).Str("publication_id", c.Param("id")).Msg("Failed to list comments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comentarios": comments})
}

// Add handles POST /api/publication/:id/comment
// The commenter is always the authenticated caller.
func (h *CommentHandler) Add(c *gin.Context) {
	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}

	user := c.GetString(identityKey)
	comment, err := h.services.Comment.Add(c.Request.Context(), c.Param("id"), user, req.Content)
	if err != nil {
		h.respondCommentError(c, err, "Failed to add comment")
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// Edit handles PUT /api/publication/:id/comment/:commentId
func (h *CommentHandler) Edit(c *gin.Context) {
	commentID, ok := h.commentID(c)
	if !ok {
		return
	}

	// Content presence is validated by the service so that
	// whitespace-only bodies are rejected the same way as missing ones
	var req struct {
		Content string `json:"contenido"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "comment content must be a non-empty string"})
		return
	}

	comment, err := h.services.Comment.Edit(c.Request.Context(), c.Param("id"), commentID, req.Content)
	if err != nil {
		h.respondCommentError(c, err, "Failed to edit comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":               "comment updated successfully",
		"comentarioActualizado": comment,
	})
}

// Delete handles DELETE /api/publication/:id/comment/:commentId
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, ok := h.commentID(c)
	if !ok {
		return
	}

	state, err := h.services.Comment.Delete(c.Request.Context(), c.Param("id"), commentID)
	if err != nil {
		h.respondCommentError(c, err, "Failed to delete comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          c.Param("id"),
		"comentarios": state.Comments,
		"popularidad": state.Popularity,
	})
}

// Like handles PATCH /api/publication/:id/comment/:commentId/like
func (h *CommentHandler) Like(c *gin.Context) {
	commentID, ok := h.commentID(c)
	if !ok {
		return
	}

	var req struct {
		Increment *bool `json:"increment" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "the 'increment' parameter must be a boolean"})
		return
	}

	state, err := h.services.Comment.Like(c.Request.Context(), c.Param("id"), commentID, *req.Increment)
	if err != nil {
		h.respondCommentError(c, err, "Failed to update like")
		return
	}

	c.JSON(http.StatusOK, state)
}

// commentID parses the comment id path segment. A non-numeric id can
// never match a stored comment, so it is reported as not found.
func (h *CommentHandler) commentID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("commentId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		return 0, false
	}
	return id, true
}

func (h *CommentHandler) respondCommentError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, service.ErrPublicationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "publication not found"})
	case errors.Is(err, service.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
	case errors.Is(err, service.ErrContentRejected):
		c.JSON(http.StatusBadRequest, gin.H{"error": "comment rejected for inappropriate language"})
	case errors.Is(err, service.ErrEmptyContent):
		c.JSON(http.StatusBadRequest, gin.H{"error": "comment content must be a non-empty string"})
	case errors.Is(err, service.ErrLikeUnderflow):
		c.JSON(http.StatusBadRequest, gin.H{"error": "likes cannot be reduced below zero"})
	default:
		h.log.Error().Err(err).
			Str("publication_id", c.Param("id")).
			Str("comment_id", c.Param("commentId")).
			Msg(logMsg)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected error handling comment"})
	}
}
