package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pkonnov/myblog/internal/domain"
	"github.com/pkonnov/myblog/internal/middleware"
	"github.com/pkonnov/myblog/internal/service"
)

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	commentService service.CommentServiceInterface
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create handles POST /api/v1/articles/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var input domain.CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), c.Param("id"), middleware.GetViewer(c), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// Approve handles POST /api/v1/comments/:id/approve
func (h *CommentHandler) Approve(c *gin.Context) {
	if err := h.commentService.Approve(c.Request.Context(), c.Param("id"), middleware.GetViewer(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "approved"})
}

// Delete handles DELETE /api/v1/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.commentService.Delete(c.Request.Context(), c.Param("id"), middleware.GetViewer(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
