package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pkonnov/myblog/internal/service"
)

// FeedHandler serves the RSS feed.
type FeedHandler struct {
	feedService service.FeedServiceInterface
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(feedService service.FeedServiceInterface) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// Get handles GET /feed
func (h *FeedHandler) Get(c *gin.Context) {
	rss, err := h.feedService.Build(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", []byte(rss))
}
