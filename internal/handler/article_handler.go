package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pkonnov/myblog/internal/domain"
	"github.com/pkonnov/myblog/internal/middleware"
	"github.com/pkonnov/myblog/internal/service"
)

// ArticleHandler handles article-related HTTP requests.
type ArticleHandler struct {
	articleService service.ArticleServiceInterface
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleService service.ArticleServiceInterface) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// ListArticlesResponse is one page of article summaries. Unavailable flags
// the empty-result state so clients can show "no articles" instead of an
// empty grid.
type ListArticlesResponse struct {
	domain.Page[domain.ArticleSummary]
	Unavailable bool `json:"unavailable"`
}

func (h *ArticleHandler) list(c *gin.Context, req service.ListArticlesRequest) {
	req.RawPage = c.Query("page")
	req.Viewer = middleware.GetViewer(c)

	page, err := h.articleService.List(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListArticlesResponse{Page: page, Unavailable: page.Unavailable()})
}

// ListAll handles GET /api/v1/articles
func (h *ArticleHandler) ListAll(c *gin.Context) {
	h.list(c, service.ListArticlesRequest{Mode: domain.ListAll})
}

// ListByCategory handles GET /api/v1/categories/:slug/articles
func (h *ArticleHandler) ListByCategory(c *gin.Context) {
	h.list(c, service.ListArticlesRequest{
		Mode:         domain.ListByCategory,
		CategorySlug: c.Param("slug"),
	})
}

// ListByAuthor handles GET /api/v1/authors/:username/articles
func (h *ArticleHandler) ListByAuthor(c *gin.Context) {
	h.list(c, service.ListArticlesRequest{
		Mode:   domain.ListByAuthor,
		Author: c.Param("username"),
	})
}

// ListByDate handles GET /api/v1/articles/archive/:year/:month/:day
//
// A date that does not parse is a URL that names nothing, so it reports
// not found rather than a validation failure.
func (h *ArticleHandler) ListByDate(c *gin.Context) {
	year, errY := strconv.Atoi(c.Param("year"))
	month, errM := strconv.Atoi(c.Param("month"))
	day, errD := strconv.Atoi(c.Param("day"))
	if errY != nil || errM != nil || errD != nil || month < 1 || month > 12 || day < 1 || day > 31 {
		respondError(c, domain.ErrNotFound)
		return
	}

	h.list(c, service.ListArticlesRequest{
		Mode:  domain.ListByDate,
		Year:  year,
		Month: time.Month(month),
		Day:   day,
	})
}

// Search handles GET /api/v1/articles/search
func (h *ArticleHandler) Search(c *gin.Context) {
	h.list(c, service.ListArticlesRequest{
		Mode:       domain.ListSearch,
		SearchTerm: c.Query("q"),
	})
}

// ListDrafts handles GET /api/v1/drafts
func (h *ArticleHandler) ListDrafts(c *gin.Context) {
	h.list(c, service.ListArticlesRequest{Mode: domain.ListDrafts})
}

// Get handles GET /api/v1/articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	detail, err := h.articleService.Get(c.Request.Context(), c.Param("id"), middleware.GetViewer(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Create handles POST /api/v1/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var input domain.ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := h.articleService.Create(c.Request.Context(), middleware.GetViewer(c), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, article)
}

// Update handles PUT /api/v1/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	var input domain.ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := h.articleService.Update(c.Request.Context(), c.Param("id"), middleware.GetViewer(c), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// Delete handles DELETE /api/v1/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	if err := h.articleService.Delete(c.Request.Context(), c.Param("id"), middleware.GetViewer(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Publish handles POST /api/v1/articles/:id/publish
func (h *ArticleHandler) Publish(c *gin.Context) {
	article, err := h.articleService.Publish(c.Request.Context(), c.Param("id"), middleware.GetViewer(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}
