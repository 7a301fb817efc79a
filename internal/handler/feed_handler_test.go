package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pkonnov/myblog/internal/mocks"
)

func TestFeed(t *testing.T) {
	t.Run("serves rss with the right content type", func(t *testing.T) {
		mockService := mocks.NewMockFeedServiceInterface(t)
		h := NewFeedHandler(mockService)

		mockService.EXPECT().
			Build(mock.Anything).
			Return(`<?xml version="1.0" encoding="UTF-8"?><rss version="2.0"></rss>`, nil)

		router := gin.New()
		router.GET("/feed", h.Get)

		req := httptest.NewRequest(http.MethodGet, "/feed", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Header().Get("Content-Type"), "application/rss+xml")
		require.Contains(t, w.Body.String(), "<rss")
	})

	t.Run("build failure is a server error", func(t *testing.T) {
		mockService := mocks.NewMockFeedServiceInterface(t)
		h := NewFeedHandler(mockService)

		mockService.EXPECT().Build(mock.Anything).Return("", errors.New("boom"))

		router := gin.New()
		router.GET("/feed", h.Get)

		req := httptest.NewRequest(http.MethodGet, "/feed", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
