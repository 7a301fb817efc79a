package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gorilla/feeds"

	"github.com/pkonnov/myblog/internal/domain"
	"github.com/pkonnov/myblog/internal/render"
	"github.com/pkonnov/myblog/internal/repository"
)

// FeedConfig carries the static feed metadata.
type FeedConfig struct {
	Title       string
	Link        string
	Description string
	Items       int
}

// FeedService renders the newest published articles as an RSS 2.0 feed.
type FeedService struct {
	articles repository.ArticleRepository
	cfg      FeedConfig

	now func() time.Time
}

// NewFeedService creates a new FeedService.
func NewFeedService(articles repository.ArticleRepository, cfg FeedConfig) *FeedService {
	return &FeedService{articles: articles, cfg: cfg, now: time.Now}
}

// SetClock overrides the service clock. Tests only.
func (s *FeedService) SetClock(now func() time.Time) {
	s.now = now
}

// Build generates the RSS document. Only published articles appear, in the
// same order as the main listing.
func (s *FeedService) Build(ctx context.Context) (string, error) {
	now := s.now()

	items, err := s.articles.List(ctx, domain.ArticleQuery{Mode: domain.ListAll, Now: now}, s.cfg.Items, 0)
	if err != nil {
		return "", fmt.Errorf("list feed articles: %w", err)
	}

	feed := &feeds.Feed{
		Title:       s.cfg.Title,
		Link:        &feeds.Link{Href: s.cfg.Link},
		Description: s.cfg.Description,
		Created:     now,
	}

	feed.Items = make([]*feeds.Item, 0, len(items))
	for _, a := range items {
		item := &feeds.Item{
			Id:          fmt.Sprintf("%s/api/v1/articles/%s", s.cfg.Link, a.ID),
			Title:       a.Title,
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/api/v1/articles/%s", s.cfg.Link, a.ID)},
			Author:      &feeds.Author{Name: a.AuthorName},
			Description: render.Preview(a.Body),
		}
		if a.PublishedAt != nil {
			item.Created = *a.PublishedAt
		}
		feed.Items = append(feed.Items, item)
	}

	rss, err := feed.ToRss()
	if err != nil {
		return "", fmt.Errorf("generate rss: %w", err)
	}
	return rss, nil
}
