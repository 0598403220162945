// Package content is the read side of the site: every page fetches its
// rows through a Reader, never through a repository directly.
//
// Reads are fail-open. A store failure degrades to an empty collection
// (or nil for detail lookups) so the page still renders; the failure is
// logged so operators can tell "store down" from "legitimately empty".
// Results are served from a TTL cache for ContentTTL before the next
// request triggers a fresh read.
package content

import (
	"context"
	"fmt"
	"io"
	"time"

	"log/slog"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/errgroup"

	"github.com/garnizeh/aurora/pkg/models"
	"github.com/garnizeh/aurora/pkg/repository"
)

// Store is the full read surface the site needs.
type Store interface {
	repository.ProjectRepo
	repository.ServiceRepo
	repository.TeamRepo
	repository.TestimonialRepo
	repository.BlogRepo
	repository.ClientRepo
	repository.CareerRepo
}

const cacheSize = 256

type Reader struct {
	store  Store
	logger *slog.Logger
	cache  *expirable.LRU[string, any]
}

// NewReader builds a Reader over store. A ttl <= 0 disables caching, which
// tests rely on.
func NewReader(store Store, logger *slog.Logger, ttl time.Duration) *Reader {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	r := &Reader{store: store, logger: logger}
	if ttl > 0 {
		r.cache = expirable.NewLRU[string, any](cacheSize, nil, ttl)
	}
	return r
}

// fetch wraps a store read with the cache and the fail-open policy. Failed
// reads are not cached, so the next request retries the store.
func fetch[T any](ctx context.Context, r *Reader, key, entity string, read func(context.Context) (T, error)) T {
	if r.cache != nil {
		if v, ok := r.cache.Get(key); ok {
			return v.(T)
		}
	}

	v, err := read(ctx)
	if err != nil {
		var zero T
		r.logger.Error("content read failed, serving empty result",
			slog.String("entity", entity),
			slog.String("key", key),
			slog.Any("err", err),
		)
		return zero
	}

	if r.cache != nil {
		r.cache.Add(key, v)
	}
	return v
}

func (r *Reader) FeaturedProjects(ctx context.Context, limit int) []models.Project {
	key := fmt.Sprintf("projects:featured:%d", limit)
	return fetch(ctx, r, key, "project", func(ctx context.Context) ([]models.Project, error) {
		return r.store.FeaturedProjects(ctx, limit)
	})
}

func (r *Reader) Projects(ctx context.Context, category string) []models.Project {
	key := "projects:" + category
	return fetch(ctx, r, key, "project", func(ctx context.Context) ([]models.Project, error) {
		return r.store.ListProjects(ctx, category, 0)
	})
}

// Project returns nil both for "no such published project" and for a failed
// read; the page renders not-found either way.
func (r *Reader) Project(ctx context.Context, slug string) *models.Project {
	key := "project:slug:" + slug
	return fetch(ctx, r, key, "project", func(ctx context.Context) (*models.Project, error) {
		return r.store.GetProjectBySlug(ctx, slug)
	})
}

// RelatedProjects never includes the project it was computed from.
func (r *Reader) RelatedProjects(ctx context.Context, p *models.Project, limit int) []models.Project {
	if p == nil {
		return nil
	}
	key := fmt.Sprintf("projects:related:%s:%s:%d", p.Category, p.Slug, limit)
	return fetch(ctx, r, key, "project", func(ctx context.Context) ([]models.Project, error) {
		return r.store.RelatedProjects(ctx, p.Category, p.Slug, limit)
	})
}

func (r *Reader) Services(ctx context.Context, limit int) []models.Service {
	key := fmt.Sprintf("services:%d", limit)
	return fetch(ctx, r, key, "service", func(ctx context.Context) ([]models.Service, error) {
		return r.store.ListServices(ctx, limit)
	})
}

func (r *Reader) TeamMembers(ctx context.Context) []models.TeamMember {
	return fetch(ctx, r, "team", "team_member", func(ctx context.Context) ([]models.TeamMember, error) {
		return r.store.ListTeamMembers(ctx)
	})
}

func (r *Reader) Testimonials(ctx context.Context, limit int) []models.Testimonial {
	key := fmt.Sprintf("testimonials:%d", limit)
	return fetch(ctx, r, key, "testimonial", func(ctx context.Context) ([]models.Testimonial, error) {
		return r.store.ListTestimonials(ctx, limit)
	})
}

func (r *Reader) Clients(ctx context.Context) []models.Client {
	return fetch(ctx, r, "clients", "client", func(ctx context.Context) ([]models.Client, error) {
		return r.store.ListClients(ctx)
	})
}

func (r *Reader) BlogPosts(ctx context.Context) []models.BlogPost {
	return fetch(ctx, r, "blog_posts", "blog_post", func(ctx context.Context) ([]models.BlogPost, error) {
		return r.store.ListBlogPosts(ctx)
	})
}

func (r *Reader) Careers(ctx context.Context) []models.Career {
	return fetch(ctx, r, "careers", "career", func(ctx context.Context) ([]models.Career, error) {
		return r.store.ListCareers(ctx)
	})
}

func (r *Reader) SitemapProjects(ctx context.Context) []repository.SitemapEntry {
	return fetch(ctx, r, "sitemap:projects", "project", func(ctx context.Context) ([]repository.SitemapEntry, error) {
		return r.store.SitemapProjects(ctx)
	})
}

func (r *Reader) SitemapBlogPosts(ctx context.Context) []repository.SitemapEntry {
	return fetch(ctx, r, "sitemap:blog_posts", "blog_post", func(ctx context.Context) ([]repository.SitemapEntry, error) {
		return r.store.SitemapBlogPosts(ctx)
	})
}

// HomeData is everything the home page renders from the store.
type HomeData struct {
	FeaturedProjects []models.Project
	Services         []models.Service
	Testimonials     []models.Testimonial
	Clients          []models.Client
}

// Home issues the four home-page reads concurrently and joins before
// returning. The reads have no ordering dependency on one another; each
// one degrades independently.
func (r *Reader) Home(ctx context.Context) HomeData {
	var data HomeData

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		data.FeaturedProjects = r.FeaturedProjects(egCtx, 3)
		return nil
	})
	eg.Go(func() error {
		data.Services = r.Services(egCtx, 6)
		return nil
	})
	eg.Go(func() error {
		data.Testimonials = r.Testimonials(egCtx, 3)
		return nil
	})
	eg.Go(func() error {
		data.Clients = r.Clients(egCtx)
		return nil
	})
	// branches are fail-open and never return an error; Wait is the join
	_ = eg.Wait()

	return data
}
