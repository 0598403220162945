package repository

import (
	"context"

	"github.com/garnizeh/aurora/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.
//
// Every read implementation must filter published = true: unpublished rows
// never leave the store through these interfaces.

// CategoryAll is the sentinel meaning "no category restriction". An empty
// category is treated the same way.
const CategoryAll = "all"

// SitemapEntry is a (slug, last-updated) pair for the discovery feed.
type SitemapEntry struct {
	Slug    string
	Updated int64
}

type ProjectRepo interface {
	// ListProjects returns published projects newest-year first. A category
	// of "" or CategoryAll applies no category restriction. limit <= 0
	// means no limit.
	ListProjects(ctx context.Context, category string, limit int) ([]models.Project, error)
	// FeaturedProjects returns published, featured projects newest first.
	FeaturedProjects(ctx context.Context, limit int) ([]models.Project, error)
	// GetProjectBySlug returns the published project with the given slug,
	// or (nil, nil) when none matches. If the store ever holds duplicate
	// slugs the lowest id wins.
	GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error)
	// RelatedProjects returns up to limit published projects in category,
	// excluding excludeSlug.
	RelatedProjects(ctx context.Context, category, excludeSlug string, limit int) ([]models.Project, error)
	// SitemapProjects returns slug and updated for every published project.
	SitemapProjects(ctx context.Context) ([]SitemapEntry, error)
}

type ServiceRepo interface {
	// ListServices returns published services in declared order. limit <= 0
	// means no limit.
	ListServices(ctx context.Context, limit int) ([]models.Service, error)
}

type TeamRepo interface {
	ListTeamMembers(ctx context.Context) ([]models.TeamMember, error)
}

type TestimonialRepo interface {
	ListTestimonials(ctx context.Context, limit int) ([]models.Testimonial, error)
}

type BlogRepo interface {
	// ListBlogPosts returns published posts newest publication first.
	ListBlogPosts(ctx context.Context) ([]models.BlogPost, error)
	SitemapBlogPosts(ctx context.Context) ([]SitemapEntry, error)
}

type ClientRepo interface {
	ListClients(ctx context.Context) ([]models.Client, error)
}

type CareerRepo interface {
	ListCareers(ctx context.Context) ([]models.Career, error)
}

type LeadRepo interface {
	// CreateLead inserts a single lead row. The caller supplies the full
	// record including id and timestamps.
	CreateLead(ctx context.Context, l *models.Lead) error
	// ListLeads returns leads newest first, for the staff export API.
	ListLeads(ctx context.Context, limit, offset int) ([]models.Lead, error)
}
