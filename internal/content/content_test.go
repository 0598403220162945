package content_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garnizeh/aurora/internal/content"
	"github.com/garnizeh/aurora/pkg/models"
	"github.com/garnizeh/aurora/pkg/repository/mock"
)

func seededStore() *mock.Store {
	s := mock.NewStore()
	s.Projects = []models.Project{
		{ID: "p1", Title: "Harbor Tower", Slug: "harbor-tower", Category: models.CategoryCommercial, Year: 2022, Published: true},
		{ID: "p2", Title: "Summit Plaza", Slug: "summit-plaza", Category: models.CategoryCommercial, Year: 2024, Published: true, Featured: true},
		{ID: "p3", Title: "Cedar Homes", Slug: "cedar-homes", Category: models.CategoryResidential, Year: 2023, Published: true},
	}
	s.Services = []models.Service{
		{ID: "s1", Title: "Structural", Slug: "structural", Published: true},
	}
	s.Testimonials = []models.Testimonial{
		{ID: "q1", ClientName: "Pat Lee", Content: "Great partner.", Rating: 5, Published: true},
	}
	s.Clients = []models.Client{
		{ID: "c1", Name: "Acme", Published: true},
	}
	return s
}

func TestReader_FailOpen(t *testing.T) {
	store := seededStore()
	store.Err = errors.New("store down")
	r := content.NewReader(store, nil, 0)
	ctx := context.Background()

	assert.Empty(t, r.Projects(ctx, ""))
	assert.Empty(t, r.FeaturedProjects(ctx, 3))
	assert.Nil(t, r.Project(ctx, "harbor-tower"))
	assert.Empty(t, r.Services(ctx, 0))
	assert.Empty(t, r.TeamMembers(ctx))
	assert.Empty(t, r.Testimonials(ctx, 0))
	assert.Empty(t, r.Clients(ctx))
	assert.Empty(t, r.BlogPosts(ctx))
	assert.Empty(t, r.Careers(ctx))
	assert.Empty(t, r.SitemapProjects(ctx))
	assert.Empty(t, r.SitemapBlogPosts(ctx))
}

func TestReader_FailedReadsAreNotCached(t *testing.T) {
	store := seededStore()
	store.Err = errors.New("store down")
	r := content.NewReader(store, nil, time.Hour)
	ctx := context.Background()

	assert.Empty(t, r.Projects(ctx, ""))
	assert.Empty(t, r.Projects(ctx, ""))
	assert.Equal(t, 2, store.Reads(), "failed reads must hit the store again")

	// store recovers; the next read succeeds and sticks
	store.Err = nil
	assert.Len(t, r.Projects(ctx, ""), 3)
	assert.Len(t, r.Projects(ctx, ""), 3)
	assert.Equal(t, 3, store.Reads())
}

func TestReader_CacheServesRepeatReads(t *testing.T) {
	store := seededStore()
	r := content.NewReader(store, nil, time.Hour)
	ctx := context.Background()

	first := r.Projects(ctx, "")
	second := r.Projects(ctx, "")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.Reads())

	// distinct categories are distinct cache entries
	r.Projects(ctx, "residential")
	assert.Equal(t, 2, store.Reads())
}

func TestReader_ZeroTTLDisablesCache(t *testing.T) {
	store := seededStore()
	r := content.NewReader(store, nil, 0)
	ctx := context.Background()

	r.Projects(ctx, "")
	r.Projects(ctx, "")
	assert.Equal(t, 2, store.Reads())
}

func TestReader_Project(t *testing.T) {
	store := seededStore()
	r := content.NewReader(store, nil, 0)
	ctx := context.Background()

	p := r.Project(ctx, "summit-plaza")
	require.NotNil(t, p)
	assert.Equal(t, "Summit Plaza", p.Title)

	assert.Nil(t, r.Project(ctx, "no-such-slug"))
}

func TestReader_RelatedProjects(t *testing.T) {
	store := seededStore()
	r := content.NewReader(store, nil, 0)
	ctx := context.Background()

	p := r.Project(ctx, "summit-plaza")
	require.NotNil(t, p)

	related := r.RelatedProjects(ctx, p, 3)
	require.Len(t, related, 1)
	assert.Equal(t, "harbor-tower", related[0].Slug)

	assert.Nil(t, r.RelatedProjects(ctx, nil, 3))
}

func TestReader_Home(t *testing.T) {
	store := seededStore()
	r := content.NewReader(store, nil, 0)

	data := r.Home(context.Background())

	require.Len(t, data.FeaturedProjects, 1)
	assert.Equal(t, "summit-plaza", data.FeaturedProjects[0].Slug)
	assert.Len(t, data.Services, 1)
	assert.Len(t, data.Testimonials, 1)
	assert.Len(t, data.Clients, 1)
	assert.Equal(t, 4, store.Reads())
}

func TestReader_HomeDegradesPerSection(t *testing.T) {
	store := seededStore()
	store.Err = errors.New("store down")
	r := content.NewReader(store, nil, 0)

	data := r.Home(context.Background())

	assert.Empty(t, data.FeaturedProjects)
	assert.Empty(t, data.Services)
	assert.Empty(t, data.Testimonials)
	assert.Empty(t, data.Clients)
}
