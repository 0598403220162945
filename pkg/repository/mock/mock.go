package mock

import (
	"context"
	"sync"

	"github.com/garnizeh/aurora/pkg/models"
	"github.com/garnizeh/aurora/pkg/repository"
)

// Store is an in-memory fake of the full read surface plus the lead
// writer. Set Err to make every call fail, which is how tests exercise the
// fail-open read policy.
type Store struct {
	Projects     []models.Project
	Services     []models.Service
	TeamMembers  []models.TeamMember
	Testimonials []models.Testimonial
	BlogPosts    []models.BlogPost
	Clients      []models.Client
	Careers      []models.Career
	Leads        []models.Lead

	Err error

	// mu guards the counters; some reads are issued from concurrent
	// page fan-outs.
	mu sync.Mutex
	// ReadCalls counts every read issued, cache tests depend on it.
	ReadCalls int
	// CreateLeadCalls counts insert attempts, including failed ones.
	CreateLeadCalls int
}

func NewStore() *Store { return &Store{} }

func (s *Store) countRead() {
	s.mu.Lock()
	s.ReadCalls++
	s.mu.Unlock()
}

// Reads returns the read counter; safe to call while reads are in flight.
func (s *Store) Reads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ReadCalls
}

func (s *Store) ListProjects(ctx context.Context, category string, limit int) ([]models.Project, error) {
	s.countRead()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []models.Project
	for _, p := range s.Projects {
		if !p.Published {
			continue
		}
		if category != "" && category != repository.CategoryAll && p.Category != category {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *Store) FeaturedProjects(ctx context.Context, limit int) ([]models.Project, error) {
	s.countRead()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []models.Project
	for _, p := range s.Projects {
		if !p.Published || !p.Featured {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *Store) GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error) {
	s.countRead()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, p := range s.Projects {
		if p.Published && p.Slug == slug {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *Store) RelatedProjects(ctx context.Context, category, excludeSlug string, limit int) ([]models.Project, error) {
	s.countRead()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []models.Project
	for _, p := range s.Projects {
		if !p.Published || p.Category != category || p.Slug == excludeSlug {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *Store) SitemapProjects(ctx context.Context) ([]repository.SitemapEntry, error) {
	s.countRead()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []repository.SitemapEntry
	for _, p := range s.Projects {
		if p.Published {
			out = append(out, repository.SitemapEntry{Slug: p.Slug, Updated: p.Updated})
		}
	}
	return out, nil
}

func (s *Store) ListServices(ctx context.Context, limit int) ([]models.Service, error) {
	s.countRead()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []models.Service
	for _, v := range s.Services {
		if !v.Published {
			continue
		}
		out = append(out, v)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *Store) ListTeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	s.countRead()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []models.TeamMember
	for _, v := range s.TeamMembers {
		if v.Published {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *Store) ListTestimonials(ctx context.Context, limit int) ([]models.Testimonial, error) {
	s.countRead()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []models.Testimonial
	for _, v := range s.Testimonials {
		if !v.Published {
			continue
		}
		out = append(out, v)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *Store) ListBlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	s.countRead()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []models.BlogPost
	for _, v := range s.BlogPosts {
		if v.Published {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *Store) SitemapBlogPosts(ctx context.Context) ([]repository.SitemapEntry, error) {
	s.countRead()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []repository.SitemapEntry
	for _, v := range s.BlogPosts {
		if v.Published {
			out = append(out, repository.SitemapEntry{Slug: v.Slug, Updated: v.Updated})
		}
	}
	return out, nil
}

func (s *Store) ListClients(ctx context.Context) ([]models.Client, error) {
	s.countRead()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []models.Client
	for _, v := range s.Clients {
		if v.Published {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *Store) ListCareers(ctx context.Context) ([]models.Career, error) {
	s.countRead()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []models.Career
	for _, v := range s.Careers {
		if v.Published {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *Store) CreateLead(ctx context.Context, l *models.Lead) error {
	s.mu.Lock()
	s.CreateLeadCalls++
	s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Leads = append(s.Leads, *l)
	return nil
}

func (s *Store) ListLeads(ctx context.Context, limit, offset int) ([]models.Lead, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if offset >= len(s.Leads) {
		return nil, nil
	}
	out := s.Leads[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
