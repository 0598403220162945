package sqlite

import (
	"context"
	"database/sql"

	"github.com/garnizeh/aurora/pkg/models"
	"github.com/garnizeh/aurora/pkg/repository"
)

const projectColumns = `id, title, slug, client, description, short_description, year, budget, area, location, category, tags, featured_image, gallery_images, published, featured, created, updated`

func scanProject(row interface{ Scan(...any) error }) (*models.Project, error) {
	var p models.Project
	var tags, gallery string
	if err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Client, &p.Description, &p.ShortDescription, &p.Year, &p.Budget, &p.Area, &p.Location, &p.Category, &tags, &p.FeaturedImage, &gallery, &p.Published, &p.Featured, &p.Created, &p.Updated); err != nil {
		return nil, err
	}

	var err error
	if p.Tags, err = stringList(tags); err != nil {
		return nil, err
	}
	if p.GalleryImages, err = stringList(gallery); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQLiteRepo) queryProjects(ctx context.Context, query string, args ...any) ([]models.Project, error) {
	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) ListProjects(ctx context.Context, category string, limit int) ([]models.Project, error) {
	q := `SELECT ` + projectColumns + ` FROM projects WHERE published = 1`
	args := []any{}
	if category != "" && category != repository.CategoryAll {
		q += ` AND category = ?`
		args = append(args, category)
	}
	q += ` ORDER BY year DESC, id`
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	return r.queryProjects(ctx, q, args...)
}

func (r *SQLiteRepo) FeaturedProjects(ctx context.Context, limit int) ([]models.Project, error) {
	if limit <= 0 {
		limit = 3
	}

	return r.queryProjects(ctx, `SELECT `+projectColumns+` FROM projects WHERE published = 1 AND featured = 1 ORDER BY year DESC, id LIMIT ?`, limit)
}

// GetProjectBySlug returns (nil, nil) when no published project matches.
// Duplicate slugs resolve to the lowest id so lookups stay deterministic.
func (r *SQLiteRepo) GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE published = 1 AND slug = ? ORDER BY id LIMIT 1`, slug)
	p, err := scanProject(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *SQLiteRepo) RelatedProjects(ctx context.Context, category, excludeSlug string, limit int) ([]models.Project, error) {
	if limit <= 0 {
		limit = 3
	}

	return r.queryProjects(ctx, `SELECT `+projectColumns+` FROM projects WHERE published = 1 AND category = ? AND slug <> ? ORDER BY year DESC, id LIMIT ?`, category, excludeSlug, limit)
}

func (r *SQLiteRepo) SitemapProjects(ctx context.Context) ([]repository.SitemapEntry, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT slug, updated FROM projects WHERE published = 1 ORDER BY slug`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.SitemapEntry
	for rows.Next() {
		var e repository.SitemapEntry
		if err := rows.Scan(&e.Slug, &e.Updated); err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}
