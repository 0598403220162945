package sqlite

import (
	"context"

	"github.com/garnizeh/aurora/pkg/models"
	"github.com/garnizeh/aurora/pkg/repository"
)

func (r *SQLiteRepo) ListBlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	// unpublished-at rows sort last so drafts with a published flag but no
	// publication date don't jump the feed
	rows, err := r.conn.QueryRows(ctx, `SELECT id, title, slug, excerpt, content, author, featured_image, category, tags, published, published_at, created, updated FROM blog_posts WHERE published = 1 ORDER BY published_at IS NULL, published_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.BlogPost
	for rows.Next() {
		var p models.BlogPost
		var tags string
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.Author, &p.FeaturedImage, &p.Category, &tags, &p.Published, &p.PublishedAt, &p.Created, &p.Updated); err != nil {
			return nil, err
		}
		if p.Tags, err = stringList(tags); err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) SitemapBlogPosts(ctx context.Context) ([]repository.SitemapEntry, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT slug, updated FROM blog_posts WHERE published = 1 ORDER BY slug`)
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
