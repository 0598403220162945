package sqlite

import (
	"context"

	"github.com/garnizeh/aurora/pkg/models"
)

// ListTestimonials has no declared sort key; ORDER BY id keeps the
// arbitrary order stable between renders.
func (r *SQLiteRepo) ListTestimonials(ctx context.Context, limit int) ([]models.Testimonial, error) {
	q := `SELECT id, client_name, client_position, client_company, content, photo_url, rating, published, created FROM testimonials WHERE published = 1 ORDER BY id`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.conn.QueryRows(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Testimonial
	for rows.Next() {
		var t models.Testimonial
		if err := rows.Scan(&t.ID, &t.ClientName, &t.ClientPosition, &t.ClientCompany, &t.Content, &t.PhotoURL, &t.Rating, &t.Published, &t.Created); err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	return out, rows.Err()
}
