package sqlite

import (
	"context"

	"github.com/garnizeh/aurora/pkg/models"
)

func (r *SQLiteRepo) ListServices(ctx context.Context, limit int) ([]models.Service, error) {
	q := `SELECT id, title, slug, description, short_description, icon, "order", published, created FROM services WHERE published = 1 ORDER BY "order" ASC, id`
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

	var out []models.Service
	for rows.Next() {
		var s models.Service
		if err := rows.Scan(&s.ID, &s.Title, &s.Slug, &s.Description, &s.ShortDescription, &s.Icon, &s.Order, &s.Published, &s.Created); err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, rows.Err()
}
