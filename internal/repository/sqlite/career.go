package sqlite

import (
	"context"

	"github.com/garnizeh/aurora/pkg/models"
)

func (r *SQLiteRepo) ListCareers(ctx context.Context) ([]models.Career, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, title, slug, department, location, type, description, requirements, benefits, published, created, updated FROM careers WHERE published = 1 ORDER BY created DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Career
	for rows.Next() {
		var c models.Career
		var reqs, bens string
		if err := rows.Scan(&c.ID, &c.Title, &c.Slug, &c.Department, &c.Location, &c.Type, &c.Description, &reqs, &bens, &c.Published, &c.Created, &c.Updated); err != nil {
			return nil, err
		}
		if c.Requirements, err = stringList(reqs); err != nil {
			return nil, err
		}
		if c.Benefits, err = stringList(bens); err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, rows.Err()
}
