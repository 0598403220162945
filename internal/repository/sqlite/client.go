package sqlite

import (
	"context"

	"github.com/garnizeh/aurora/pkg/models"
)

func (r *SQLiteRepo) ListClients(ctx context.Context) ([]models.Client, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, name, logo_url, website, "order", published, created FROM clients WHERE published = 1 ORDER BY "order" ASC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Client
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.LogoURL, &c.Website, &c.Order, &c.Published, &c.Created); err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, rows.Err()
}
