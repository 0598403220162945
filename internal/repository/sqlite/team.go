package sqlite

import (
	"context"

	"github.com/garnizeh/aurora/pkg/models"
)

func (r *SQLiteRepo) ListTeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, name, position, bio, email, photo_url, linkedin_url, "order", published, created FROM team_members WHERE published = 1 ORDER BY "order" ASC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.TeamMember
	for rows.Next() {
		var m models.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Position, &m.Bio, &m.Email, &m.PhotoURL, &m.LinkedInURL, &m.Order, &m.Published, &m.Created); err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, rows.Err()
}
