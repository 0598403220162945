package sqlite

import (
	"context"
	"fmt"

	"github.com/garnizeh/aurora/pkg/models"
)

func (r *SQLiteRepo) CreateLead(ctx context.Context, l *models.Lead) error {
	if l == nil {
		return fmt.Errorf("lead is nil")
	}

	_, err := r.conn.Exec(ctx,
		`INSERT INTO leads (id, name, email, phone, company, message, rfp_file_url, rfp_file_name, status, notes, source, created, updated) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.Name, l.Email, l.Phone, l.Company, l.Message, l.RFPFileURL, l.RFPFileName, l.Status, l.Notes, l.Source, l.Created, l.Updated)
	return err
}

func (r *SQLiteRepo) ListLeads(ctx context.Context, limit, offset int) ([]models.Lead, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.conn.QueryRows(ctx, `SELECT id, name, email, phone, company, message, rfp_file_url, rfp_file_name, status, notes, source, created, updated FROM leads ORDER BY created DESC, id LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Lead
	for rows.Next() {
		var l models.Lead
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Company, &l.Message, &l.RFPFileURL, &l.RFPFileName, &l.Status, &l.Notes, &l.Source, &l.Created, &l.Updated); err != nil {
			return nil, err
		}
		out = append(out, l)
	}

	return out, rows.Err()
}
