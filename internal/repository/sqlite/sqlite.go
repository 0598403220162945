package sqlite

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"log/slog"

	"github.com/garnizeh/aurora/internal/db"
	"github.com/garnizeh/aurora/pkg/repository"
)

// SQLiteRepo implements repository interfaces using the internal DB wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.ProjectRepo = (*SQLiteRepo)(nil)
var _ repository.ServiceRepo = (*SQLiteRepo)(nil)
var _ repository.TeamRepo = (*SQLiteRepo)(nil)
var _ repository.TestimonialRepo = (*SQLiteRepo)(nil)
var _ repository.BlogRepo = (*SQLiteRepo)(nil)
var _ repository.ClientRepo = (*SQLiteRepo)(nil)
var _ repository.CareerRepo = (*SQLiteRepo)(nil)
var _ repository.LeadRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}

func now() int64 {
	return time.Now().UTC().UnixMilli()
}

// stringList decodes a JSON array column. Content columns default to '[]'
// so an empty string is tolerated but anything else must parse.
func stringList(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode list column: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

func marshalList(in []string) string {
	if len(in) == 0 {
		return "[]"
	}
	b, _ := json.Marshal(in)
	return string(b)
}
