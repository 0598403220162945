// Package leads is the write side of the site: it validates a contact-form
// submission and inserts exactly one lead row.
//
// There is deliberately no dedup or idempotency token: a double-click
// produces two rows, which is an accepted cost for this domain.
package leads

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/mail"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/qri-io/jsonschema"

	"github.com/garnizeh/aurora/pkg/models"
	"github.com/garnizeh/aurora/pkg/repository"
)

//go:embed schema.json
var leadSchemaJSON []byte

const (
	maxNameLen    = 200
	maxEmailLen   = 254
	maxPhoneLen   = 50
	maxCompanyLen = 200
	maxMessageLen = 5000
	maxFileName   = 255
)

// Submission is the raw contact-form payload. RFPFileName is display
// metadata only; file contents are handled elsewhere.
type Submission struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Company     string `json:"company,omitempty"`
	Message     string `json:"message"`
	RFPFileName string `json:"rfp_file_name,omitempty"`
}

// ValidationError reports per-field reasons. It means no write was
// attempted.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, reason := range e.Fields {
		parts = append(parts, f+": "+reason)
	}
	return "invalid submission: " + strings.Join(parts, "; ")
}

// Intake validates submissions and performs the single leads insert.
type Intake struct {
	repo   repository.LeadRepo
	schema *jsonschema.Schema
	logger *slog.Logger
}

func NewIntake(repo repository.LeadRepo, logger *slog.Logger) (*Intake, error) {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(leadSchemaJSON, rs); err != nil {
		return nil, fmt.Errorf("compile lead schema: %w", err)
	}

	return &Intake{repo: repo, schema: rs, logger: logger}, nil
}

// Submit validates s and inserts one new lead with status "new" and source
// "website". Validation failures return *ValidationError before any write;
// any other error is a storage failure and the caller should report a
// generic message without internal detail.
func (i *Intake) Submit(ctx context.Context, s Submission) (*models.Lead, error) {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Phone = strings.TrimSpace(s.Phone)
	s.Company = strings.TrimSpace(s.Company)
	s.Message = strings.TrimSpace(s.Message)
	s.RFPFileName = strings.TrimSpace(s.RFPFileName)

	if verr := i.validate(ctx, s); verr != nil {
		return nil, verr
	}

	ts := time.Now().UTC().UnixMilli()
	lead := &models.Lead{
		ID:      uuid.NewString(),
		Name:    s.Name,
		Email:   s.Email,
		Message: s.Message,
		Status:  models.LeadStatusNew,
		Source:  models.LeadSourceWebsite,
		Created: ts,
		Updated: ts,
	}
	if s.Phone != "" {
		lead.Phone = &s.Phone
	}
	if s.Company != "" {
		lead.Company = &s.Company
	}
	if s.RFPFileName != "" {
		lead.RFPFileName = &s.RFPFileName
	}

	if err := i.repo.CreateLead(ctx, lead); err != nil {
		i.logger.Error("lead insert failed", slog.Any("err", err))
		return nil, fmt.Errorf("store lead: %w", err)
	}

	i.logger.Info("lead created", slog.String("id", lead.ID))
	return lead, nil
}

func (i *Intake) validate(ctx context.Context, s Submission) *ValidationError {
	fields := map[string]string{}

	if s.Name == "" {
		fields["name"] = "required"
	} else if len(s.Name) > maxNameLen {
		fields["name"] = "too long"
	}

	switch {
	case s.Email == "":
		fields["email"] = "required"
	case len(s.Email) > maxEmailLen:
		fields["email"] = "too long"
	default:
		if _, err := mail.ParseAddress(s.Email); err != nil {
			fields["email"] = "not a valid email address"
		}
	}

	if s.Message == "" {
		fields["message"] = "required"
	} else if len(s.Message) > maxMessageLen {
		fields["message"] = "too long"
	}

	if len(s.Phone) > maxPhoneLen {
		fields["phone"] = "too long"
	}
	if len(s.Company) > maxCompanyLen {
		fields["company"] = "too long"
	}
	if len(s.RFPFileName) > maxFileName {
		fields["rfp_file_name"] = "too long"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	// schema pass catches anything the hand checks miss
	b, err := json.Marshal(s)
	if err != nil {
		return &ValidationError{Fields: map[string]string{"submission": "not encodable"}}
	}
	verrs, err := i.schema.ValidateBytes(ctx, b)
	if err != nil {
		return &ValidationError{Fields: map[string]string{"submission": err.Error()}}
	}
	if len(verrs) > 0 {
		for _, v := range verrs {
			fields[v.PropertyPath] = v.Message
		}
		return &ValidationError{Fields: fields}
	}

	return nil
}
