package site

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/garnizeh/aurora/internal/leads"
	"github.com/garnizeh/aurora/pkg/models"
	"github.com/garnizeh/aurora/pkg/repository"
)

// LeadsHandler is the JSON surface over lead intake: a public create
// endpoint for JS clients and a JWT-guarded export for staff tooling.
type LeadsHandler struct {
	intake *leads.Intake
	repo   repository.LeadRepo
}

func NewLeadsHandler(intake *leads.Intake, repo repository.LeadRepo) *LeadsHandler {
	return &LeadsHandler{intake: intake, repo: repo}
}

type createLeadResponse struct {
	ID string `json:"id"`
}

func (h *LeadsHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var sub leads.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	lead, err := h.intake.Submit(r.Context(), sub)
	if err != nil {
		var verr *leads.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, map[string]any{"errors": verr.Fields}, http.StatusBadRequest)
			return
		}
		// storage detail never reaches the caller
		http.Error(w, "failed to send message", http.StatusInternalServerError)
		return
	}

	writeJSON(w, createLeadResponse{ID: lead.ID}, http.StatusCreated)
}

func (h *LeadsHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := 50
	if l := q.Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 500 {
			limit = v
		}
	}
	offset := 0
	if o := q.Get("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}

	items, err := h.repo.ListLeads(r.Context(), limit, offset)
	if err != nil {
		http.Error(w, "failed to list leads", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []models.Lead{}
	}

	resp := map[string]any{
		"limit":  limit,
		"offset": offset,
		"items":  items,
	}

	writeJSON(w, resp, http.StatusOK)
}
