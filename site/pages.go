package site

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/garnizeh/aurora/internal/content"
	"github.com/garnizeh/aurora/internal/leads"
	"github.com/garnizeh/aurora/pkg/models"
)

// PagesHandler renders the public HTML pages. All content reads go through
// the fail-open Reader, so a store outage renders pages with empty
// sections instead of an error.
type PagesHandler struct {
	reader *content.Reader
	intake *leads.Intake
	tmpl   *template.Template
}

func NewPagesHandler(reader *content.Reader, intake *leads.Intake) *PagesHandler {
	return &PagesHandler{reader: reader, intake: intake, tmpl: parseTemplates()}
}

type pageData struct {
	Title string
}

func (h *PagesHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := struct {
		pageData
		content.HomeData
	}{
		pageData: pageData{Title: "Aurora Engineering"},
		HomeData: h.reader.Home(r.Context()),
	}
	render(w, h.tmpl, "home.html", http.StatusOK, data)
}

func (h *PagesHandler) About(w http.ResponseWriter, r *http.Request) {
	data := struct {
		pageData
		Team []models.TeamMember
	}{
		pageData: pageData{Title: "About Us"},
		Team:     h.reader.TeamMembers(r.Context()),
	}
	render(w, h.tmpl, "about.html", http.StatusOK, data)
}

func (h *PagesHandler) Services(w http.ResponseWriter, r *http.Request) {
	data := struct {
		pageData
		Services []models.Service
	}{
		pageData: pageData{Title: "Services"},
		Services: h.reader.Services(r.Context(), 0),
	}
	render(w, h.tmpl, "services.html", http.StatusOK, data)
}

// Projects honors the optional ?category= query; "all" or absent means no
// restriction.
func (h *PagesHandler) Projects(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	data := struct {
		pageData
		Category string
		Projects []models.Project
	}{
		pageData: pageData{Title: "Projects"},
		Category: category,
		Projects: h.reader.Projects(r.Context(), category),
	}
	render(w, h.tmpl, "projects.html", http.StatusOK, data)
}

func (h *PagesHandler) ProjectDetail(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	project := h.reader.Project(r.Context(), slug)
	if project == nil {
		h.NotFound(w, r)
		return
	}

	data := struct {
		pageData
		Project *models.Project
		Related []models.Project
	}{
		pageData: pageData{Title: project.Title},
		Project:  project,
		Related:  h.reader.RelatedProjects(r.Context(), project, 3),
	}
	render(w, h.tmpl, "project_detail.html", http.StatusOK, data)
}

func (h *PagesHandler) Blog(w http.ResponseWriter, r *http.Request) {
	data := struct {
		pageData
		Posts []models.BlogPost
	}{
		pageData: pageData{Title: "Blog"},
		Posts:    h.reader.BlogPosts(r.Context()),
	}
	render(w, h.tmpl, "blog.html", http.StatusOK, data)
}

func (h *PagesHandler) Careers(w http.ResponseWriter, r *http.Request) {
	data := struct {
		pageData
		Openings []models.Career
	}{
		pageData: pageData{Title: "Careers"},
		Openings: h.reader.Careers(r.Context()),
	}
	render(w, h.tmpl, "careers.html", http.StatusOK, data)
}

func (h *PagesHandler) Privacy(w http.ResponseWriter, r *http.Request) {
	render(w, h.tmpl, "privacy.html", http.StatusOK, pageData{Title: "Privacy Policy"})
}

func (h *PagesHandler) Terms(w http.ResponseWriter, r *http.Request) {
	render(w, h.tmpl, "terms.html", http.StatusOK, pageData{Title: "Terms of Service"})
}

func (h *PagesHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	render(w, h.tmpl, "notfound.html", http.StatusNotFound, pageData{Title: "Page Not Found"})
}

type contactData struct {
	pageData
	Form    leads.Submission
	Errors  map[string]string
	Failed  bool
	Success bool
}

func (h *PagesHandler) Contact(w http.ResponseWriter, r *http.Request) {
	render(w, h.tmpl, "contact.html", http.StatusOK, contactData{pageData: pageData{Title: "Contact"}})
}

// ContactSubmit handles the HTML form post. On any failure the submitted
// values are echoed back so the visitor can retry without retyping; the
// failure message stays generic.
func (h *PagesHandler) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.NotFound(w, r)
		return
	}

	sub := leads.Submission{
		Name:        r.PostFormValue("name"),
		Email:       r.PostFormValue("email"),
		Phone:       r.PostFormValue("phone"),
		Company:     r.PostFormValue("company"),
		Message:     r.PostFormValue("message"),
		RFPFileName: r.PostFormValue("rfp_file_name"),
	}

	data := contactData{
		pageData: pageData{Title: "Contact"},
		Form:     sub,
	}

	if _, err := h.intake.Submit(r.Context(), sub); err != nil {
		var verr *leads.ValidationError
		if errors.As(err, &verr) {
			data.Errors = verr.Fields
			render(w, h.tmpl, "contact.html", http.StatusBadRequest, data)
			return
		}
		data.Failed = true
		render(w, h.tmpl, "contact.html", http.StatusInternalServerError, data)
		return
	}

	data.Form = leads.Submission{}
	data.Success = true
	render(w, h.tmpl, "contact.html", http.StatusOK, data)
}
