package site_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"log/slog"

	"github.com/gorilla/mux"
	"go.uber.org/goleak"
	"golang.org/x/crypto/bcrypt"

	dbfs "github.com/garnizeh/aurora/db"
	"github.com/garnizeh/aurora/internal/config"
	dbpkg "github.com/garnizeh/aurora/internal/db"
	"github.com/garnizeh/aurora/site"
)

func TestMain(m *testing.M) {
	site.SetLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	goleak.VerifyTestMain(m)
}

const staffPassword = "staff-pass"

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	ctx := context.Background()

	d, err := dbpkg.New(ctx, "file:site_"+t.Name()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { d.Close() })

	if err := dbpkg.Migrate(ctx, d, dbfs.Migrations, dbfs.SeedFiles); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	// one extra unpublished project to prove drafts stay hidden
	_, err = d.Exec(ctx, `INSERT INTO projects (id, title, slug, category, year, tags, gallery_images, published, featured, created, updated) VALUES ('tp1', 'Unpublished Annex', 'unpublished-annex', 'commercial', 2025, '[]', '[]', 0, 0, 1, 1)`)
	if err != nil {
		t.Fatalf("fixture insert: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(staffPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	cfg := &config.Config{
		BaseURL:       "https://aurora.test",
		JWTSecret:     "test-secret",
		TokenDuration: time.Hour,
		ContentTTL:    0,
		Staff: config.StaffConfig{
			Email:        "staff@aurora.test",
			PasswordHash: string(hash),
		},
	}

	r, err := site.SetupRoutes(cfg, "test", "now", d)
	if err != nil {
		t.Fatalf("SetupRoutes: %v", err)
	}
	return r
}

func doRequest(t *testing.T, r *mux.Router, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(t *testing.T, r *mux.Router, path string) *httptest.ResponseRecorder {
	t.Helper()
	return doRequest(t, r, httptest.NewRequest("GET", path, nil))
}

func TestHTMLPages(t *testing.T) {
	r := newTestRouter(t)

	pages := []struct {
		path string
		want string
	}{
		{"/", "Aurora Engineering"},
		{"/about", "About Us"},
		{"/services", "Structural Engineering"}, // seeded service
		{"/projects", "Projects"},
		{"/blog", "Blog"},
		{"/careers", "Careers"},
		{"/contact", "Get In Touch"},
		{"/privacy", "Privacy"},
		{"/terms", "Terms"},
	}

	for _, p := range pages {
		w := get(t, r, p.path)
		if w.Code != http.StatusOK {
			t.Errorf("GET %s status = %d", p.path, w.Code)
			continue
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Errorf("GET %s content-type = %q", p.path, ct)
		}
		if !strings.Contains(w.Body.String(), p.want) {
			t.Errorf("GET %s body missing %q", p.path, p.want)
		}
	}
}

func TestProjectDetail(t *testing.T) {
	r := newTestRouter(t)

	// from the demo seed
	w := get(t, r, "/projects/meridian-tower")
	if w.Code != http.StatusOK {
		t.Fatalf("seeded project detail status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Meridian Tower") {
		t.Fatalf("detail page missing project title")
	}

	w = get(t, r, "/projects/no-such-project")
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing project status = %d, want 404", w.Code)
	}

	// unpublished rows render as not found
	w = get(t, r, "/projects/unpublished-annex")
	if w.Code != http.StatusNotFound {
		t.Fatalf("unpublished project status = %d, want 404", w.Code)
	}
}

func TestProjectsCategoryFilter(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/projects?category=residential")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	if strings.Contains(body, "Meridian Tower") {
		t.Fatalf("commercial project shown under residential filter")
	}
	if !strings.Contains(body, "Alder Grove Residences") {
		t.Fatalf("residential project missing under residential filter")
	}

	w = get(t, r, "/projects?category=all")
	if !strings.Contains(w.Body.String(), "Meridian Tower") {
		t.Fatalf("category=all missing seeded project")
	}
}

func TestContactSubmit_Success(t *testing.T) {
	r := newTestRouter(t)

	form := url.Values{
		"name":    {"Jordan Baker"},
		"email":   {"jordan@example.com"},
		"message": {"We need a structural review."},
	}
	req := httptest.NewRequest("POST", "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := doRequest(t, r, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Message sent successfully") {
		t.Fatalf("success flash missing")
	}
	// form is cleared after a successful submit
	if strings.Contains(body, "Jordan Baker") {
		t.Fatalf("form not cleared after success")
	}
}

func TestContactSubmit_ValidationPreservesDraft(t *testing.T) {
	r := newTestRouter(t)

	form := url.Values{
		"name":    {"Jordan Baker"},
		"email":   {"not-an-address"},
		"message": {"We need a structural review."},
	}
	req := httptest.NewRequest("POST", "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := doRequest(t, r, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Jordan Baker") {
		t.Fatalf("submitted name not echoed back")
	}
	if !strings.Contains(body, "not a valid email address") {
		t.Fatalf("field error missing")
	}
}

func TestLeadsAPI_Create(t *testing.T) {
	r := newTestRouter(t)

	payload := map[string]string{
		"name":    "Jordan Baker",
		"email":   "jordan@example.com",
		"message": "We need a structural review.",
	}
	b, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/v1/leads", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	w := doRequest(t, r, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID == "" {
		t.Fatalf("empty lead id in response")
	}
}

func TestLeadsAPI_CreateInvalid(t *testing.T) {
	r := newTestRouter(t)

	b, _ := json.Marshal(map[string]string{"name": "Jordan Baker"})
	req := httptest.NewRequest("POST", "/v1/leads", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	w := doRequest(t, r, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Errors["email"] == "" || resp.Errors["message"] == "" {
		t.Fatalf("expected email and message field errors, got %v", resp.Errors)
	}
}

func signin(t *testing.T, r *mux.Router, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	b, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req := httptest.NewRequest("POST", "/v1/auth/signin", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return doRequest(t, r, req)
}

func TestStaffLeadsExport(t *testing.T) {
	r := newTestRouter(t)

	// unauthenticated export is rejected
	w := get(t, r, "/v1/leads")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated status = %d, want 401", w.Code)
	}

	// wrong password is rejected
	w = signin(t, r, "staff@aurora.test", "wrong")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad password status = %d, want 401", w.Code)
	}

	w = signin(t, r, "staff@aurora.test", staffPassword)
	if w.Code != http.StatusOK {
		t.Fatalf("signin status = %d: %s", w.Code, w.Body.String())
	}
	var auth struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &auth); err != nil {
		t.Fatalf("decode signin response: %v", err)
	}
	if auth.Token == "" {
		t.Fatalf("empty token")
	}

	// seed one lead through the public endpoint
	b, _ := json.Marshal(map[string]string{
		"name": "Jordan Baker", "email": "jordan@example.com", "message": "Hello.",
	})
	req := httptest.NewRequest("POST", "/v1/leads", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	if w := doRequest(t, r, req); w.Code != http.StatusCreated {
		t.Fatalf("lead create status = %d", w.Code)
	}

	req = httptest.NewRequest("GET", "/v1/leads", nil)
	req.Header.Set("Authorization", "Bearer "+auth.Token)
	w = doRequest(t, r, req)
	if w.Code != http.StatusOK {
		t.Fatalf("export status = %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Items []struct {
			Name   string `json:"name"`
			Status string `json:"status"`
			Source string `json:"source"`
		} `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("expected 1 lead got %d", len(resp.Items))
	}
	if resp.Items[0].Status != "new" || resp.Items[0].Source != "website" {
		t.Fatalf("unexpected lead: %+v", resp.Items[0])
	}

	// a token signed with a different secret is rejected
	req = httptest.NewRequest("GET", "/v1/leads", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	if w := doRequest(t, r, req); w.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token status = %d, want 401", w.Code)
	}
}

func TestSitemap(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/sitemap.xml")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "xml") {
		t.Fatalf("content-type = %q", ct)
	}
	body := w.Body.String()
	for _, want := range []string{
		"https://aurora.test/",
		"https://aurora.test/contact",
		"https://aurora.test/projects/meridian-tower",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("sitemap missing %s", want)
		}
	}
	if strings.Contains(body, "unpublished-annex") {
		t.Fatalf("unpublished project in sitemap")
	}
}

func TestSystemEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("health status = %d", w.Code)
	}

	w = get(t, r, "/version")
	if w.Code != http.StatusOK {
		t.Fatalf("version status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "test") {
		t.Fatalf("version body missing version string")
	}
}

func TestUnknownPathRendersNotFoundPage(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/no-such-page")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Page Not Found") {
		t.Fatalf("custom 404 page not rendered")
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(t)

	// the guarded export included: preflight carries no token and must
	// still get 204, not 401
	for _, path := range []string{"/v1/leads", "/v1/auth/signin"} {
		req := httptest.NewRequest("OPTIONS", path, nil)
		w := doRequest(t, r, req)
		if w.Code != http.StatusNoContent {
			t.Errorf("preflight %s status = %d, want 204", path, w.Code)
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Errorf("preflight %s missing CORS header", path)
		}
	}
}
