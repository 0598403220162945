package site

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/garnizeh/aurora/internal/config"
	"github.com/garnizeh/aurora/internal/content"
	"github.com/garnizeh/aurora/internal/db"
	"github.com/garnizeh/aurora/internal/leads"
	"github.com/garnizeh/aurora/internal/repository/sqlite"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, database *db.DB) (*mux.Router, error) {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository and services
	repo := sqlite.New(database, logger)
	reader := content.NewReader(repo, logger, cfg.ContentTTL)
	intake, err := leads.NewIntake(repo, logger)
	if err != nil {
		return nil, fmt.Errorf("lead intake: %w", err)
	}

	// Create handlers
	systemHandler := &SystemHandler{}
	pagesHandler := NewPagesHandler(reader, intake)
	leadsHandler := NewLeadsHandler(intake, repo)
	authHandler := NewAuthHandler(cfg.Staff, cfg.JWTSecret, cfg.TokenDuration)
	sitemapHandler := NewSitemapHandler(reader, cfg.BaseURL)

	// HTML pages
	r.HandleFunc("/", pagesHandler.Home).Methods("GET")
	r.HandleFunc("/about", pagesHandler.About).Methods("GET")
	r.HandleFunc("/services", pagesHandler.Services).Methods("GET")
	r.HandleFunc("/projects", pagesHandler.Projects).Methods("GET")
	r.HandleFunc("/projects/{slug}", pagesHandler.ProjectDetail).Methods("GET")
	r.HandleFunc("/blog", pagesHandler.Blog).Methods("GET")
	r.HandleFunc("/careers", pagesHandler.Careers).Methods("GET")
	r.HandleFunc("/contact", pagesHandler.Contact).Methods("GET")
	r.HandleFunc("/contact", pagesHandler.ContactSubmit).Methods("POST")
	r.HandleFunc("/privacy", pagesHandler.Privacy).Methods("GET")
	r.HandleFunc("/terms", pagesHandler.Terms).Methods("GET")

	// Discovery feed and system endpoints
	r.HandleFunc("/sitemap.xml", sitemapHandler.Sitemap).Methods("GET")
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")

	// Open API endpoints. OPTIONS must be registered for mux to match the
	// route at all; the CORS middleware answers preflight before the
	// handler runs.
	r.HandleFunc("/v1/leads", leadsHandler.CreateLead).Methods("POST", "OPTIONS")
	r.HandleFunc("/v1/auth/signin", authHandler.Signin).Methods("POST", "OPTIONS")

	// Staff endpoints
	staffV1 := r.PathPrefix("/v1").Subrouter()
	staffV1.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))
	staffV1.HandleFunc("/leads", leadsHandler.ListLeads).Methods("GET", "OPTIONS")

	r.NotFoundHandler = LoggingMiddleware(http.HandlerFunc(pagesHandler.NotFound))

	return r, nil
}
