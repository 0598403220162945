package site

import (
	"encoding/xml"
	"net/http"
	"time"

	"log/slog"

	"github.com/garnizeh/aurora/internal/content"
)

// SitemapHandler emits the discovery feed consumed by crawlers: every
// static page plus one entry per published project and blog post.
type SitemapHandler struct {
	reader  *content.Reader
	baseURL string
}

func NewSitemapHandler(reader *content.Reader, baseURL string) *SitemapHandler {
	return &SitemapHandler{reader: reader, baseURL: baseURL}
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

func lastMod(millis int64) string {
	if millis <= 0 {
		return time.Now().UTC().Format("2006-01-02")
	}
	return time.UnixMilli(millis).UTC().Format("2006-01-02")
}

func (h *SitemapHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	today := time.Now().UTC().Format("2006-01-02")

	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: h.baseURL, LastMod: today, ChangeFreq: "weekly", Priority: "1.0"},
			{Loc: h.baseURL + "/about", LastMod: today, ChangeFreq: "monthly", Priority: "0.9"},
			{Loc: h.baseURL + "/services", LastMod: today, ChangeFreq: "monthly", Priority: "0.9"},
			{Loc: h.baseURL + "/projects", LastMod: today, ChangeFreq: "weekly", Priority: "0.9"},
			{Loc: h.baseURL + "/blog", LastMod: today, ChangeFreq: "daily", Priority: "0.7"},
			{Loc: h.baseURL + "/careers", LastMod: today, ChangeFreq: "weekly", Priority: "0.7"},
			{Loc: h.baseURL + "/contact", LastMod: today, ChangeFreq: "monthly", Priority: "0.8"},
		},
	}

	for _, e := range h.reader.SitemapProjects(ctx) {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        h.baseURL + "/projects/" + e.Slug,
			LastMod:    lastMod(e.Updated),
			ChangeFreq: "monthly",
			Priority:   "0.8",
		})
	}
	for _, e := range h.reader.SitemapBlogPosts(ctx) {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        h.baseURL + "/blog/" + e.Slug,
			LastMod:    lastMod(e.Updated),
			ChangeFreq: "weekly",
			Priority:   "0.6",
		})
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return
	}
	if err := xml.NewEncoder(w).Encode(set); err != nil {
		logger.Error("encode sitemap", slog.Any("err", err))
	}
}
