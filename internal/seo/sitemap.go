// Package seo generates the crawler-facing artifacts: sitemap.xml,
// robots.txt and schema.org structured data.
package seo

import (
	"fmt"
	"strings"
	"time"

	"github.com/drbuilds/builds-backend/internal/domain"
)

type ChangeFreq string

const (
	FreqDaily   ChangeFreq = "daily"
	FreqWeekly  ChangeFreq = "weekly"
	FreqMonthly ChangeFreq = "monthly"
)

type SitemapURL struct {
	Loc        string
	LastMod    string
	ChangeFreq ChangeFreq
	Priority   float64
}

// staticRoutes are the always-present site pages with their crawl hints.
var staticRoutes = []struct {
	path     string
	freq     ChangeFreq
	priority float64
}{
	{"", FreqDaily, 1.0},
	{"/builds", FreqDaily, 0.9},
	{"/guides", FreqWeekly, 0.8},
	{"/news", FreqDaily, 0.8},
	{"/about", FreqMonthly, 0.5},
}

// Sitemap renders the sitemap XML for the static routes plus one entry per
// discovered post.
func Sitemap(siteURL string, posts []domain.BlogPost, now time.Time) string {
	siteURL = strings.TrimSuffix(siteURL, "/")
	nowISO := now.UTC().Format(time.RFC3339)

	urls := make([]SitemapURL, 0, len(staticRoutes)+len(posts))
	for _, route := range staticRoutes {
		urls = append(urls, SitemapURL{
			Loc:        siteURL + route.path,
			LastMod:    nowISO,
			ChangeFreq: route.freq,
			Priority:   route.priority,
		})
	}

	for _, post := range posts {
		lastMod := post.UpdatedAt
		if lastMod == "" {
			lastMod = post.PublishedAt
		}
		urls = append(urls, SitemapURL{
			Loc:        siteURL + "/posts/" + post.Slug,
			LastMod:    lastMod,
			ChangeFreq: FreqWeekly,
			Priority:   0.7,
		})
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, u := range urls {
		fmt.Fprintf(&b, "  <url>\n    <loc>%s</loc>\n    <lastmod>%s</lastmod>\n    <changefreq>%s</changefreq>\n    <priority>%.1f</priority>\n  </url>\n",
			xmlEscape(u.Loc), xmlEscape(u.LastMod), u.ChangeFreq, u.Priority)
	}
	b.WriteString("</urlset>\n")
	return b.String()
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

func xmlEscape(s string) string {
	return xmlEscaper.Replace(s)
}

// Robots renders robots.txt: open crawling with the API and admin surfaces
// excluded, plus the sitemap pointer.
func Robots(siteURL string) string {
	siteURL = strings.TrimSuffix(siteURL, "/")

	return fmt.Sprintf(`User-agent: *
Allow: /

# Sitemaps
Sitemap: %s/sitemap.xml

# Crawl-delay for polite crawling
Crawl-delay: 1

# Disallow admin areas and API routes
Disallow: /api/
Disallow: /admin/
Disallow: /dashboard/

# Allow crawling of static assets
Allow: /images/
Allow: /icons/
`, siteURL)
}
