package seo

import (
	"strings"

	"github.com/drbuilds/builds-backend/internal/domain"
)

const (
	siteName        = "Destiny Rising Builds"
	siteDescription = "The ultimate destination for Destiny 2 builds, guides, and news"
)

// Schema is a schema.org JSON-LD node. Keys follow the schema.org spelling
// (@context, @type, ...), so a plain map is the honest representation.
type Schema = map[string]any

// WebsiteSchema describes the site with its search action and primary
// navigation.
func WebsiteSchema(siteURL string) Schema {
	siteURL = strings.TrimSuffix(siteURL, "/")

	nav := []struct{ name, description, path string }{
		{"Builds", "Destiny 2 character builds and loadouts", "/builds"},
		{"Guides", "Destiny 2 guides and tutorials", "/guides"},
		{"News", "Latest Destiny 2 news and updates", "/news"},
		{"Reviews", "Weapon and exotic reviews", "/reviews"},
	}
	navElements := make([]Schema, len(nav))
	for i, n := range nav {
		navElements[i] = Schema{
			"@type":       "SiteNavigationElement",
			"position":    i + 1,
			"name":        n.name,
			"description": n.description,
			"url":         siteURL + n.path,
		}
	}

	return Schema{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        siteName,
		"url":         siteURL,
		"description": siteDescription,
		"publisher": Schema{
			"@type": "Organization",
			"name":  siteName,
			"url":   siteURL,
		},
		"potentialAction": []Schema{{
			"@type": "SearchAction",
			"target": Schema{
				"@type":       "EntryPoint",
				"urlTemplate": siteURL + "/search?q={search_term_string}",
			},
			"query-input": "required name=search_term_string",
		}},
		"mainEntity": Schema{
			"@type":           "ItemList",
			"name":            "Destiny 2 Content",
			"itemListElement": navElements,
		},
	}
}

// ArticleSchema renders the JSON-LD for one post page.
func ArticleSchema(siteURL string, post *domain.BlogPost) Schema {
	siteURL = strings.TrimSuffix(siteURL, "/")
	articleURL := siteURL + "/posts/" + post.Slug

	imageURL := siteURL + "/images/og-default.jpg"
	if post.Image != "" {
		imageURL = siteURL + post.Image
	}

	modified := post.UpdatedAt
	if modified == "" {
		modified = post.PublishedAt
	}

	return Schema{
		"@context":    "https://schema.org",
		"@type":       "Article",
		"@id":         articleURL,
		"headline":    post.Title,
		"description": post.Description,
		"image": Schema{
			"@type":  "ImageObject",
			"url":    imageURL,
			"width":  1200,
			"height": 630,
		},
		"datePublished": post.PublishedAt,
		"dateModified":  modified,
		"author": Schema{
			"@type": "Person",
			"name":  post.Author,
		},
		"publisher": Schema{
			"@type": "Organization",
			"name":  siteName,
			"url":   siteURL,
		},
		"articleSection": string(post.Category),
		"keywords":       strings.Join(post.Tags, ", "),
		"mainEntityOfPage": Schema{
			"@type": "WebPage",
			"@id":   articleURL,
		},
	}
}

// BreadcrumbSchema renders a BreadcrumbList for the given trail.
func BreadcrumbSchema(crumbs []struct{ Name, URL string }) Schema {
	items := make([]Schema, len(crumbs))
	for i, c := range crumbs {
		items[i] = Schema{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     c.Name,
			"item":     c.URL,
		}
	}
	return Schema{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
}
