// Package content reads blog articles from markdown files: front matter,
// body, computed reading time and excerpt. Posts are immutable at runtime;
// every read derives them fresh from disk.
package content

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/drbuilds/builds-backend/internal/domain"
)

// wordsPerMinute is the reading-speed assumption behind readingTime.
const wordsPerMinute = 200

// Loader reads posts from a content directory ("posts" subdirectory).
type Loader struct {
	postsDir string
	now      func() time.Time
}

func NewLoader(contentDir string) *Loader {
	return &Loader{
		postsDir: filepath.Join(contentDir, "posts"),
		now:      time.Now,
	}
}

// frontMatter is the YAML header of a post file. Unknown keys are ignored.
type frontMatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Excerpt     string   `yaml:"excerpt"`
	PublishedAt string   `yaml:"publishedAt"`
	Date        string   `yaml:"date"`
	UpdatedAt   string   `yaml:"updatedAt"`
	Author      string   `yaml:"author"`
	Category    string   `yaml:"category"`
	Tags        []string `yaml:"tags"`
	Image       string   `yaml:"image"`
	Featured    bool     `yaml:"featured"`
}

// Slugs lists every post slug, derived from .md/.mdx file names.
func (l *Loader) Slugs() []string {
	entries, err := os.ReadDir(l.postsDir)
	if err != nil {
		return nil
	}

	var slugs []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, ".mdx") {
			slugs = append(slugs, strings.TrimSuffix(name, ".mdx"))
		} else if strings.HasSuffix(name, ".md") {
			slugs = append(slugs, strings.TrimSuffix(name, ".md"))
		}
	}
	return slugs
}

// PostBySlug loads one post, trying .mdx then .md. Returns nil when the
// file is missing or unreadable.
func (l *Loader) PostBySlug(slug string) *domain.BlogPost {
	slug = strings.TrimSuffix(strings.TrimSuffix(slug, ".mdx"), ".md")

	for _, ext := range []string{".mdx", ".md"} {
		data, err := os.ReadFile(filepath.Join(l.postsDir, slug+ext))
		if err != nil {
			continue
		}
		return l.parse(slug, string(data))
	}
	return nil
}

func (l *Loader) parse(slug, raw string) *domain.BlogPost {
	fm, body := splitFrontMatter(raw)

	var meta frontMatter
	// Malformed front matter degrades to an untitled post rather than
	// dropping the article.
	_ = yaml.Unmarshal([]byte(fm), &meta)

	excerpt := meta.Excerpt
	if excerpt == "" {
		excerpt = Excerpt(body, excerptMaxLength)
	}

	publishedAt := meta.PublishedAt
	if publishedAt == "" {
		publishedAt = meta.Date
	}
	if publishedAt == "" {
		publishedAt = l.now().UTC().Format(time.RFC3339)
	}

	description := meta.Description
	if description == "" {
		description = excerpt
	}

	author := meta.Author
	if author == "" {
		author = "Anonymous"
	}

	category := domain.PostCategory(meta.Category)
	if category == "" {
		category = domain.CategoryNews
	}

	tags := meta.Tags
	if tags == nil {
		tags = []string{}
	}

	words := len(strings.Fields(body))

	return &domain.BlogPost{
		Slug:        slug,
		Title:       meta.Title,
		Description: description,
		Content:     body,
		PublishedAt: publishedAt,
		UpdatedAt:   meta.UpdatedAt,
		Author:      author,
		Category:    category,
		Tags:        tags,
		Image:       meta.Image,
		Featured:    meta.Featured,
		ReadingTime: float64(words) / wordsPerMinute,
		Excerpt:     excerpt,
	}
}

// splitFrontMatter separates a leading "---" fenced YAML block from the
// body. Files without a fence are all body.
func splitFrontMatter(raw string) (fm, body string) {
	raw = strings.TrimPrefix(raw, "\ufeff")
	if !strings.HasPrefix(raw, "---\n") && !strings.HasPrefix(raw, "---\r\n") {
		return "", raw
	}

	rest := raw[strings.Index(raw, "\n")+1:]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return "", raw
	}

	fm = rest[:end]
	body = rest[end+len("\n---"):]
	body = strings.TrimPrefix(body, "\r")
	body = strings.TrimPrefix(body, "\n")
	return fm, body
}

// AllPosts returns every readable post, newest first by publishedAt.
func (l *Loader) AllPosts() []domain.BlogPost {
	var posts []domain.BlogPost
	for _, slug := range l.Slugs() {
		if post := l.PostBySlug(slug); post != nil {
			posts = append(posts, *post)
		}
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return parsePostDate(posts[i].PublishedAt).After(parsePostDate(posts[j].PublishedAt))
	})
	return posts
}

func parsePostDate(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Time{}
}

func (l *Loader) PostsByCategory(category domain.PostCategory) []domain.BlogPost {
	var out []domain.BlogPost
	for _, p := range l.AllPosts() {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (l *Loader) FeaturedPosts() []domain.BlogPost {
	var out []domain.BlogPost
	for _, p := range l.AllPosts() {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// PostsByTag matches tags case-insensitively.
func (l *Loader) PostsByTag(tag string) []domain.BlogPost {
	var out []domain.BlogPost
	for _, p := range l.AllPosts() {
		for _, t := range p.Tags {
			if strings.EqualFold(t, tag) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// SearchPosts returns posts whose searchable text contains every
// whitespace-separated term of the query, case-insensitively.
func (l *Loader) SearchPosts(query string) []domain.BlogPost {
	terms := strings.Fields(strings.ToLower(query))

	var out []domain.BlogPost
	for _, p := range l.AllPosts() {
		haystack := strings.ToLower(strings.Join(append([]string{
			p.Title, p.Description, p.Excerpt, p.Author,
		}, p.Tags...), " "))

		matched := true
		for _, term := range terms {
			if !strings.Contains(haystack, term) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, p)
		}
	}
	return out
}

// AllTags returns unique tags with usage counts, most used first.
func (l *Loader) AllTags() []domain.TagCount {
	counts := make(map[string]int)
	for _, p := range l.AllPosts() {
		for _, tag := range p.Tags {
			counts[tag]++
		}
	}

	out := make([]domain.TagCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, domain.TagCount{
			Name:  name,
			Slug:  strings.ReplaceAll(strings.ToLower(name), " ", "-"),
			Count: count,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// AllCategories returns categories with post counts, most used first.
func (l *Loader) AllCategories() []domain.CategoryCount {
	counts := make(map[domain.PostCategory]int)
	for _, p := range l.AllPosts() {
		counts[p.Category]++
	}

	out := make([]domain.CategoryCount, 0, len(counts))
	for category, count := range counts {
		name := string(category)
		if name != "" {
			name = strings.ToUpper(name[:1]) + name[1:]
		}
		out = append(out, domain.CategoryCount{
			Name:  name,
			Slug:  string(category),
			Count: count,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Slug < out[j].Slug
	})
	return out
}

// Paginate slices posts into a page of the given size (1-based page index).
func Paginate(posts []domain.BlogPost, page, limit int) domain.PostPage {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	start := (page - 1) * limit
	end := start + limit
	if start > len(posts) {
		start = len(posts)
	}
	if end > len(posts) {
		end = len(posts)
	}

	totalPages := (len(posts) + limit - 1) / limit

	return domain.PostPage{
		Posts:       posts[start:end],
		TotalPosts:  len(posts),
		TotalPages:  totalPages,
		CurrentPage: page,
		HasNextPage: end < len(posts),
		HasPrevPage: page > 1,
	}
}
