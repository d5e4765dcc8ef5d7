package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drbuilds/builds-backend/internal/domain"
)

func writePost(t *testing.T, dir, name, content string) {
	t.Helper()

	postsDir := filepath.Join(dir, "posts")
	require.NoError(t, os.MkdirAll(postsDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(postsDir, name), []byte(content), 0o644))
}

const samplePost = `---
title: Solar Hunter Build
description: A top-tier solar build.
publishedAt: 2024-01-10T12:00:00Z
author: Cayde
category: builds
tags:
  - solar
  - hunter
featured: true
---
# Solar Hunter

This build melts bosses with **radiant** knives and [ignitions](https://example.com/ignitions).

Second paragraph with more detail.
`

func TestPostBySlug(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "solar-hunter-build.mdx", samplePost)

	l := NewLoader(dir)
	post := l.PostBySlug("solar-hunter-build")
	require.NotNil(t, post)

	assert.Equal(t, "solar-hunter-build", post.Slug)
	assert.Equal(t, "Solar Hunter Build", post.Title)
	assert.Equal(t, "Cayde", post.Author)
	assert.Equal(t, domain.CategoryBuilds, post.Category)
	assert.Equal(t, []string{"solar", "hunter"}, post.Tags)
	assert.True(t, post.Featured)
	assert.Greater(t, post.ReadingTime, 0.0)
	assert.NotContains(t, post.Content, "title:")
}

func TestPostBySlug_Missing(t *testing.T) {
	l := NewLoader(t.TempDir())
	assert.Nil(t, l.PostBySlug("no-such-post"))
}

func TestPostBySlug_Defaults(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "bare.md", "Just a body with no front matter at all.")

	l := NewLoader(dir)
	post := l.PostBySlug("bare")
	require.NotNil(t, post)

	assert.Equal(t, "Anonymous", post.Author)
	assert.Equal(t, domain.CategoryNews, post.Category)
	assert.NotEmpty(t, post.PublishedAt)
	assert.Equal(t, "Just a body with no front matter at all.", post.Excerpt)
	// Description falls back to the derived excerpt.
	assert.Equal(t, post.Excerpt, post.Description)
}

func TestPostBySlug_ByteOrderMark(t *testing.T) {
	dir := t.TempDir()
	// Editors on Windows like to prefix markdown with a UTF-8 BOM; the front
	// matter fence must still be recognized.
	writePost(t, dir, "bom.md", "\ufeff"+samplePost)

	l := NewLoader(dir)
	post := l.PostBySlug("bom")
	require.NotNil(t, post)
	assert.Equal(t, "Solar Hunter Build", post.Title)
	assert.Equal(t, domain.CategoryBuilds, post.Category)
}

func TestAllPosts_SortedNewestFirst(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "older.md", "---\ntitle: Older\npublishedAt: 2024-01-01T00:00:00Z\n---\nbody")
	writePost(t, dir, "newer.md", "---\ntitle: Newer\npublishedAt: 2024-02-01T00:00:00Z\n---\nbody")

	l := NewLoader(dir)
	posts := l.AllPosts()
	require.Len(t, posts, 2)
	assert.Equal(t, "newer", posts[0].Slug)
	assert.Equal(t, "older", posts[1].Slug)
}

func TestReadingTime(t *testing.T) {
	dir := t.TempDir()
	// 400 words at 200 wpm is exactly two minutes.
	writePost(t, dir, "long.md", "---\ntitle: Long\n---\n"+strings.Repeat("word ", 400))

	l := NewLoader(dir)
	post := l.PostBySlug("long")
	require.NotNil(t, post)
	assert.InDelta(t, 2.0, post.ReadingTime, 0.01)
}

func TestExcerpt(t *testing.T) {
	body := "This is the *first* paragraph with a [link](https://x.test) and `code`.\n\nSecond paragraph."
	got := Excerpt(body, 160)
	assert.Equal(t, "This is the first paragraph with a link and code.", got)
}

func TestExcerpt_TruncatesWordSafe(t *testing.T) {
	body := strings.Repeat("abcdefghi ", 30) // 300 chars, one paragraph
	got := Excerpt(body, 160)

	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len(got), 160)
	// Never cuts a word in half.
	for _, w := range strings.Fields(strings.TrimSuffix(got, "...")) {
		assert.Equal(t, "abcdefghi", w)
	}
}

func TestFilters(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "a.md", "---\ntitle: A\ncategory: builds\ntags: [solar]\nfeatured: true\npublishedAt: 2024-01-03T00:00:00Z\n---\nbody")
	writePost(t, dir, "b.md", "---\ntitle: B\ncategory: news\ntags: [Solar, raid]\npublishedAt: 2024-01-02T00:00:00Z\n---\nbody")
	writePost(t, dir, "c.md", "---\ntitle: C\ncategory: guides\npublishedAt: 2024-01-01T00:00:00Z\n---\nbody")

	l := NewLoader(dir)

	builds := l.PostsByCategory(domain.CategoryBuilds)
	require.Len(t, builds, 1)
	assert.Equal(t, "a", builds[0].Slug)

	featured := l.FeaturedPosts()
	require.Len(t, featured, 1)
	assert.Equal(t, "a", featured[0].Slug)

	// Tag matching is case-insensitive.
	solar := l.PostsByTag("SOLAR")
	assert.Len(t, solar, 2)
}

func TestSearchPosts(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "a.md", "---\ntitle: Solar Hunter Build\ntags: [solar]\n---\nbody")
	writePost(t, dir, "b.md", "---\ntitle: Void Titan Guide\ntags: [void]\n---\nbody")

	l := NewLoader(dir)

	// Every term must match.
	assert.Len(t, l.SearchPosts("solar hunter"), 1)
	assert.Len(t, l.SearchPosts("solar titan"), 0)
	assert.Len(t, l.SearchPosts("VOID"), 1)
}

func TestAllTagsAndCategories(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "a.md", "---\ntitle: A\ncategory: builds\ntags: [solar, hunter]\n---\nbody")
	writePost(t, dir, "b.md", "---\ntitle: B\ncategory: builds\ntags: [solar]\n---\nbody")

	l := NewLoader(dir)

	tags := l.AllTags()
	require.Len(t, tags, 2)
	assert.Equal(t, domain.TagCount{Name: "solar", Slug: "solar", Count: 2}, tags[0])

	categories := l.AllCategories()
	require.Len(t, categories, 1)
	assert.Equal(t, domain.CategoryCount{Name: "Builds", Slug: "builds", Count: 2}, categories[0])
}

func TestPaginate(t *testing.T) {
	posts := make([]domain.BlogPost, 25)
	for i := range posts {
		posts[i].Slug = string(rune('a' + i))
	}

	page := Paginate(posts, 2, 10)
	assert.Len(t, page.Posts, 10)
	assert.Equal(t, 25, page.TotalPosts)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasNextPage)
	assert.True(t, page.HasPrevPage)

	last := Paginate(posts, 3, 10)
	assert.Len(t, last.Posts, 5)
	assert.False(t, last.HasNextPage)
}

func TestRelatedPosts_Scoring(t *testing.T) {
	dir := t.TempDir()
	// A and B share category and two tags (3 + 2*2 = 7); C shares one tag only (2).
	writePost(t, dir, "a.md", "---\ntitle: A\ncategory: builds\ntags: [x, y]\npublishedAt: 2024-01-03T00:00:00Z\n---\nbody")
	writePost(t, dir, "b.md", "---\ntitle: B\ncategory: builds\ntags: [x, y]\npublishedAt: 2024-01-02T00:00:00Z\n---\nbody")
	writePost(t, dir, "c.md", "---\ntitle: C\ncategory: news\ntags: [x]\npublishedAt: 2024-01-01T00:00:00Z\n---\nbody")

	l := NewLoader(dir)
	a := l.PostBySlug("a")
	require.NotNil(t, a)

	related := l.RelatedPosts(a, 0)
	require.Len(t, related, 2)
	assert.Equal(t, "b", related[0].Slug)
	assert.Equal(t, "c", related[1].Slug)
}

func TestRelatedPosts_TagMatchIsCaseSensitive(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "a.md", "---\ntitle: A\ncategory: builds\ntags: [Solar]\n---\nbody")
	writePost(t, dir, "b.md", "---\ntitle: B\ncategory: news\ntags: [solar]\n---\nbody")
	writePost(t, dir, "c.md", "---\ntitle: C\ncategory: news\ntags: [Solar]\n---\nbody")

	l := NewLoader(dir)
	a := l.PostBySlug("a")
	require.NotNil(t, a)

	related := l.RelatedPosts(a, 0)
	require.Len(t, related, 2)
	// Only the exact-case tag scores; "b" ties at zero and sorts after.
	assert.Equal(t, "c", related[0].Slug)
}

func TestRelatedPosts_Limit(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		writePost(t, dir, name+".md", "---\ntitle: "+name+"\ncategory: builds\n---\nbody")
	}

	l := NewLoader(dir)
	a := l.PostBySlug("a")
	require.NotNil(t, a)

	assert.Len(t, l.RelatedPosts(a, 0), DefaultRelatedLimit)
	assert.Len(t, l.RelatedPosts(a, 2), 2)
}
