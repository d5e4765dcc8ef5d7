package content

import (
	"regexp"
	"sort"
	"strings"

	"github.com/drbuilds/builds-backend/internal/domain"
)

const (
	categoryScore = 3
	tagScore      = 2

	// DefaultRelatedLimit is how many related posts are suggested.
	DefaultRelatedLimit = 3

	excerptMaxLength = 160
)

// RelatedPosts ranks every other post by a weighted-overlap score: matching
// category is worth 3 points, each shared tag (exact, case-sensitive) 2
// points. Ties keep the underlying collection order. Runs over the full
// post list on every call; there is no index.
func (l *Loader) RelatedPosts(current *domain.BlogPost, limit int) []domain.BlogPost {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	type scored struct {
		post  domain.BlogPost
		score int
	}

	var candidates []scored
	for _, p := range l.AllPosts() {
		if p.Slug == current.Slug {
			continue
		}

		score := 0
		if p.Category == current.Category {
			score += categoryScore
		}
		for _, tag := range p.Tags {
			for _, currentTag := range current.Tags {
				if tag == currentTag {
					score += tagScore
					break
				}
			}
		}
		candidates = append(candidates, scored{post: p, score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]domain.BlogPost, len(candidates))
	for i, c := range candidates {
		out[i] = c.post
	}
	return out
}

var (
	headingMarkers = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	markdownLinks  = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	emphasisMarks  = regexp.MustCompile(`\*{1,2}([^*]*)\*{1,2}`)
	inlineCode     = regexp.MustCompile("`([^`]*)`")
	listMarkers    = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
)

// Excerpt strips markdown formatting from the body, takes the first
// paragraph and truncates it word-safely to maxLength with a trailing
// ellipsis.
func Excerpt(body string, maxLength int) string {
	clean := headingMarkers.ReplaceAllString(body, "")
	clean = markdownLinks.ReplaceAllString(clean, "$1")
	clean = emphasisMarks.ReplaceAllString(clean, "$1")
	clean = inlineCode.ReplaceAllString(clean, "$1")
	clean = listMarkers.ReplaceAllString(clean, "")
	clean = strings.TrimSpace(clean)

	firstParagraph := strings.SplitN(clean, "\n\n", 2)[0]
	if len(firstParagraph) <= maxLength {
		return firstParagraph
	}

	var excerpt strings.Builder
	for _, word := range strings.Fields(firstParagraph) {
		if excerpt.Len()+len(word)+1 > maxLength-3 {
			break
		}
		if excerpt.Len() > 0 {
			excerpt.WriteByte(' ')
		}
		excerpt.WriteString(word)
	}
	return excerpt.String() + "..."
}
