package domain

type PostCategory string

const (
	CategoryBuilds  PostCategory = "builds"
	CategoryGuides  PostCategory = "guides"
	CategoryNews    PostCategory = "news"
	CategoryReviews PostCategory = "reviews"
)

// BlogPost is derived fresh from a content file on each read; there is no
// write path. ReadingTime and Excerpt are computed, not stored.
type BlogPost struct {
	Slug        string       `json:"slug"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Content     string       `json:"content"`
	PublishedAt string       `json:"publishedAt"`
	UpdatedAt   string       `json:"updatedAt,omitempty"`
	Author      string       `json:"author"`
	Category    PostCategory `json:"category"`
	Tags        []string     `json:"tags"`
	Image       string       `json:"image,omitempty"`
	Featured    bool         `json:"featured,omitempty"`
	ReadingTime float64      `json:"readingTime"` // minutes
	Excerpt     string       `json:"excerpt"`
}

type TagCount struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

type CategoryCount struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

type PostPage struct {
	Posts       []BlogPost `json:"posts"`
	TotalPosts  int        `json:"totalPosts"`
	TotalPages  int        `json:"totalPages"`
	CurrentPage int        `json:"currentPage"`
	HasNextPage bool       `json:"hasNextPage"`
	HasPrevPage bool       `json:"hasPrevPage"`
}
