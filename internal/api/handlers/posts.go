package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/drbuilds/builds-backend/internal/cache"
	"github.com/drbuilds/builds-backend/internal/content"
	"github.com/drbuilds/builds-backend/internal/domain"
	"github.com/drbuilds/builds-backend/internal/store"
)

const defaultPageSize = 10

type PostHandler struct {
	loader *content.Loader
	store  *store.Store
	cache  *cache.Cache
	opts   Options
}

func NewPostHandler(loader *content.Loader, store *store.Store, cache *cache.Cache, opts Options) *PostHandler {
	return &PostHandler{loader: loader, store: store, cache: cache, opts: opts}
}

// List serves GET /posts?category=&tag=&featured=&page=&limit=.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category := q.Get("category")
	tag := q.Get("tag")
	featured := q.Get("featured")

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 {
		limit = defaultPageSize
	}

	key := fmt.Sprintf("posts-%s-%s-%s-%d-%d", category, tag, featured, page, limit)
	result, err := cache.GetOr(h.cache, key, h.opts.CacheTTL, func() (domain.PostPage, error) {
		var posts []domain.BlogPost
		switch {
		case featured == "true":
			posts = h.loader.FeaturedPosts()
		case category != "":
			posts = h.loader.PostsByCategory(domain.PostCategory(category))
		case tag != "":
			posts = h.loader.PostsByTag(tag)
		default:
			posts = h.loader.AllPosts()
		}
		return content.Paginate(posts, page, limit), nil
	})
	if err != nil {
		handleError(w, "posts.List", err)
		return
	}

	respondJSON(w, http.StatusOK, result, "")
}

// Get serves GET /posts/{slug}.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post := h.loader.PostBySlug(slug)
	if post == nil {
		handleError(w, "posts.Get", domain.ErrPostNotFound)
		return
	}
	respondJSON(w, http.StatusOK, post, "")
}

// Related serves GET /posts/{slug}/related.
func (h *PostHandler) Related(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post := h.loader.PostBySlug(slug)
	if post == nil {
		handleError(w, "posts.Related", domain.ErrPostNotFound)
		return
	}
	respondJSON(w, http.StatusOK, h.loader.RelatedPosts(post, 0), "")
}

// Tags serves GET /posts/tags.
func (h *PostHandler) Tags(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.loader.AllTags(), "")
}

// Categories serves GET /posts/categories.
func (h *PostHandler) Categories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.loader.AllCategories(), "")
}

type searchResponse struct {
	Query    string                `json:"query"`
	GameData *domain.SearchResults `json:"gameData"`
	Posts    []domain.BlogPost     `json:"posts"`
}

// Search serves GET /search?q=, matching game data and posts in one pass.
func (h *PostHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondError(w, http.StatusBadRequest, "Query parameter q is required")
		return
	}

	resp := searchResponse{
		Query:    query,
		GameData: h.store.Search(query),
		Posts:    h.loader.SearchPosts(query),
	}
	respondJSON(w, http.StatusOK, resp, "")
}
