package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/drbuilds/builds-backend/internal/api/handlers"
	"github.com/drbuilds/builds-backend/internal/api/middleware"
	"github.com/drbuilds/builds-backend/internal/cache"
	"github.com/drbuilds/builds-backend/internal/config"
	"github.com/drbuilds/builds-backend/internal/content"
	"github.com/drbuilds/builds-backend/internal/season"
	"github.com/drbuilds/builds-backend/internal/store"
)

func NewRouter(st *store.Store, tracker *season.Tracker, loader *content.Loader, c *cache.Cache, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "x-api-key"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	opts := handlers.Options{CacheTTL: cfg.CacheTTL, SiteURL: cfg.SiteURL}
	weaponHandler := handlers.NewWeaponHandler(st, c, opts)
	modHandler := handlers.NewModHandler(st, c, opts)
	artifactHandler := handlers.NewArtifactHandler(st, c, opts)
	gameDataHandler := handlers.NewGameDataHandler(st)
	seasonHandler := handlers.NewSeasonHandler(st, tracker, c, opts)
	trackerHandler := handlers.NewTrackerHandler(tracker, c)
	postHandler := handlers.NewPostHandler(loader, st, c, opts)
	dashboardHandler := handlers.NewDashboardHandler(st, tracker, cfg.AdminAPIKey)
	seoHandler := handlers.NewSEOHandler(loader, cfg.SiteURL)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public game data
		r.Get("/weapons", weaponHandler.List)
		r.Get("/mods", modHandler.List)
		r.Get("/artifacts", artifactHandler.List)
		r.Get("/game-data", gameDataHandler.Get)
		r.Get("/current-season", seasonHandler.CurrentSeasonFile)

		// Season tracker reads
		r.Route("/seasons", func(r chi.Router) {
			r.Get("/current", seasonHandler.Current)
			r.Get("/upcoming", seasonHandler.Upcoming)
			r.Get("/history", seasonHandler.History)
			r.Get("/number/{number}", seasonHandler.ByNumber)
			r.Get("/stats", seasonHandler.Stats)
			r.Get("/rotations", seasonHandler.Rotations)
			r.Get("/events", seasonHandler.Events)
		})

		// Content
		r.Route("/posts", func(r chi.Router) {
			r.Get("/", postHandler.List)
			r.Get("/tags", postHandler.Tags)
			r.Get("/categories", postHandler.Categories)
			r.Get("/{slug}", postHandler.Get)
			r.Get("/{slug}/related", postHandler.Related)
		})
		r.Get("/search", postHandler.Search)

		r.Route("/admin", func(r chi.Router) {
			// Dashboard answers both ways, so it sits outside the key gate.
			r.Get("/dashboard", dashboardHandler.Get)

			// Admin writes
			r.Group(func(r chi.Router) {
				r.Use(middleware.APIKey(cfg.AdminAPIKey))
				r.Use(middleware.RateLimit(rate.Limit(5), 10))

				r.Post("/weapons", weaponHandler.Upsert)
				r.Put("/weapons", weaponHandler.Replace)
				r.Post("/mods", modHandler.Upsert)
				r.Put("/mods", modHandler.Replace)
				r.Post("/artifacts", artifactHandler.Upsert)
				r.Put("/artifacts", artifactHandler.Replace)
				r.Post("/season", seasonHandler.SetCurrentSeasonFile)

				r.Route("/tracker", func(r chi.Router) {
					r.Post("/seasons", trackerHandler.AddSeason)
					r.Put("/current/{id}", trackerHandler.SetCurrent)
					r.Put("/rotations/weekly", trackerHandler.UpdateWeekly)
					r.Put("/rotations/daily", trackerHandler.UpdateDaily)
					r.Put("/upcoming", trackerHandler.UpdateUpcoming)
					r.Post("/events", trackerHandler.AddEvent)
				})
			})
		})
	})

	// Crawler artifacts
	r.Get("/sitemap.xml", seoHandler.Sitemap)
	r.Get("/robots.txt", seoHandler.Robots)

	return r
}
