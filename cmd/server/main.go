package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/drbuilds/builds-backend/internal/api"
	"github.com/drbuilds/builds-backend/internal/cache"
	"github.com/drbuilds/builds-backend/internal/config"
	"github.com/drbuilds/builds-backend/internal/content"
	"github.com/drbuilds/builds-backend/internal/season"
	"github.com/drbuilds/builds-backend/internal/store"
)

const version = "1.0.0"

func main() {
	root := &cobra.Command{
		Use:   "builds-backend",
		Short: "Game data and content API for the builds site",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe()
			},
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Print collection counts from the data directory",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runStats()
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the server version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Println(version)
			},
		},
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize storage and content
	st := store.New(cfg.DataDir)
	tracker := season.New(cfg.DataDir)
	loader := content.NewLoader(cfg.ContentDir)
	c := cache.New()

	// Initialize router
	router := api.NewRouter(st, tracker, loader, c, cfg)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

func runStats() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	stats := store.New(cfg.DataDir).Stats()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Collection", "Count"})
	table.Append([]string{"Weapons", fmt.Sprintf("%d", stats.Weapons)})
	table.Append([]string{"Armor", fmt.Sprintf("%d", stats.Armor)})
	table.Append([]string{"Mods", fmt.Sprintf("%d", stats.Mods)})
	table.Append([]string{"Artifacts", fmt.Sprintf("%d", stats.Artifacts)})
	table.Append([]string{"Activities", fmt.Sprintf("%d", stats.Activities)})
	table.SetFooter([]string{"Updated", stats.LastUpdated})
	table.Render()

	return nil
}
