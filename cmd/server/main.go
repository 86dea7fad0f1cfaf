package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/david/pathly/internal/api"
	"github.com/david/pathly/internal/config"
	"github.com/david/pathly/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ds, err := loadDataset(cfg)
	if err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	deps, err := api.DepsFromSeed(ds, cfg)
	if err != nil {
		log.Fatalf("Failed to wire dependencies: %v", err)
	}

	srv, err := api.NewServer(deps)
	if err != nil {
		log.Fatalf("Failed to build server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Server starting on port %s...", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Println("Shutting down...")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}

func loadDataset(cfg *config.Config) (*seed.Dataset, error) {
	if cfg.SeedFile != "" {
		log.Printf("Loading seed data from %s", cfg.SeedFile)
		return seed.LoadFile(cfg.SeedFile)
	}
	return seed.Load()
}
