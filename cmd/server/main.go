// Package main runs the market data service: the simulated market data
// engine behind its HTTP/WebSocket API, with Prometheus metrics.
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

	"market-data-lab/internal/api"
	"market-data-lab/internal/config"
	"market-data-lab/internal/engine"
)

func main() {
	logger := log.New(os.Stdout, "[server] ", log.LstdFlags|log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	eng := engine.New(engine.Options{
		Symbols:       cfg.Symbols,
		CacheCapacity: cfg.CacheCapacity,
		CacheTTL:      cfg.CacheTTL,
		StrictSymbols: cfg.StrictSymbols,
		Logger:        log.New(os.Stdout, "[engine] ", log.LstdFlags),
	})
	logger.Printf("Engine tracking %d symbols (cache: %d entries, ttl %v)",
		len(eng.Symbols()), cfg.CacheCapacity, cfg.CacheTTL)

	apiServer := api.NewServer(api.Options{
		Engine:         eng,
		Logger:         log.New(os.Stdout, "[api] ", log.LstdFlags),
		StreamInterval: cfg.StreamInterval,
		CORSOrigins:    cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      apiServer.Routes(),
		ReadTimeout:  30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("Listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Printf("Received signal %v, shutting down...", sig)
	case err := <-errCh:
		logger.Fatalf("HTTP server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("Forced shutdown: %v", err)
	}

	logger.Println("Shutdown complete")
}
