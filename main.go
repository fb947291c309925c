package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/skyward/flightsearch/bootstrap"
	"github.com/skyward/flightsearch/config"
	"github.com/skyward/flightsearch/log"
	"github.com/skyward/flightsearch/mcpserver"
	"github.com/skyward/flightsearch/web"
)

const version = "0.1.0"

func main() {
	mcpMode := flag.Bool("mcp", false, "serve the search_flight MCP tool over stdio instead of the web form")
	flag.Parse()

	// Load .env before config so local secrets reach cleanenv.
	_ = godotenv.Load()

	// 0. Load Config
	cfg, err := config.Load()
	if err != nil {
		log.Init()
		log.Fatalf(context.Background(), "Failed to load config: %v", err)
	}

	// Initialize logging to console and the append-only log file
	log.InitWithFile(cfg.Log.File)

	// Setup signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info(context.Background(), "Program terminated externally. Exiting...")
		cancel()
	}()

	// 1. Init App Components using Bootstrap
	app, err := bootstrap.Setup(ctx, cfg)
	if err != nil {
		log.Fatalf(context.Background(), "Setup failed: %v", err)
	}

	// 2. Serve the requested front end
	if *mcpMode {
		if err := mcpserver.Run(ctx, app.Search, version); err != nil {
			log.Fatalf(context.Background(), "MCP server failed: %v", err)
		}
		return
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           web.NewRouter(app.Search),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof(ctx, "Flight search form listening on http://localhost:%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf(context.Background(), "Server failed: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf(context.Background(), "Shutdown failed: %v", err)
	}
}
