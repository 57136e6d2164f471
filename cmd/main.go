package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/melisasvr/vr-collab-space/config"
	"github.com/melisasvr/vr-collab-space/internal/recording"
	"github.com/melisasvr/vr-collab-space/internal/room"
	httpx "github.com/melisasvr/vr-collab-space/internal/transport/http"
	"github.com/melisasvr/vr-collab-space/internal/transport/ws"
	"github.com/melisasvr/vr-collab-space/pkg/logger"
)

func main() {
	// --- config ---
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger.Init(logger.Config{
		Env:       logger.Env(cfg.Logging.Env),
		Service:   cfg.Logging.Service,
		Version:   cfg.Logging.Version,
		Backend:   logger.Backend(cfg.Logging.Backend),
		AddSource: cfg.Logging.AddSource,
		Debug:     cfg.Logging.Debug,
	})
	slog.Info("starting vr-room",
		"env", cfg.Logging.Env, "version", cfg.Logging.Version, "room", cfg.Room.ID)

	ctx := context.Background()

	// --- recording store ---
	var store recording.Store
	switch cfg.Recordings.Backend {
	case "postgres":
		pool, err := recording.NewPool(ctx, cfg.Recordings.PostgresDSN)
		if err != nil {
			log.Fatalf("postgres: %v", err)
		}
		defer pool.Close()
		store = recording.NewPostgresStore(pool)
	default:
		fs, err := recording.NewFileStore(cfg.Recordings.Dir)
		if err != nil {
			log.Fatalf("recordings dir: %v", err)
		}
		store = fs
	}

	// --- room ---
	rm := room.New(room.Config{
		ID:                 cfg.Room.ID,
		Name:               cfg.Room.Name,
		ProjectContext:     cfg.Room.ProjectContext,
		ModerationEnabled:  cfg.Moderation.Enabled,
		NotesEnabled:       cfg.Notes.Enabled,
		Denylist:           cfg.Moderation.Denylist,
		SpeakingClearAfter: cfg.SpeakingClearAfter(),
	})

	// --- WS Hub & Server ---
	hub := ws.NewHub()
	wsServer := ws.NewServer(hub, rm, store)

	pumpCtx, stopPump := context.WithCancel(ctx)
	defer stopPump()
	go wsServer.Run(pumpCtx)

	// --- HTTP ---
	handler := httpx.NewHandler(rm, store)
	router := httpx.NewRouter(handler, wsServer, cfg.HTTP.AllowedOrigins)
	httpSrv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http listen", "addr", cfg.HTTP.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// --- graceful shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal", "sig", sig)
	case err := <-errCh:
		slog.Error("server error", "err", err)
	}

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stopPump()
	_ = httpSrv.Shutdown(ctxShutdown)
	slog.Info("stopped")
}
