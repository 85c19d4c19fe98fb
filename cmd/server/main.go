package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/vocabflash/internal/api"
	"github.com/vytor/vocabflash/internal/app"
	"github.com/vytor/vocabflash/internal/config"
	"github.com/vytor/vocabflash/internal/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("VocabFlash Server Starting")
	log.Info("===========================================")
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("vocab_dir=%s", cfg.VocabDir)
	log.Debug("schedule_backend=%s", cfg.ScheduleBackend)
	log.Debug("study_timezone=%s", cfg.StudyTimezone)
	log.Debug("gemini_model=%s", cfg.GeminiModel)
	log.Debug("gemini_max_retries=%d", cfg.GeminiMaxRetries)

	ctx := logger.NewContext(context.Background(), log)
	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Error("failed to initialize: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing resources")
		if err := application.Close(); err != nil {
			log.Error("failed to close resources: %v", err)
		}
	}()

	srv, err := api.NewServer(application.Study, application.Vocabulary, application.Extraction)
	if err != nil {
		log.Error("failed to create server: %v", err)
		os.Exit(1)
	}
	srv.Location = cfg.Location()
	// a lookup may retry every attempt up to the client timeout
	srv.RequestTimeout = cfg.GeminiTimeout*time.Duration(cfg.GeminiMaxRetries) + 10*time.Second
	if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
		srv.StaticDir = cfg.StaticDir
	} else {
		log.Warn("static directory %s not found, serving API only", cfg.StaticDir)
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: srv.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("VocabFlash Server Stopped")
	log.Info("===========================================")
}
