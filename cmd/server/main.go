package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/youruser/jashn/internal/ai"
	"github.com/youruser/jashn/internal/api"
	"github.com/youruser/jashn/internal/config"
	imagepkg "github.com/youruser/jashn/internal/image"
	"github.com/youruser/jashn/internal/logger"
	"github.com/youruser/jashn/internal/quotes"
	"github.com/youruser/jashn/internal/store"
	"github.com/youruser/jashn/internal/util"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "./configs/config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting jashn server")

	lib := quotes.NewLibrary()
	extra, err := quotes.LoadTemplatesCSV(cfg.Templates.DataDir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logger.Debugf("no extra templates in %s", cfg.Templates.DataDir)
	case err != nil:
		logger.Warnf("failed to load templates: %v", err)
	default:
		logger.Infof("loaded %d extra templates", lib.Merge(extra))
	}

	state, err := store.New(cfg.Storage)
	if err != nil {
		logger.Fatalf("failed to open state store: %v", err)
	}

	aiService := ai.NewService(cfg.OpenRouter)
	if !aiService.HasCredentials() {
		logger.Warnf("no OpenRouter API key configured, AI endpoints will return fallbacks")
	}

	handler := api.NewHandler(api.Deps{
		AI:      aiService,
		Library: lib,
		Loader:  &imagepkg.Loader{Client: util.NewHTTPClient(cfg.Poster.DownloadTimeout)},
		Stories: store.NewStoryRepository(cfg.Storage.StoryTTL),
		State:   state,
		Poster:  cfg.Poster,
	})

	router := setupRouter(cfg, handler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:           addr,
		Handler:        router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		logger.Infof("server listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("server shutdown: %v", err)
	}
	logger.Info("server stopped")
}

func setupRouter(cfg *config.Config, h *api.Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           time.Duration(cfg.CORS.MaxAge) * time.Second,
	}))

	api.RegisterRoutes(router, h, api.RateLimit(cfg.RateLimit))
	return router
}
