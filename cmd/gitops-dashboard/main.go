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

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"gitops-dashboard/internal/api/router"
	"gitops-dashboard/internal/model"
	"gitops-dashboard/internal/pkg/config"
	"gitops-dashboard/internal/pkg/logger"
	"gitops-dashboard/internal/scheduler"
	"gitops-dashboard/internal/store"
	"gitops-dashboard/internal/websocket"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "init logger failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	s := store.New()
	if err := bootstrap(s, cfg); err != nil {
		logger.Fatal("bootstrap store failed", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := websocket.NewHub()
	go hub.Run(ctx)

	sched := scheduler.New(s, hub, &cfg.Cluster)
	if err := sched.Start(); err != nil {
		logger.Fatal("start scheduler failed", zap.Error(err))
	}

	engine := router.Setup(s, hub)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: engine,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	sched.Stop()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	logger.Info("server stopped")
}

// bootstrap seeds the admin account and, when enabled, the development
// fixtures.
func bootstrap(s *store.Store, cfg *config.Config) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	s.CreateUser(&model.User{
		Username: cfg.Auth.Admin.Username,
		Password: string(hash),
		Role:     "admin",
	})

	if cfg.Seed.Enabled {
		data, err := store.LoadSeed(cfg.Seed.File)
		if err != nil {
			return fmt.Errorf("load seed fixtures: %w", err)
		}
		s.ApplySeed(data)
		logger.Info("seed fixtures loaded", zap.String("file", cfg.Seed.File))
	}

	return nil
}
