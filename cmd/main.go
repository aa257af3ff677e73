package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dsemenov/linkmark/internal/api/http/httpctx"
	"github.com/dsemenov/linkmark/internal/api/http/router"
	"github.com/dsemenov/linkmark/internal/config"
	"github.com/dsemenov/linkmark/internal/logger"
	"github.com/dsemenov/linkmark/internal/password"
	"github.com/dsemenov/linkmark/internal/repository/postgres"
	"github.com/dsemenov/linkmark/internal/service"
	"github.com/dsemenov/linkmark/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	// A .env file is a convenience for local runs, not a requirement.
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	bookmarkRepo := postgres.NewBookmarkRepository(db)

	hasher := password.NewArgon(password.Params{
		Time:   cfg.Hash.Time,
		MemKiB: cfg.Hash.MemKiB,
		Par:    cfg.Hash.Par,
	})
	tokenManager := token.NewJWT(cfg.JWT.Secret)
	ctxMgr := httpctx.NewManager()

	authService := service.NewAuth(userRepo, hasher, tokenManager, logger)
	userService := service.NewUser(userRepo, logger)
	bookmarkService := service.NewBookmark(bookmarkRepo, logger)

	r := router.New(authService, userService, bookmarkService, tokenManager, ctxMgr, logger)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTP.Port),
		Handler: r.Handler(),
	}

	go func() {
		logger.Info("Starting server on", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", err)
		}
	}()

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", server.Addr)
	}

	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
