package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/amaumene/gocatalog/internal/config"
	"github.com/amaumene/gocatalog/internal/constants"
	"github.com/amaumene/gocatalog/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New().Fatalf("[App] invalid configuration: %v", err)
	}

	log := logger.NewWithLevel(cfg.LogLevel)
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	app, err := NewApp(cfg, log)
	if err != nil {
		log.Fatalf("[App] startup failed: %v", err)
	}
	defer app.Close()

	app.WarmGenres()
	app.Scheduler.Start()

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      app.Router,
		ReadTimeout:  constants.ServerReadTimeout,
		WriteTimeout: constants.ServerWriteTimeout,
	}

	go func() {
		log.Infof("[App] starting HTTP server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[App] HTTP server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infof("[App] shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), constants.ServerShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("[App] forced shutdown: %v", err)
	}
}
