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

	"go.uber.org/zap"

	"github.com/rwandapathways/pathways-api/api/handlers"
	"github.com/rwandapathways/pathways-api/api/scheduler"
	"github.com/rwandapathways/pathways-api/config"
)

func main() {
	conf, err := config.New()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	defer zap.S().Sync()

	a := handlers.App{Config: *conf}
	if err := a.Initialize(); err != nil { // initialize record store and router
		zap.S().Fatalw("failed to initialize", "error", err)
	}

	sched := scheduler.NewScheduler(a.Limiter, time.Hour)
	if err := sched.Start(); err != nil {
		zap.S().Fatalw("failed to start scheduler", "error", err)
	}
	defer sched.Stop()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%v", conf.Port),
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zap.S().Infow("pathways-api is up and running",
			"port", conf.Port,
			"url", conf.BaseURL,
			"store", conf.StoreDriver,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().Fatalw("server stopped", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	zap.S().Info("shutting down")
	if err := srv.Shutdown(ctx); err != nil {
		zap.S().Errorw("failed to shut down server", "error", err)
	}
	if err := a.Close(ctx); err != nil {
		zap.S().Errorw("failed to close app", "error", err)
	}
}
