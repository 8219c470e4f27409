package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"dsa-tutor/internal/domain/ports"
)

const (
	shutdownTimeout = 5 * time.Second
	warmupTimeout   = 2 * time.Minute
)

// Job is work run on the warm-up schedule.
type Job interface {
	Run(ctx context.Context) error
}

// Settings configure the App.
type Settings struct {
	Addr string
	// Schedule is a standard cron expression; empty disables the warm-up.
	Schedule string
}

// App manages the lifecycle of the HTTP server and the warm-up scheduler.
type App struct {
	server   *http.Server
	cron     *cron.Cron
	warmup   Job
	logger   ports.Logger
	schedule string
}

// New constructs an App instance.
func New(settings Settings, handler http.Handler, warmup Job, logger ports.Logger) *App {
	return &App{
		server: &http.Server{
			Addr:              settings.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		cron:     cron.New(),
		warmup:   warmup,
		logger:   logger,
		schedule: settings.Schedule,
	}
}

// Run serves HTTP until ctx is cancelled or the server fails. When a schedule is set the
// warm-up runs once immediately and then on the schedule.
func (a *App) Run(ctx context.Context) error {
	if a.schedule != "" {
		if err := a.scheduleJob(); err != nil {
			return fmt.Errorf("schedule warm-up: %w", err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info(ctx, "http server listening", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if a.schedule != "" {
		g.Go(func() error {
			a.logger.Info(gctx, "running first warm-up immediately")
			a.runWarmup(gctx)
			return nil
		})
		a.logger.Info(ctx, "starting scheduler", "cron", a.schedule)
		a.cron.Start()
	}

	g.Go(func() error {
		<-gctx.Done()
		return a.shutdown()
	})

	return g.Wait()
}

func (a *App) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var err error
	if shutdownErr := a.server.Shutdown(shutdownCtx); shutdownErr != nil {
		err = fmt.Errorf("shutdown http server: %w", shutdownErr)
	}

	if a.schedule != "" {
		stopCtx := a.cron.Stop()
		select {
		case <-stopCtx.Done():
		case <-shutdownCtx.Done():
		}
		a.logger.Info(context.Background(), "scheduler stopped")
	}
	a.logger.Info(context.Background(), "http server stopped")
	return err
}

func (a *App) scheduleJob() error {
	_, err := a.cron.AddFunc(a.schedule, func() {
		a.runWarmup(context.Background())
	})
	return err
}

func (a *App) runWarmup(parent context.Context) {
	ctx, cancel := context.WithTimeout(parent, warmupTimeout)
	defer cancel()
	if err := a.warmup.Run(ctx); err != nil {
		a.logger.Error(ctx, "warm-up run failed", "error", err)
	}
}
