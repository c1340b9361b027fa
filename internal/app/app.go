package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/lessonbell-backend/internal/auth"
	"github.com/heartmarshall/lessonbell-backend/internal/config"
	"github.com/heartmarshall/lessonbell-backend/internal/service/lesson"
	"github.com/heartmarshall/lessonbell-backend/internal/service/notification"
	"github.com/heartmarshall/lessonbell-backend/internal/service/reminder"
	"github.com/heartmarshall/lessonbell-backend/internal/service/timetable"
	"github.com/heartmarshall/lessonbell-backend/internal/transport/middleware"
	"github.com/heartmarshall/lessonbell-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, opens
// storage, starts the reminder runner and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("database_driver", cfg.Database.Driver),
		slog.String("notifier_driver", cfg.Notifier.Driver),
		slog.String("timezone", cfg.Timetable.Location.String()),
	)

	store, err := OpenStorage(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	notifier, err := NewNotifier(cfg.Notifier, logger)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	sink := notification.NewSink()
	timetableService := timetable.NewService(logger, store.Lessons, store.Teachers, store.Tx, timetable.Options{
		Location:       cfg.Timetable.Location,
		UpcomingWindow: cfg.Timetable.UpcomingWindow,
	})
	lessonService := lesson.NewService(logger, store.Lessons, timetableService, store.Tx)
	notificationService := notification.NewService(logger, sink)

	checks := []rest.HealthCheck{{Name: "database", Pinger: store.Pinger}}

	if cfg.Reminder.Enabled {
		sched, err := reminder.NewScheduler(
			logger,
			reminder.NewConfig(cfg.Reminder, cfg.Timetable.Location),
			store.Lessons, store.Teachers, store.Dispatches,
			notifier, sink,
			reminder.NewMetrics(registry),
		)
		if err != nil {
			return err
		}
		runner, err := reminder.NewRunner(logger, sched, cfg.Reminder.PurgeSchedule)
		if err != nil {
			return err
		}
		runner.Start()
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := runner.Stop(stopCtx); err != nil {
				logger.Error("stop reminder runner", slog.String("error", err.Error()))
			}
		}()
		checks = append(checks, rest.HealthCheck{Name: "scheduler", Pinger: sched})
	} else {
		logger.Warn("reminder scheduler disabled")
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	var rateLimit middleware.Middleware
	if cfg.Server.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(5 * time.Minute)
		defer limiter.Stop()
		rateLimit = limiter.Limit(cfg.Server.RateLimit)
	}
	global := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimit,
	}

	handler := rest.NewRouter(rest.RouterDeps{
		Lessons:       rest.NewLessonHandler(timetableService, lessonService, timetableService.Location(), logger),
		Notifications: rest.NewNotificationHandler(notificationService, logger),
		Health:        rest.NewHealthHandler(BuildVersion(), checks...),
		Metrics:       promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
		Middleware:    global,
		Auth:          middleware.Auth(jwtManager, store.Teachers, logger),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is cancelled, then drains in-flight requests for
// at most shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return <-errCh
}
