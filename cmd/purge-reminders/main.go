// Command purge-reminders deletes dispatch records of lessons that started
// longer ago than the configured retention margin. It is meant for
// deployments that run the server with the in-process purge job disabled
// and schedule this command externally instead.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/lessonbell-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lessonbell-backend/internal/adapter/postgres/dispatch"
	"github.com/heartmarshall/lessonbell-backend/internal/app"
	"github.com/heartmarshall/lessonbell-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if cfg.Database.Driver != config.DriverPostgres {
		logger.Error("purge-reminders needs the postgres driver", slog.String("driver", cfg.Database.Driver))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	cutoff := time.Now().Add(-cfg.Reminder.RetentionMargin)

	purged, err := dispatch.New(pool).PurgeStartedBefore(ctx, cutoff)
	if err != nil {
		logger.Error("purge failed",
			slog.String("error", err.Error()),
			slog.Time("cutoff", cutoff),
		)
		os.Exit(1)
	}

	logger.Info("purge completed",
		slog.Int("purged", purged),
		slog.Time("cutoff", cutoff),
	)
}
