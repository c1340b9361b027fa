package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lessonbell-backend/internal/adapter/memstore"
	"github.com/heartmarshall/lessonbell-backend/internal/adapter/postgres"
	dispatchrepo "github.com/heartmarshall/lessonbell-backend/internal/adapter/postgres/dispatch"
	lessonrepo "github.com/heartmarshall/lessonbell-backend/internal/adapter/postgres/lesson"
	teacherrepo "github.com/heartmarshall/lessonbell-backend/internal/adapter/postgres/teacher"
	"github.com/heartmarshall/lessonbell-backend/internal/config"
	"github.com/heartmarshall/lessonbell-backend/internal/domain"
	"github.com/heartmarshall/lessonbell-backend/migrations"
)

// LessonStore is the lesson persistence contract shared by both drivers.
type LessonStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error)
	FindOverlapping(ctx context.Context, teacherID uuid.UUID, date time.Time, start, end domain.TimeOfDay) ([]domain.Lesson, error)
	FindByTeacherAndDateRange(ctx context.Context, teacherID uuid.UUID, from, to time.Time) ([]domain.Lesson, error)
	FindStartingBetween(ctx context.Context, date time.Time, from, to domain.TimeOfDay) ([]domain.Lesson, error)
	FindByTeacher(ctx context.Context, teacherID uuid.UUID, filter domain.LessonFilter) ([]domain.Lesson, error)
	Save(ctx context.Context, l *domain.Lesson) (*domain.Lesson, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// TeacherDirectory resolves teachers by id and by token subject.
type TeacherDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Teacher, error)
	GetByUsername(ctx context.Context, username string) (*domain.Teacher, error)
}

// DispatchStore holds dispatch records.
type DispatchStore interface {
	TryMark(ctx context.Context, rec domain.DispatchRecord) (bool, error)
	PurgeStartedBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// TxRunner runs work in a transaction and serializes a teacher's bookings.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	LockSchedule(ctx context.Context, teacherID uuid.UUID) error
}

// Storage bundles the repositories of one database driver.
type Storage struct {
	Lessons    LessonStore
	Teachers   TeacherDirectory
	Dispatches DispatchStore
	Tx         TxRunner
	Pinger     interface{ Ping(ctx context.Context) error }

	close func()
}

// Close releases the driver's resources.
func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// seedNamespace derives stable ids for teachers seeded into the memory driver.
var seedNamespace = uuid.MustParse("6f1c1f9e-2f0a-4a56-9d7e-3b0e4c1d8a52")

// OpenStorage connects the configured database driver. The postgres driver
// applies pending migrations when auto_migrate is set.
func OpenStorage(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Storage, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return openMemory(cfg, logger), nil
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Storage, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if cfg.AutoMigrate {
		n, err := postgres.Migrate(ctx, pool, migrations.FS)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", n))
	}

	return &Storage{
		Lessons:    lessonrepo.New(pool),
		Teachers:   teacherrepo.New(pool),
		Dispatches: dispatchrepo.New(pool),
		Tx:         postgres.NewTxManager(pool),
		Pinger:     pool,
		close:      pool.Close,
	}, nil
}

func openMemory(cfg config.DatabaseConfig, logger *slog.Logger) *Storage {
	teachers := memstore.NewTeacherRepo()
	for _, seed := range cfg.SeedTeachers {
		role, _ := domain.ParseTeacherRole(seed.Role)
		teachers.Put(domain.Teacher{
			ID:        uuid.NewSHA1(seedNamespace, []byte(seed.Username)),
			Username:  seed.Username,
			Email:     seed.Email,
			Role:      role,
			CreatedAt: time.Now().UTC(),
		})
	}
	logger.Warn("using in-memory storage; data is lost on restart",
		slog.Int("teachers", len(cfg.SeedTeachers)),
	)

	lessons := memstore.NewLessonRepo()
	return &Storage{
		Lessons:    lessons,
		Teachers:   teachers,
		Dispatches: memstore.NewDispatchLog(lessons),
		Tx:         memstore.NewTxManager(),
		Pinger:     alwaysUp{},
	}
}

type alwaysUp struct{}

func (alwaysUp) Ping(context.Context) error { return nil }
