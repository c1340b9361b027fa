//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/lessonbell-backend/internal/adapter/notifier/logsink"
	"github.com/heartmarshall/lessonbell-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lessonbell-backend/internal/adapter/postgres/dispatch"
	lessonrepo "github.com/heartmarshall/lessonbell-backend/internal/adapter/postgres/lesson"
	"github.com/heartmarshall/lessonbell-backend/internal/adapter/postgres/teacher"
	"github.com/heartmarshall/lessonbell-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/lessonbell-backend/internal/auth"
	"github.com/heartmarshall/lessonbell-backend/internal/config"
	"github.com/heartmarshall/lessonbell-backend/internal/domain"
	"github.com/heartmarshall/lessonbell-backend/internal/service/lesson"
	"github.com/heartmarshall/lessonbell-backend/internal/service/notification"
	"github.com/heartmarshall/lessonbell-backend/internal/service/reminder"
	"github.com/heartmarshall/lessonbell-backend/internal/service/timetable"
	"github.com/heartmarshall/lessonbell-backend/internal/transport/middleware"
	"github.com/heartmarshall/lessonbell-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL       string
	Client    *http.Client
	Pool      *pgxpool.Pool
	Scheduler *reminder.Scheduler
	Outbox    *logsink.Notifier
	Registry  *prometheus.Registry
	jwt       *auth.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application stack against the shared
// PostgreSQL container. Lesson dates are read in UTC.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	lessons := lessonrepo.New(pool)
	teachers := teacher.New(pool)
	dispatches := dispatch.New(pool)
	txm := postgres.NewTxManager(pool)

	registry := prometheus.NewRegistry()
	outbox := logsink.NewNotifier(logger, 100)
	sink := notification.NewSink()

	tt := timetable.NewService(logger, lessons, teachers, txm, timetable.Options{Location: time.UTC})
	lc := lesson.NewService(logger, lessons, tt, txm)

	cfg := reminder.DefaultConfig()
	cfg.Location = time.UTC
	sched, err := reminder.NewScheduler(logger, cfg, lessons, teachers, dispatches, outbox, sink, reminder.NewMetrics(registry))
	require.NoError(t, err)

	jwtMgr := auth.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	handler := rest.NewRouter(rest.RouterDeps{
		Lessons:       rest.NewLessonHandler(tt, lc, time.UTC, logger),
		Notifications: rest.NewNotificationHandler(notification.NewService(logger, sink), logger),
		Health: rest.NewHealthHandler("test-version",
			rest.HealthCheck{Name: "database", Pinger: pool},
			rest.HealthCheck{Name: "scheduler", Pinger: sched},
		),
		Metrics: promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
		Middleware: []middleware.Middleware{
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.Logger(logger),
			middleware.CORS(config.CORSConfig{
				AllowedOrigins:   "*",
				AllowedMethods:   "GET,POST,PUT,PATCH,DELETE,OPTIONS",
				AllowedHeaders:   "Authorization,Content-Type",
				AllowCredentials: true,
				MaxAge:           86400,
			}),
		},
		Auth: middleware.Auth(jwtMgr, teachers, logger),
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:       srv.URL,
		Client:    srv.Client(),
		Pool:      pool,
		Scheduler: sched,
		Outbox:    outbox,
		Registry:  registry,
		jwt:       jwtMgr,
	}
}

// createTeacherAndGetToken inserts a teacher row and returns it with a
// valid access token.
func createTeacherAndGetToken(t *testing.T, ts *testServer) (domain.Teacher, string) {
	t.Helper()

	tc := testhelper.SeedTeacher(t, ts.Pool)
	tok, err := ts.jwt.IssueToken(tc.Username, string(tc.Role))
	require.NoError(t, err)
	return tc, tok
}

// request sends a JSON request and returns the status and raw body.
func (ts *testServer) request(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// requestJSON is request with the body decoded into a generic map.
func (ts *testServer) requestJSON(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	status, raw := ts.request(t, method, path, token, body)
	var result map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &result), string(raw))
	}
	return status, result
}

func lessonInput(subject, date, start, end string) map[string]any {
	return map[string]any{
		"subject":     subject,
		"description": "E2E " + subject,
		"classroom":   "204",
		"date":        date,
		"startTime":   start,
		"endTime":     end,
		"type":        "PRACTICE",
	}
}

// createLesson posts a lesson and returns its id.
func (ts *testServer) createLesson(t *testing.T, token string, input map[string]any) string {
	t.Helper()

	status, body := ts.requestJSON(t, http.MethodPost, "/api/lessons", token, input)
	require.Equal(t, http.StatusCreated, status, body)
	id, ok := body["id"].(string)
	require.True(t, ok, "expected id in response")
	return id
}
