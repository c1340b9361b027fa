package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/lessonbell-backend/internal/domain"
	"github.com/heartmarshall/lessonbell-backend/internal/service/lesson"
	"github.com/heartmarshall/lessonbell-backend/internal/service/timetable"
	"github.com/heartmarshall/lessonbell-backend/pkg/ctxutil"
)

type timetableService interface {
	CreateLesson(ctx context.Context, input timetable.CreateLessonInput) (*domain.Lesson, error)
	ListLessons(ctx context.Context, teacherID uuid.UUID, filter domain.LessonFilter) ([]domain.Lesson, error)
	WeeklyTimetable(ctx context.Context, teacherID uuid.UUID, weekStart time.Time) ([]domain.Lesson, error)
	LessonsStartingSoon(ctx context.Context, teacherID uuid.UUID, now time.Time) ([]domain.Lesson, error)
	GetLesson(ctx context.Context, lessonID, actorID uuid.UUID) (*domain.Lesson, error)
}

type lifecycleService interface {
	UpdateLesson(ctx context.Context, input lesson.UpdateLessonInput) (*domain.Lesson, error)
	UpdateStatus(ctx context.Context, lessonID, actorID uuid.UUID, status domain.LessonStatus) (*domain.Lesson, error)
	DeleteLesson(ctx context.Context, lessonID, actorID uuid.UUID) error
}

// LessonHandler serves /api/lessons. Every route expects the teacher id set
// by the auth middleware.
type LessonHandler struct {
	timetable timetableService
	lifecycle lifecycleService
	loc       *time.Location
	log       *slog.Logger
	now       func() time.Time
}

// NewLessonHandler creates a LessonHandler. loc is the clock used to report
// lesson start instants.
func NewLessonHandler(tt timetableService, lc lifecycleService, loc *time.Location, logger *slog.Logger) *LessonHandler {
	return &LessonHandler{
		timetable: tt,
		lifecycle: lc,
		loc:       loc,
		log:       logger.With("handler", "lesson"),
		now:       time.Now,
	}
}

// Routes mounts the lesson endpoints on a fresh router.
func (h *LessonHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/week", h.Week)
	r.Get("/upcoming", h.Upcoming)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Patch("/{id}/status", h.UpdateStatus)
	return r
}

type lessonRequest struct {
	Subject     string  `json:"subject"`
	Description string  `json:"description"`
	Classroom   string  `json:"classroom"`
	Date        string  `json:"date"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Type        string  `json:"type"`
	Status      *string `json:"status,omitempty"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type lessonResponse struct {
	ID          string           `json:"id"`
	TeacherID   string           `json:"teacherId"`
	Subject     string           `json:"subject"`
	Description string           `json:"description"`
	Classroom   string           `json:"classroom"`
	Date        string           `json:"date"`
	StartTime   domain.TimeOfDay `json:"startTime"`
	EndTime     domain.TimeOfDay `json:"endTime"`
	Type        string           `json:"type"`
	Status      string           `json:"status"`
	StartsAt    time.Time        `json:"startsAt"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

type lessonListResponse struct {
	Lessons []lessonResponse `json:"lessons"`
}

// Create handles POST /api/lessons.
func (h *LessonHandler) Create(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := h.teacherID(w, r)
	if !ok {
		return
	}

	var req lessonRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	fields, err := req.fields()
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	input := timetable.CreateLessonInput{TeacherID: teacherID, LessonFields: fields}
	if req.Status != nil {
		status := domain.LessonStatus(strings.ToUpper(strings.TrimSpace(*req.Status)))
		input.Status = &status
	}

	l, err := h.timetable.CreateLesson(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, h.toResponse(l))
}

// List handles GET /api/lessons?from=&to=&status=&type=.
func (h *LessonHandler) List(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := h.teacherID(w, r)
	if !ok {
		return
	}

	filter, err := parseLessonFilter(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	lessons, err := h.timetable.ListLessons(r.Context(), teacherID, filter)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, h.toListResponse(lessons))
}

// Week handles GET /api/lessons/week?weekStartDate=YYYY-MM-DD.
func (h *LessonHandler) Week(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := h.teacherID(w, r)
	if !ok {
		return
	}

	raw := r.URL.Query().Get("weekStartDate")
	if raw == "" {
		writeServiceError(w, r, h.log, domain.NewValidationError("weekStartDate", "required"))
		return
	}
	weekStart, err := domain.ParseDate(raw)
	if err != nil {
		writeServiceError(w, r, h.log, domain.NewValidationError("weekStartDate", "must be YYYY-MM-DD"))
		return
	}

	lessons, err := h.timetable.WeeklyTimetable(r.Context(), teacherID, weekStart)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, h.toListResponse(lessons))
}

// Upcoming handles GET /api/lessons/upcoming.
func (h *LessonHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := h.teacherID(w, r)
	if !ok {
		return
	}

	lessons, err := h.timetable.LessonsStartingSoon(r.Context(), teacherID, h.now())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, h.toListResponse(lessons))
}

// Get handles GET /api/lessons/{id}.
func (h *LessonHandler) Get(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := h.teacherID(w, r)
	if !ok {
		return
	}
	lessonID, ok := h.lessonID(w, r)
	if !ok {
		return
	}

	l, err := h.timetable.GetLesson(r.Context(), lessonID, teacherID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, h.toResponse(l))
}

// Update handles PUT /api/lessons/{id}.
func (h *LessonHandler) Update(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := h.teacherID(w, r)
	if !ok {
		return
	}
	lessonID, ok := h.lessonID(w, r)
	if !ok {
		return
	}

	var req lessonRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	fields, err := req.fields()
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	l, err := h.lifecycle.UpdateLesson(r.Context(), lesson.UpdateLessonInput{
		LessonID:     lessonID,
		ActorID:      teacherID,
		LessonFields: fields,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, h.toResponse(l))
}

// UpdateStatus handles PATCH /api/lessons/{id}/status.
func (h *LessonHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := h.teacherID(w, r)
	if !ok {
		return
	}
	lessonID, ok := h.lessonID(w, r)
	if !ok {
		return
	}

	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	status := domain.LessonStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	l, err := h.lifecycle.UpdateStatus(r.Context(), lessonID, teacherID, status)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, h.toResponse(l))
}

// Delete handles DELETE /api/lessons/{id}.
func (h *LessonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := h.teacherID(w, r)
	if !ok {
		return
	}
	lessonID, ok := h.lessonID(w, r)
	if !ok {
		return
	}

	if err := h.lifecycle.DeleteLesson(r.Context(), lessonID, teacherID); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *LessonHandler) teacherID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := ctxutil.TeacherIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, false
	}
	return id, true
}

func (h *LessonHandler) lessonID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, h.log, domain.NewValidationError("id", "must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// fields parses the wire formats. Semantic checks are left to the services.
func (req lessonRequest) fields() (domain.LessonFields, error) {
	var errs []domain.FieldError

	f := domain.LessonFields{
		Subject:     req.Subject,
		Description: req.Description,
		Classroom:   req.Classroom,
		Type:        domain.LessonType(strings.ToUpper(strings.TrimSpace(req.Type))),
	}

	if req.Date != "" {
		d, err := domain.ParseDate(req.Date)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "date", Message: "must be YYYY-MM-DD"})
		}
		f.Date = d
	}

	parseTime := func(field, v string) domain.TimeOfDay {
		if v == "" {
			errs = append(errs, domain.FieldError{Field: field, Message: "required"})
			return 0
		}
		t, err := domain.ParseTimeOfDay(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: field, Message: "must be HH:MM or HH:MM:SS"})
		}
		return t
	}
	f.StartTime = parseTime("start_time", req.StartTime)
	f.EndTime = parseTime("end_time", req.EndTime)

	if len(errs) > 0 {
		return domain.LessonFields{}, domain.NewValidationErrors(errs)
	}
	return f, nil
}

func parseLessonFilter(r *http.Request) (domain.LessonFilter, error) {
	var (
		filter domain.LessonFilter
		errs   []domain.FieldError
	)
	q := r.URL.Query()

	parseDate := func(field string) *time.Time {
		v := q.Get(field)
		if v == "" {
			return nil
		}
		d, err := domain.ParseDate(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: field, Message: "must be YYYY-MM-DD"})
			return nil
		}
		return &d
	}
	filter.From = parseDate("from")
	filter.To = parseDate("to")

	if v := q.Get("status"); v != "" {
		status := domain.LessonStatus(strings.ToUpper(v))
		if !status.IsValid() {
			errs = append(errs, domain.FieldError{Field: "status", Message: "unknown lesson status"})
		}
		filter.Status = &status
	}
	if v := q.Get("type"); v != "" {
		typ := domain.LessonType(strings.ToUpper(v))
		if !typ.IsValid() {
			errs = append(errs, domain.FieldError{Field: "type", Message: "unknown lesson type"})
		}
		filter.Type = &typ
	}

	if len(errs) > 0 {
		return domain.LessonFilter{}, domain.NewValidationErrors(errs)
	}
	return filter, nil
}

func (h *LessonHandler) toResponse(l *domain.Lesson) lessonResponse {
	return lessonResponse{
		ID:          l.ID.String(),
		TeacherID:   l.TeacherID.String(),
		Subject:     l.Subject,
		Description: l.Description,
		Classroom:   l.Classroom,
		Date:        l.Date.Format(domain.DateLayout),
		StartTime:   l.StartTime,
		EndTime:     l.EndTime,
		Type:        l.Type.String(),
		Status:      l.Status.String(),
		StartsAt:    l.StartsAt(h.loc),
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func (h *LessonHandler) toListResponse(lessons []domain.Lesson) lessonListResponse {
	out := make([]lessonResponse, len(lessons))
	for i := range lessons {
		out[i] = h.toResponse(&lessons[i])
	}
	return lessonListResponse{Lessons: out}
}
