package workouts

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

const (
	defaultHistoryDays = 30
	maxHistoryDays     = 366
)

type workoutsService interface {
	Plan() Plan
	Today(ctx context.Context, userID string) (*TodayStatus, error)
	MarkDone(ctx context.Context, userID string) (*profile.Profile, error)
	Unmark(ctx context.Context, userID string) (*profile.Profile, error)
	History(ctx context.Context, userID string, days int) ([]Completion, error)
}

type CompletionResponse struct {
	Completed bool             `json:"completed"`
	Profile   *profile.Profile `json:"profile"`
}

type Handler struct {
	service workoutsService
}

func NewHandler(service workoutsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/workouts/plan", h.HandlePlan).Methods("GET", "OPTIONS").Name("workouts-plan")
	r.HandleFunc("/workouts/plan/{day}", h.HandlePlanDay).Methods("GET", "OPTIONS").Name("workouts-plan-day")
	r.HandleFunc("/workouts/today", h.HandleToday).Methods("GET", "OPTIONS").Name("workouts-today")
	r.HandleFunc("/workouts/today/done", h.HandleMarkDone).Methods("POST", "OPTIONS").Name("workouts-mark")
	r.HandleFunc("/workouts/today/done", h.HandleUnmark).Methods("DELETE", "OPTIONS").Name("workouts-unmark")
	r.HandleFunc("/workouts/history", h.HandleHistory).Methods("GET", "OPTIONS").Name("workouts-history")
}

func (h *Handler) HandlePlan(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.plan")
	defer span.End()

	pkg.WriteJSONOK(w, h.service.Plan().Week())
}

func (h *Handler) HandlePlanDay(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.plan.day")
	defer span.End()

	day, err := ParseWeekday(mux.Vars(r)["day"])
	if err != nil {
		http.Error(w, "invalid day", http.StatusBadRequest)
		return
	}

	pkg.WriteJSONOK(w, h.service.Plan().ForDay(time.Weekday(day)))
}

func (h *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.today")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	status, err := h.service.Today(ctx, userID)
	if err != nil {
		log.Errorf("get today's workout for %s: %s", userID, err)
		http.Error(w, "failed to get today's workout", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, status)
}

func (h *Handler) HandleMarkDone(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.markDone")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	updated, err := h.service.MarkDone(ctx, userID)
	if err != nil {
		h.writeCompletionErr(w, userID, "mark workout done", err)
		return
	}

	log.Debugf("workout marked done for %s, streak: %d", userID, updated.WorkoutStreak)
	pkg.WriteJSONOK(w, CompletionResponse{Completed: true, Profile: updated})
}

func (h *Handler) HandleUnmark(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.unmark")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	updated, err := h.service.Unmark(ctx, userID)
	if err != nil {
		h.writeCompletionErr(w, userID, "unmark workout", err)
		return
	}

	pkg.WriteJSONOK(w, CompletionResponse{Completed: false, Profile: updated})
}

func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.history")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	days := defaultHistoryDays
	if daysParam := r.URL.Query().Get("days"); daysParam != "" {
		var err error
		days, err = strconv.Atoi(daysParam)
		if err != nil || days <= 0 || days > maxHistoryDays {
			http.Error(w, "invalid days", http.StatusBadRequest)
			return
		}
	}

	completions, err := h.service.History(ctx, userID, days)
	if err != nil {
		log.Errorf("list workout history for %s: %s", userID, err)
		http.Error(w, "failed to list workout history", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, completions)
}

func (h *Handler) writeCompletionErr(w http.ResponseWriter, userID, op string, err error) {
	switch {
	case errors.Is(err, ErrAlreadyCompleted), errors.Is(err, ErrNotCompleted):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, profile.ErrProfileNotFound):
		http.Error(w, "profile not found", http.StatusNotFound)
	default:
		log.Errorf("%s for %s: %s", op, userID, err)
		http.Error(w, op+" failed", http.StatusInternalServerError)
	}
}
