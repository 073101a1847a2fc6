package progress

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

const maxQueryLimit = 1000

type progressService interface {
	Entries(ctx context.Context, userID string, days int, opts Options) Aggregation
	Weights(ctx context.Context, userID string, limit int) ([]WeightRecord, error)
	LogEntry(ctx context.Context, userID string, req LogRequest) (*Entry, error)
}

type EntriesResponse struct {
	Entries []Entry `json:"entries"`
	// Unavailable lists the record streams that failed to load.
	Unavailable []string `json:"unavailable,omitempty"`
}

type Handler struct {
	service progressService
}

func NewHandler(service progressService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/progress/entries", h.HandleEntries).Methods("GET", "OPTIONS").Name("progress-entries")
	r.HandleFunc("/progress/entries", h.HandleLogEntry).Methods("POST", "OPTIONS").Name("progress-log")
	r.HandleFunc("/progress/weights", h.HandleWeights).Methods("GET", "OPTIONS").Name("progress-weights")
}

func (h *Handler) HandleEntries(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.entries")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	query := r.URL.Query()
	order, err := ParseOrder(query.Get("order"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	limit := TrendLimit
	if v := query.Get("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil || limit < 0 || limit > maxQueryLimit {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
	}

	days := 0
	if v := query.Get("days"); v != "" {
		if days, err = strconv.Atoi(v); err != nil || days < 0 {
			http.Error(w, "invalid days", http.StatusBadRequest)
			return
		}
	}

	agg := h.service.Entries(ctx, userID, days, Options{Order: order, Limit: limit})
	pkg.WriteJSONOK(w, EntriesResponse{
		Entries:     agg.Entries,
		Unavailable: agg.Failed,
	})
}

func (h *Handler) HandleWeights(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.weights")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		var err error
		if limit, err = strconv.Atoi(v); err != nil || limit < 0 || limit > maxQueryLimit {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
	}

	records, err := h.service.Weights(ctx, userID, limit)
	if err != nil {
		log.Errorf("list weights for %s: %s", userID, err)
		http.Error(w, "failed to list weights", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, records)
}

func (h *Handler) HandleLogEntry(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.log")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req LogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	entry, err := h.service.LogEntry(ctx, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyEntry),
			errors.Is(err, ErrInvalidSleep),
			errors.Is(err, ErrInvalidMeasurement),
			errors.Is(err, profile.ErrInvalidWeight),
			errors.Is(err, nutrition.ErrInvalidProtein):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, profile.ErrProfileNotFound):
			http.Error(w, "profile not found", http.StatusNotFound)
		default:
			log.Errorf("log progress entry for %s: %s", userID, err)
			http.Error(w, "failed to log progress entry", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, entry, http.StatusCreated)
}
