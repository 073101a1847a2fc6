package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=account_test

type accountService interface {
	Overview(ctx context.Context, userID string) (*Overview, error)
	UpdateWeight(ctx context.Context, userID string, weightKg float64) (*Overview, error)
	UpdateGoal(ctx context.Context, userID string, goal string) (*Overview, error)
	UpdateDetails(ctx context.Context, userID string, name *string, heightCm *float64) (*Overview, error)
}

type WeightRequest struct {
	WeightKg *float64 `json:"weight"`
}

type GoalRequest struct {
	GoalType string `json:"goalType"`
}

type DetailsRequest struct {
	Name     *string  `json:"name"`
	HeightCm *float64 `json:"heightCm"`
}

type Handler struct {
	service accountService
}

func NewHandler(service accountService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/profile", h.HandleGet).Methods("GET", "OPTIONS").Name("profile")
	r.HandleFunc("/profile", h.HandleUpdateDetails).Methods("PUT", "OPTIONS").Name("profile-details")
	r.HandleFunc("/profile/weight", h.HandleUpdateWeight).Methods("PUT", "OPTIONS").Name("profile-weight")
	r.HandleFunc("/profile/goal", h.HandleUpdateGoal).Methods("PUT", "OPTIONS").Name("profile-goal")
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.account.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	overview, err := h.service.Overview(ctx, userID)
	if err != nil {
		writeErr(w, userID, "get profile", err)
		return
	}

	pkg.WriteJSONOK(w, overview)
}

func (h *Handler) HandleUpdateWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.account.weight.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req WeightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.WeightKg == nil {
		http.Error(w, "weight missing", http.StatusBadRequest)
		return
	}

	overview, err := h.service.UpdateWeight(ctx, userID, *req.WeightKg)
	if err != nil {
		writeErr(w, userID, "update weight", err)
		return
	}

	pkg.WriteJSONOK(w, overview)
}

func (h *Handler) HandleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.account.goal.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req GoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	overview, err := h.service.UpdateGoal(ctx, userID, req.GoalType)
	if err != nil {
		writeErr(w, userID, "update goal", err)
		return
	}

	pkg.WriteJSONOK(w, overview)
}

func (h *Handler) HandleUpdateDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.account.details.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req DetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	overview, err := h.service.UpdateDetails(ctx, userID, req.Name, req.HeightCm)
	if err != nil {
		writeErr(w, userID, "update profile", err)
		return
	}

	pkg.WriteJSONOK(w, overview)
}

func writeErr(w http.ResponseWriter, userID, op string, err error) {
	switch {
	case errors.Is(err, profile.ErrInvalidWeight),
		errors.Is(err, profile.ErrInvalidHeight),
		errors.Is(err, profile.ErrInvalidGoal),
		errors.Is(err, profile.ErrInvalidName),
		errors.Is(err, profile.ErrEmptyUpdate):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, profile.ErrProfileNotFound):
		http.Error(w, "profile not found", http.StatusNotFound)
	default:
		log.Errorf("%s for %s: %s", op, userID, err)
		http.Error(w, op+" failed", http.StatusInternalServerError)
	}
}
