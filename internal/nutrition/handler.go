package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=nutrition_test

type nutritionService interface {
	Goal(ctx context.Context, userID string) (ProteinGoal, error)
	UpdateProtein(ctx context.Context, userID string, grams int) (ProteinGoal, error)
	BodyBMI(ctx context.Context, userID string, weightKg, heightCm float64) (BMI, error)
	BodyCalories(ctx context.Context, userID string, weightKg, heightCm float64, age int, gender Gender, activity ActivityLevel) (int, error)
}

type GoalResponse struct {
	DailyGrams int `json:"dailyGrams"`
	Consumed   int `json:"consumed"`
	Remaining  int `json:"remaining"`
	Percent    int `json:"percent"`
}

func NewGoalResponse(g ProteinGoal) GoalResponse {
	return GoalResponse{
		DailyGrams: g.DailyGrams,
		Consumed:   g.Consumed,
		Remaining:  g.Remaining(),
		Percent:    g.Percent(),
	}
}

type ProteinUpdateRequest struct {
	Grams *int `json:"grams"`
}

type CaloriesResponse struct {
	DailyCalories int `json:"dailyCalories"`
}

type Handler struct {
	service nutritionService
	foods   []Food
}

func NewHandler(service nutritionService, foods []Food) *Handler {
	return &Handler{
		service: service,
		foods:   foods,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/nutrition/goal", h.HandleGoal).Methods("GET", "OPTIONS").Name("nutrition-goal")
	r.HandleFunc("/nutrition/protein", h.HandleUpdateProtein).Methods("PUT", "OPTIONS").Name("nutrition-protein")
	r.HandleFunc("/nutrition/foods", h.HandleFoods).Methods("GET", "OPTIONS").Name("nutrition-foods")
	r.HandleFunc("/body/bmi", h.HandleBMI).Methods("GET", "OPTIONS").Name("body-bmi")
	r.HandleFunc("/body/calories", h.HandleCalories).Methods("GET", "OPTIONS").Name("body-calories")
}

func (h *Handler) HandleGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.goal")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	goal, err := h.service.Goal(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("get protein goal for %s: %s", userID, err)
		http.Error(w, "failed to get protein goal", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, NewGoalResponse(goal))
}

func (h *Handler) HandleUpdateProtein(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.protein.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req ProteinUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Grams == nil {
		http.Error(w, "grams missing", http.StatusBadRequest)
		return
	}

	goal, err := h.service.UpdateProtein(ctx, userID, *req.Grams)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidProtein):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, profile.ErrProfileNotFound):
			http.Error(w, "profile not found", http.StatusNotFound)
		default:
			log.Errorf("update protein for %s: %s", userID, err)
			http.Error(w, "failed to update protein", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSONOK(w, NewGoalResponse(goal))
}

func (h *Handler) HandleFoods(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.foods")
	defer span.End()

	foods, err := FilterFoods(h.foods, r.URL.Query().Get("budget"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pkg.WriteJSONOK(w, foods)
}

func (h *Handler) HandleBMI(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.body.bmi")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	weightKg, heightCm, err := parseBodyQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	bmi, err := h.service.BodyBMI(ctx, userID, weightKg, heightCm)
	if err != nil {
		h.writeBodyErr(w, userID, "calculate bmi", err)
		return
	}

	pkg.WriteJSONOK(w, bmi)
}

func (h *Handler) HandleCalories(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.body.calories")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	weightKg, heightCm, err := parseBodyQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	query := r.URL.Query()
	age, err := strconv.Atoi(query.Get("age"))
	if err != nil {
		http.Error(w, "invalid age", http.StatusBadRequest)
		return
	}

	activity := ActivityLevel(query.Get("activity"))
	if activity == "" {
		activity = ActivityModerate
	}

	calories, err := h.service.BodyCalories(ctx, userID, weightKg, heightCm, age, Gender(query.Get("gender")), activity)
	if err != nil {
		h.writeBodyErr(w, userID, "calculate calories", err)
		return
	}

	pkg.WriteJSONOK(w, CaloriesResponse{DailyCalories: calories})
}

// parseBodyQuery reads the optional weight and height params, 0 when absent.
func parseBodyQuery(r *http.Request) (weightKg, heightCm float64, err error) {
	query := r.URL.Query()
	if v := query.Get("weight"); v != "" {
		if weightKg, err = strconv.ParseFloat(v, 64); err != nil {
			return 0, 0, errors.New("invalid weight")
		}
	}
	if v := query.Get("height"); v != "" {
		if heightCm, err = strconv.ParseFloat(v, 64); err != nil {
			return 0, 0, errors.New("invalid height")
		}
	}
	return weightKg, heightCm, nil
}

func (h *Handler) writeBodyErr(w http.ResponseWriter, userID, op string, err error) {
	switch {
	case errors.Is(err, ErrInvalidBodyParams),
		errors.Is(err, ErrInvalidGender),
		errors.Is(err, ErrInvalidActivity):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, profile.ErrProfileNotFound):
		http.Error(w, "profile not found", http.StatusNotFound)
	default:
		log.Errorf("%s for %s: %s", op, userID, err)
		http.Error(w, op+" failed", http.StatusInternalServerError)
	}
}
