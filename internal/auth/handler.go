package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

// TokenHeader carries the session token on every authenticated request.
const TokenHeader = "X-FITTRACK-TOKEN"

type accountService interface {
	Signup(ctx context.Context, req SignupRequest, now time.Time) (*profile.Profile, error)
	Login(ctx context.Context, creds Credentials, createdAt time.Time) (string, string, error)
	Logout(ctx context.Context, token string) (string, error)
}

type sessionDropper interface {
	Drop(userID string)
}

type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

type Handler struct {
	service  accountService
	sessions sessionDropper
}

func NewHandler(service accountService, sessions sessionDropper) *Handler {
	return &Handler{
		service:  service,
		sessions: sessions,
	}
}

func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.signup")
	defer span.End()

	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("signup, unmarshal json params: %s", err)
		http.Error(w, "signup failed", http.StatusBadRequest)
		return
	}

	p, err := h.service.Signup(ctx, req, time.Now())
	switch {
	case err == nil:
	case errors.Is(err, ErrEmailTaken):
		http.Error(w, "email already registered", http.StatusConflict)
		return
	case errors.Is(err, ErrInvalidSignupInput),
		errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrPasswordTooShort),
		errors.Is(err, profile.ErrInvalidWeight),
		errors.Is(err, profile.ErrInvalidHeight),
		errors.Is(err, profile.ErrInvalidGoal):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	default:
		log.Errorf("signup: %s", err)
		http.Error(w, "signup failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("new user signed up: %s", p.ID)
	pkg.WriteJSON(w, p, http.StatusCreated)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Tracef("login, unmarshal json params: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}

	if creds.Email == "" {
		http.Error(w, "error, email empty", http.StatusBadRequest)
		return
	}
	if creds.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	token, userID, err := h.service.Login(ctx, creds, time.Now())
	if err != nil {
		if errors.Is(err, ErrWrongCredentials) {
			http.Error(w, "wrong email or password", http.StatusUnauthorized)
			return
		}
		log.Errorf("login failed: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	log.Trace("new login success")
	pkg.WriteJSONOK(w, LoginResponse{Token: token, UserID: userID})
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	authToken := r.Header.Get(TokenHeader)
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	userID, err := h.service.Logout(ctx, authToken)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "no can do", http.StatusUnauthorized)
			return
		}
		log.Errorf("logout: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}

	h.sessions.Drop(userID)
	pkg.WriteResponseBytesOK(w, pkg.ContentType.Text, []byte("logged-out"))
}
