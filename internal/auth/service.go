package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=auth

const (
	DefaultTTL        = 24 * 7 * time.Hour
	MinPasswordLength = 6
	sessionKeyPrefix  = "fittrack-session||"
	tokensSetKey      = "fittrack-sessions"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrWrongCredentials   = errors.New("wrong email or password")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidSignupInput = errors.New("invalid signup input")
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	WeightKg float64  `json:"weightKg"`
	GoalType string   `json:"goalType"`
	HeightCm *float64 `json:"heightCm,omitempty"`
}

type usersRepo interface {
	CreateAccount(ctx context.Context, user User, p profile.Profile) error
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type Service struct {
	repo        usersRepo
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
	NewIDFunc      func() string
	HashCost       int
}

func NewAuthService(
	repo usersRepo,
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		repo:           repo,
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
		NewIDFunc:      uuid.NewString,
		HashCost:       pkg.PasswordHashCost,
	}
}

func (req SignupRequest) validate() (profile.GoalType, error) {
	if strings.TrimSpace(req.Name) == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidSignupInput)
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidEmail, err)
	}
	if len(req.Password) < MinPasswordLength {
		return "", ErrPasswordTooShort
	}
	if err := profile.ValidateWeight(req.WeightKg); err != nil {
		return "", err
	}
	if req.HeightCm != nil {
		if err := profile.ValidateHeight(*req.HeightCm); err != nil {
			return "", err
		}
	}
	if req.GoalType == "" {
		return profile.GoalMuscle, nil
	}
	return profile.ParseGoalType(req.GoalType)
}

// Signup registers a new user with an initial profile. Counters start at zero.
func (as *Service) Signup(ctx context.Context, req SignupRequest, now time.Time) (_ *profile.Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.signup")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	goal, err := req.validate()
	if err != nil {
		return nil, err
	}

	passwordHash, err := pkg.HashPasswordWithCost(req.Password, as.HashCost)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	user := User{
		ID:           as.NewIDFunc(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
	}
	p := profile.Profile{
		ID:        user.ID,
		Name:      strings.TrimSpace(req.Name),
		Email:     email,
		WeightKg:  req.WeightKg,
		GoalType:  goal,
		HeightCm:  req.HeightCm,
		CreatedAt: now,
	}

	if err := as.repo.CreateAccount(ctx, user, p); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	return &p, nil
}

// Login checks the credentials and opens a new session. It returns the session token and the user ID.
func (as *Service) Login(ctx context.Context, creds Credentials, createdAt time.Time) (_ string, _ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.login")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	user, err := as.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(creds.Email)))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", "", ErrWrongCredentials
		}
		return "", "", fmt.Errorf("get user: %w", err)
	}

	if !pkg.CheckPasswordHash(creds.Password, user.PasswordHash) {
		return "", "", ErrWrongCredentials
	}

	token, err := as.RandStringFunc(35)
	if err != nil {
		return "", "", err
	}

	sessionKey := sessionKeyPrefix + token
	cmdSet := as.redisClient.Set(ctx, sessionKey, sessionValue(user.ID, createdAt), 0)
	if err := cmdSet.Err(); err != nil {
		return "", "", err
	}

	// add token to list of sessions
	cmdSAdd := as.redisClient.SAdd(ctx, tokensSetKey, token)
	if err := cmdSAdd.Err(); err != nil {
		return "", "", err
	}

	return token, user.ID, nil
}

// Logout removes the session and returns the ID of its owner.
func (as *Service) Logout(ctx context.Context, token string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.logout")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	sessionKey := sessionKeyPrefix + token
	cmd := as.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrSessionNotFound
		}
		return "", err
	}

	userID, _, err := parseSessionValue(cmd.Val())
	if err != nil {
		return "", err
	}

	if err := as.redisClient.Del(ctx, sessionKey).Err(); err != nil {
		return "", err
	}

	// remove token from the list of sessions
	if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return "", err
	}

	return userID, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old.
// It returns the users left without any live session.
func (as *Service) ScanAndClean(ctx context.Context, now time.Time) (expiredUsers []string) {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return nil
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Debugln("=> auth service, scan and clean abort, no sessions")
		return nil
	}

	log.Debugf("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	// token -> owner, for the expired sessions
	owners := map[string]string{}
	liveUsers := map[string]bool{}
	for _, token := range sessionTokens {
		cmd := as.redisClient.Get(ctx, sessionKeyPrefix+token)
		if err := cmd.Err(); err != nil {
			if errors.Is(err, redis.Nil) {
				// session key gone, only the set entry is left
				toRemove = append(toRemove, token)
				continue
			}
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		userID, createdAt, err := parseSessionValue(cmd.Val())
		if err != nil {
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			toRemove = append(toRemove, token)
			continue
		}

		if now.Sub(createdAt) > as.ttl {
			log.Debugf("=>\twill clean the session with token: %s", token)
			toRemove = append(toRemove, token)
			owners[token] = userID
			continue
		}
		liveUsers[userID] = true
	}

	seen := map[string]bool{}
	for _, token := range toRemove {
		if err := as.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}

		// remove token from the list of sessions
		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}

		userID, ok := owners[token]
		if !ok || liveUsers[userID] || seen[userID] {
			continue
		}
		seen[userID] = true
		expiredUsers = append(expiredUsers, userID)
	}

	return expiredUsers
}
