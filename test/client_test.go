//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/profile"
)

type testUser struct {
	Email    string
	Password string
	Token    string
	Profile  profile.Profile
}

func (s *IntegrationTestSuite) do(ctx context.Context, method, path, token string, body any) (int, []byte) {
	t := s.T()

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(auth.TokenHeader, token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) doJSON(ctx context.Context, method, path, token string, body any, wantStatus int, out any) {
	t := s.T()
	status, respBytes := s.do(ctx, method, path, token, body)
	require.Equal(t, wantStatus, status, string(respBytes))
	if out != nil {
		require.NoError(t, json.Unmarshal(respBytes, out))
	}
}

// newUser signs up a random user with the given weight and goal and logs them in.
func (s *IntegrationTestSuite) newUser(ctx context.Context, weightKg float64, goal profile.GoalType) testUser {
	user := testUser{
		Email:    strings.ToLower(gofakeit.Username()) + "@" + gofakeit.DomainName(),
		Password: gofakeit.Password(true, true, true, false, false, 12),
	}

	s.doJSON(ctx, http.MethodPost, "/auth/signup", "", auth.SignupRequest{
		Name:     gofakeit.Name(),
		Email:    user.Email,
		Password: user.Password,
		WeightKg: weightKg,
		GoalType: string(goal),
	}, http.StatusCreated, &user.Profile)

	var login auth.LoginResponse
	s.doJSON(ctx, http.MethodPost, "/auth/login", "", auth.Credentials{
		Email:    user.Email,
		Password: user.Password,
	}, http.StatusOK, &login)
	require.NotEmpty(s.T(), login.Token)
	require.Equal(s.T(), user.Profile.ID, login.UserID)

	user.Token = login.Token
	return user
}
