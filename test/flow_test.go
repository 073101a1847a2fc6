//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fittrack/internal/account"
	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/progress"
	"github.com/2beens/fittrack/internal/workouts"
)

func (s *IntegrationTestSuite) TestAuth() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	user := s.newUser(ctx, 80, profile.GoalMuscle)

	// same email again
	status, _ := s.do(ctx, http.MethodPost, "/auth/signup", "", map[string]any{
		"name":     "Other",
		"email":    user.Email,
		"password": "password123",
		"weightKg": 70,
		"goalType": "strength",
	})
	assert.Equal(t, http.StatusConflict, status)

	status, _ = s.do(ctx, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    user.Email,
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = s.do(ctx, http.MethodGet, "/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = s.do(ctx, http.MethodGet, "/auth/logout", user.Token, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = s.do(ctx, http.MethodGet, "/profile", user.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestProteinGoalFollowsProfile() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	user := s.newUser(ctx, 80, profile.GoalMuscle)

	var goal nutrition.GoalResponse
	s.doJSON(ctx, http.MethodGet, "/nutrition/goal", user.Token, nil, http.StatusOK, &goal)
	assert.Equal(t, 160, goal.DailyGrams)
	assert.Equal(t, 0, goal.Consumed)

	s.doJSON(ctx, http.MethodPut, "/nutrition/protein", user.Token, map[string]int{"grams": 100}, http.StatusOK, &goal)
	assert.Equal(t, 100, goal.Consumed)
	assert.Equal(t, 60, goal.Remaining)

	var overview account.Overview
	s.doJSON(ctx, http.MethodPut, "/profile/goal", user.Token, map[string]string{"goalType": "fat_loss"}, http.StatusOK, &overview)
	assert.Equal(t, profile.GoalFatLoss, overview.Profile.GoalType)

	s.doJSON(ctx, http.MethodPut, "/profile/weight", user.Token, map[string]float64{"weight": 70}, http.StatusOK, &overview)
	assert.Equal(t, 70.0, overview.Profile.WeightKg)

	s.doJSON(ctx, http.MethodGet, "/nutrition/goal", user.Token, nil, http.StatusOK, &goal)
	assert.Equal(t, 154, goal.DailyGrams)
	assert.Equal(t, 100, goal.Consumed)

	var weights []progress.WeightRecord
	s.doJSON(ctx, http.MethodGet, "/progress/weights", user.Token, nil, http.StatusOK, &weights)
	require.Len(t, weights, 1)
	assert.Equal(t, 70.0, weights[0].WeightKg)
}

func (s *IntegrationTestSuite) TestWorkoutCompletion() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	user := s.newUser(ctx, 75, profile.GoalStrength)

	var today workouts.TodayStatus
	s.doJSON(ctx, http.MethodGet, "/workouts/today", user.Token, nil, http.StatusOK, &today)
	assert.False(t, today.Completed)

	var resp workouts.CompletionResponse
	s.doJSON(ctx, http.MethodPost, "/workouts/today/done", user.Token, nil, http.StatusOK, &resp)
	require.NotNil(t, resp.Profile)
	assert.Equal(t, 1, resp.Profile.WorkoutStreak)
	assert.Equal(t, 1, resp.Profile.CompletedWorkouts)

	status, _ := s.do(ctx, http.MethodPost, "/workouts/today/done", user.Token, nil)
	assert.Equal(t, http.StatusConflict, status)

	var history []workouts.Completion
	s.doJSON(ctx, http.MethodGet, "/workouts/history?days=7", user.Token, nil, http.StatusOK, &history)
	require.Len(t, history, 1)
	assert.Equal(t, today.Date, history[0].Day)

	s.doJSON(ctx, http.MethodDelete, "/workouts/today/done", user.Token, nil, http.StatusOK, &resp)
	assert.Equal(t, 0, resp.Profile.WorkoutStreak)
	assert.Equal(t, 0, resp.Profile.CompletedWorkouts)
}

func (s *IntegrationTestSuite) TestProgressAndReports() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	user := s.newUser(ctx, 82, profile.GoalFatLoss)

	weight := 81.5
	sleep := 7.5
	protein := 140
	var entry progress.Entry
	s.doJSON(ctx, http.MethodPost, "/progress/entries", user.Token, progress.LogRequest{
		WeightKg:     &weight,
		SleepHours:   &sleep,
		ProteinGrams: &protein,
	}, http.StatusCreated, &entry)
	assert.Equal(t, 81.5, entry.Weight)
	assert.Equal(t, 140, entry.ProteinConsumed)

	var entries progress.EntriesResponse
	s.doJSON(ctx, http.MethodGet, "/progress/entries?days=30", user.Token, nil, http.StatusOK, &entries)
	require.Len(t, entries.Entries, 1)
	assert.Empty(t, entries.Unavailable)

	status, body := s.do(ctx, http.MethodGet, "/reports/xlsx", user.Token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body)

	status, body = s.do(ctx, http.MethodGet, "/reports/pdf", user.Token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "%PDF-", string(body[:5]))

	stored, err := filepath.Glob(filepath.Join(s.reportsDir, "FitTrack_Report_*"))
	require.NoError(t, err)
	assert.NotEmpty(t, stored)
	for _, f := range stored {
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}
