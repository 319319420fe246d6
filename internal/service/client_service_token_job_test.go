// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-recovery-companion/internal/logger"
	"github.com/MKhiriev/go-recovery-companion/internal/mock"
	"github.com/MKhiriev/go-recovery-companion/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func tokenExpiringAt(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)}).
		SignedString([]byte("k"))
	require.NoError(t, err)
	return token
}

func newTestJob(t *testing.T, now time.Time) (*clientTokenRefreshJob, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	job := NewClientTokenRefreshJob(mockAdapter, logger.Nop()).(*clientTokenRefreshJob)
	job.now = func() time.Time { return now }
	return job, mockAdapter
}

// ── check ────────────────────────────────────────────────────────────────────

func TestClientTokenRefreshJob_Check(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		expiresIn   time.Duration
		wantRefresh bool
	}{
		{name: "far from expiry", expiresIn: time.Hour, wantRefresh: false},
		{name: "inside leeway", expiresIn: 30 * time.Second, wantRefresh: true},
		{name: "already expired", expiresIn: -time.Minute, wantRefresh: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job, mockAdapter := newTestJob(t, now)
			ctx := context.Background()

			session := models.Session{AccessToken: tokenExpiringAt(t, now.Add(tt.expiresIn)), RefreshToken: "r"}
			mockAdapter.EXPECT().Session(ctx).Return(session, nil)
			if tt.wantRefresh {
				mockAdapter.EXPECT().Refresh(ctx).Return(models.RefreshResult{AccessToken: "new", RefreshToken: "r2"}, nil)
			}

			assert.Equal(t, tt.wantRefresh, job.check(ctx, time.Minute))
		})
	}
}

func TestClientTokenRefreshJob_Check_SkipsWithoutSession(t *testing.T) {
	job, mockAdapter := newTestJob(t, time.Now())
	ctx := context.Background()

	mockAdapter.EXPECT().Session(ctx).Return(models.Session{}, nil)

	assert.False(t, job.check(ctx, time.Minute))
}

func TestClientTokenRefreshJob_Check_SkipsOpaqueToken(t *testing.T) {
	job, mockAdapter := newTestJob(t, time.Now())
	ctx := context.Background()

	mockAdapter.EXPECT().Session(ctx).Return(models.Session{AccessToken: "opaque", RefreshToken: "r"}, nil)

	assert.False(t, job.check(ctx, time.Minute))
}

func TestClientTokenRefreshJob_Check_RefreshFailure(t *testing.T) {
	now := time.Now()
	job, mockAdapter := newTestJob(t, now)
	ctx := context.Background()

	mockAdapter.EXPECT().Session(ctx).Return(models.Session{AccessToken: tokenExpiringAt(t, now), RefreshToken: "r"}, nil)
	mockAdapter.EXPECT().Refresh(ctx).Return(models.RefreshResult{}, errors.New("refresh rejected"))

	assert.True(t, job.check(ctx, time.Minute))
}

func TestClientTokenRefreshJob_Check_SessionError(t *testing.T) {
	job, mockAdapter := newTestJob(t, time.Now())
	ctx := context.Background()

	mockAdapter.EXPECT().Session(ctx).Return(models.Session{}, errors.New("db locked"))

	assert.False(t, job.check(ctx, time.Minute))
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestClientTokenRefreshJob_Start_RefreshesPeriodically(t *testing.T) {
	job, mockAdapter := newTestJob(t, time.Now())

	expiring := models.Session{AccessToken: tokenExpiringAt(t, time.Now().Add(10*time.Second)), RefreshToken: "r"}
	var refreshes atomic.Int64
	mockAdapter.EXPECT().Session(gomock.Any()).Return(expiring, nil).AnyTimes()
	mockAdapter.EXPECT().Refresh(gomock.Any()).DoAndReturn(func(context.Context) (models.RefreshResult, error) {
		refreshes.Add(1)
		return models.RefreshResult{}, nil
	}).AnyTimes()

	job.Start(context.Background(), 10*time.Millisecond, time.Minute)
	require.Eventually(t, func() bool { return refreshes.Load() >= 2 }, time.Second, 5*time.Millisecond)
	job.Stop()

	after := refreshes.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, refreshes.Load(), "no refresh after Stop")
}

func TestClientTokenRefreshJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job, _ := newTestJob(t, time.Now())

	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientTokenRefreshJob_Start_Twice_RestartsJob(t *testing.T) {
	job, mockAdapter := newTestJob(t, time.Now())
	mockAdapter.EXPECT().Session(gomock.Any()).Return(models.Session{}, nil).AnyTimes()

	ctx := context.Background()
	job.Start(ctx, 10*time.Millisecond, time.Minute)
	job.Start(ctx, 10*time.Millisecond, time.Minute)
	time.Sleep(25 * time.Millisecond)

	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientTokenRefreshJob_ContextCancelStopsJob(t *testing.T) {
	job, mockAdapter := newTestJob(t, time.Now())
	var calls atomic.Int64
	mockAdapter.EXPECT().Session(gomock.Any()).DoAndReturn(func(context.Context) (models.Session, error) {
		calls.Add(1)
		return models.Session{}, nil
	}).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 10*time.Millisecond, time.Minute)
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, time.Second, 5*time.Millisecond)

	cancel()
	job.wg.Wait()
	after := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, calls.Load())
}
