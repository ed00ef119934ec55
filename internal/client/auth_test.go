package client

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"plutusgrip-client/internal/config"
	apierrors "plutusgrip-client/internal/errors"
	"plutusgrip-client/internal/session/session_mocks"
)

// Test that logout clears the store exactly once even when the server
// is unreachable
func TestLogout_ClearsTokensOnNetworkError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := session_mocks.NewMockStoreInterface(ctrl)
	store.EXPECT().AccessToken().Return("token_abc123").AnyTimes()
	store.EXPECT().ClearTokens().Return(nil).Times(1)

	cfg := config.APIConfig{
		BaseURL:            "http://127.0.0.1:1",
		Timeout:            time.Second,
		RateLimitPerSecond: 100,
		RateLimitBurst:     100,
		UserAgent:          "plutusgrip-client/test",
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := New(cfg, store, logger, WithRegisterer(prometheus.NewRegistry()))

	err := c.Logout(context.Background())
	assert.Error(t, err)
	assert.True(t, apierrors.IsTransportError(err))
}

// Test that a store clear failure is reported when the logout call
// itself succeeded
func TestLogout_ReportsClearFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := session_mocks.NewMockStoreInterface(ctrl)
	store.EXPECT().AccessToken().Return("token_abc123").AnyTimes()
	store.EXPECT().ClearTokens().Return(assert.AnError).Times(1)

	backend := newFakeBackend()
	defer backend.server.Close()

	cfg := config.APIConfig{
		BaseURL:            backend.server.URL,
		Timeout:            time.Second,
		RateLimitPerSecond: 100,
		RateLimitBurst:     100,
		UserAgent:          "plutusgrip-client/test",
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := New(cfg, store, logger, WithRegisterer(prometheus.NewRegistry()))

	err := c.Logout(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
