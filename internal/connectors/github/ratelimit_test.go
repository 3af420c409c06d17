package github

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Defaults(t *testing.T) {
	limiter := NewRateLimiter()

	assert.Equal(t, AuthenticatedRateLimit, limiter.Remaining())
	assert.Equal(t, AuthenticatedRateLimit, limiter.Limit())
	assert.True(t, limiter.ResetTime().IsZero())
}

func TestRateLimiter_UpdateFromResponse(t *testing.T) {
	limiter := NewRateLimiter()

	resp := &http.Response{Header: http.Header{}}
	resp.Header.Set(HeaderRateRemaining, "42")
	resp.Header.Set(HeaderRateLimit, "60")
	resp.Header.Set(HeaderRateReset, "1700000000")

	limiter.UpdateFromResponse(resp)

	assert.Equal(t, 42, limiter.Remaining())
	assert.Equal(t, 60, limiter.Limit())
	assert.Equal(t, time.Unix(1700000000, 0), limiter.ResetTime())
}

func TestRateLimiter_UpdateIgnoresMalformedHeaders(t *testing.T) {
	limiter := NewRateLimiter()

	resp := &http.Response{Header: http.Header{}}
	resp.Header.Set(HeaderRateRemaining, "not-a-number")

	limiter.UpdateFromResponse(resp)
	assert.Equal(t, AuthenticatedRateLimit, limiter.Remaining())

	limiter.UpdateFromResponse(nil)
	assert.Equal(t, AuthenticatedRateLimit, limiter.Remaining())
}

func TestRateLimiter_WaitRespectsContextCancellation(t *testing.T) {
	limiter := NewRateLimiter()

	// Drain the bucket token, then cancel while the next Wait blocks.
	require.NoError(t, limiter.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := limiter.Wait(ctx)
	assert.Error(t, err)
}
