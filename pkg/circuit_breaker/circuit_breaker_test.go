package circuit_breaker_test

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/riofed5/Book-reservation/pkg/circuit_breaker"
)

func Test_circuitBreaker_Call(t *testing.T) {
	successfulService := func() error {
		return nil
	}
	failingService := func() error {
		return errors.New("service error")
	}

	cb := circuit_breaker.New(10, 50*time.Millisecond, 0.3, 3)

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(successfulService))
	}

	// enough failures to exceed the percentile and open the breaker
	for i := 0; i < 10; i++ {
		err := cb.Call(failingService)
		require.Error(t, err)
	}
	require.ErrorIs(t, cb.Call(successfulService), circuit_breaker.ErrOpenCB)

	// after the timeout the breaker probes in half-open and recovers
	time.Sleep(60 * time.Millisecond)
	for i := 0; i < 5; i++ {
		require.NoError(t, cb.Call(successfulService))
	}

	// a failure while closed again re-opens once the percentile is exceeded
	for i := 0; i < 10; i++ {
		_ = cb.Call(failingService)
	}
	require.ErrorIs(t, cb.Call(successfulService), circuit_breaker.ErrOpenCB)

	// in half-open a single failure flips straight back to open
	time.Sleep(60 * time.Millisecond)
	require.EqualError(t, cb.Call(failingService), "service error")
	require.ErrorIs(t, cb.Call(successfulService), circuit_breaker.ErrOpenCB)
}

func Test_circuitBreaker_Reset(t *testing.T) {
	failingService := func() error {
		return errors.New("service error")
	}

	cb := circuit_breaker.New(4, time.Minute, 0.5, 1)
	for i := 0; i < 4; i++ {
		_ = cb.Call(failingService)
	}
	require.ErrorIs(t, cb.Call(func() error { return nil }), circuit_breaker.ErrOpenCB)

	cb.Reset()
	require.NoError(t, cb.Call(func() error { return nil }))
}
