package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func newTestThrottle(t *testing.T, maxFailures int64, window time.Duration) (*LoginThrottle, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewLoginThrottle(client, maxFailures, window), mr
}

func TestLoginThrottle_AllowedUntilBudgetExhausted(t *testing.T) {
	throttle, _ := newTestThrottle(t, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := throttle.Allowed(ctx, "alice")
		if err != nil {
			t.Fatalf("Allowed returned error: %v", err)
		}
		if !ok {
			t.Fatalf("attempt %d should still be allowed", i+1)
		}
		if err := throttle.RecordFailure(ctx, "alice"); err != nil {
			t.Fatalf("RecordFailure returned error: %v", err)
		}
	}

	ok, err := throttle.Allowed(ctx, "alice")
	if err != nil {
		t.Fatalf("Allowed returned error: %v", err)
	}
	if ok {
		t.Fatalf("expected alice to be throttled after 3 failures")
	}
}

func TestLoginThrottle_PerUsernameIsolation(t *testing.T) {
	throttle, _ := newTestThrottle(t, 1, time.Minute)
	ctx := context.Background()

	if err := throttle.RecordFailure(ctx, "alice"); err != nil {
		t.Fatalf("RecordFailure returned error: %v", err)
	}

	if ok, _ := throttle.Allowed(ctx, "alice"); ok {
		t.Fatalf("alice should be throttled")
	}
	if ok, _ := throttle.Allowed(ctx, "bob"); !ok {
		t.Fatalf("bob should be unaffected by alice's failures")
	}
}

func TestLoginThrottle_ResetClearsCount(t *testing.T) {
	throttle, _ := newTestThrottle(t, 1, time.Minute)
	ctx := context.Background()

	if err := throttle.RecordFailure(ctx, "alice"); err != nil {
		t.Fatalf("RecordFailure returned error: %v", err)
	}
	if ok, _ := throttle.Allowed(ctx, "alice"); ok {
		t.Fatalf("alice should be throttled before reset")
	}

	if err := throttle.Reset(ctx, "alice"); err != nil {
		t.Fatalf("Reset returned error: %v", err)
	}
	if ok, _ := throttle.Allowed(ctx, "alice"); !ok {
		t.Fatalf("alice should be allowed after reset")
	}
}

func TestLoginThrottle_WindowExpiry(t *testing.T) {
	throttle, mr := newTestThrottle(t, 1, time.Minute)
	ctx := context.Background()

	if err := throttle.RecordFailure(ctx, "alice"); err != nil {
		t.Fatalf("RecordFailure returned error: %v", err)
	}
	if ok, _ := throttle.Allowed(ctx, "alice"); ok {
		t.Fatalf("alice should be throttled inside the window")
	}

	mr.FastForward(2 * time.Minute)

	if ok, _ := throttle.Allowed(ctx, "alice"); !ok {
		t.Fatalf("alice should be allowed after the window expires")
	}
}

func TestLoginThrottle_DefaultsApplied(t *testing.T) {
	throttle, _ := newTestThrottle(t, 0, 0)
	if throttle.maxFailures != defaultMaxFailures {
		t.Fatalf("expected default max failures %d, got %d", defaultMaxFailures, throttle.maxFailures)
	}
	if throttle.window != defaultWindow {
		t.Fatalf("expected default window %v, got %v", defaultWindow, throttle.window)
	}
}
