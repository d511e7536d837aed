package core

import (
	"context"
	"testing"
	"time"
)

func TestConnPoolAcquireReuseAndExhaustion(t *testing.T) {
	pool := NewConnPool(2, time.Minute, 0)
	ctx := context.Background()

	a, err := pool.Acquire(ctx, "endpoint-a")
	if err != nil {
		t.Fatalf("Acquire 1: %v", err)
	}
	_, err = pool.Acquire(ctx, "endpoint-a")
	if err != nil {
		t.Fatalf("Acquire 2: %v", err)
	}
	if _, err := pool.Acquire(ctx, "endpoint-a"); err != ErrConnectionPoolExhausted {
		t.Fatalf("Acquire 3: got %v, want ErrConnectionPoolExhausted", err)
	}

	pool.Release(a)
	reused, err := pool.Acquire(ctx, "endpoint-a")
	if err != nil {
		t.Fatalf("Acquire after release: %v", err)
	}
	if reused != a {
		t.Fatal("expected the released connection to be reused, not a new one")
	}
}

func TestConnPoolAcquireRespectsCancelledContext(t *testing.T) {
	pool := NewConnPool(1, time.Minute, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := pool.Acquire(ctx, "endpoint-a"); err == nil {
		t.Fatal("expected Acquire to fail on an already-cancelled context")
	}
}

func TestConnPoolCleanStale(t *testing.T) {
	pool := NewConnPool(4, time.Minute, 0)
	ctx := context.Background()

	conn, err := pool.Acquire(ctx, "endpoint-a")
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	pool.Release(conn)
	conn.lastUsed = time.Now().Add(-time.Hour)

	pool.CleanStale(time.Minute)
	idle, total := pool.Stats()
	if idle != 0 || total != 0 {
		t.Fatalf("got idle=%d total=%d, want 0, 0 after sweeping a stale connection", idle, total)
	}
}

func TestConnPoolStatsTracksIdleAndTotal(t *testing.T) {
	pool := NewConnPool(4, time.Minute, 0)
	ctx := context.Background()

	a, _ := pool.Acquire(ctx, "endpoint-a")
	_, _ = pool.Acquire(ctx, "endpoint-b")
	pool.Release(a)

	idle, total := pool.Stats()
	if idle != 1 || total != 2 {
		t.Fatalf("got idle=%d total=%d, want 1, 2", idle, total)
	}
}

func TestConnPoolMetricsHooksFire(t *testing.T) {
	pool := NewConnPool(1, time.Minute, 0)
	metrics := NewPoolMetrics()
	pool.SetMetrics(metrics)
	ctx := context.Background()

	conn, err := pool.Acquire(ctx, "endpoint-a")
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if _, err := pool.Acquire(ctx, "endpoint-a"); err != ErrConnectionPoolExhausted {
		t.Fatalf("expected exhaustion, got %v", err)
	}
	pool.Release(conn)

	families, err := metrics.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	if len(families) == 0 {
		t.Fatal("expected at least one registered metric family")
	}
}
