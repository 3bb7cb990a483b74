package engine

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSpinPacerWaitsForInterval(t *testing.T) {
	start := time.Unix(1700000000, 0)
	mock := NewMockTimeProvider(start)
	p := &SpinPacer{
		Interval: time.Second / 60,
		Time:     mock,
		Yield:    func() { mock.Advance(5 * time.Millisecond) },
	}

	last := Seconds(start)
	next, err := p.Pace(context.Background(), last)
	if err != nil {
		t.Fatalf("Pace failed: %v", err)
	}

	elapsed := next - last
	if elapsed < 1.0/60.0 {
		t.Errorf("Expected at least 1/60s elapsed, got %v", elapsed)
	}
	// 5ms steps: 0, 5, 10, 15, 20 → first sample past 16.6ms is 20ms
	if elapsed > 0.0201 {
		t.Errorf("Expected the first sample past the interval, got %v", elapsed)
	}
	if reads := mock.Reads(); reads != 5 {
		t.Errorf("Expected 5 clock samples, got %d", reads)
	}
}

func TestSpinPacerFirstFrameReturnsImmediately(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(1700000000, 0))
	p := &SpinPacer{
		Interval: time.Second / 60,
		Time:     mock,
		Yield:    func() { t.Fatal("Should not wait when clock starts at 0") },
	}

	next, err := p.Pace(context.Background(), 0)
	if err != nil {
		t.Fatalf("Pace failed: %v", err)
	}
	if next != 1700000000 {
		t.Errorf("Expected wall clock sample, got %v", next)
	}
}

func TestSpinPacerCancel(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(1700000000, 0))
	ctx, cancel := context.WithCancel(context.Background())
	p := &SpinPacer{
		Interval: time.Second,
		Time:     mock,
		Yield:    cancel,
	}

	_, err := p.Pace(ctx, Seconds(mock.Now()))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestSpinPacerNapRealClock(t *testing.T) {
	p := NewSpinPacer(20 * time.Millisecond)
	p.Nap = time.Millisecond

	last := Seconds(time.Now())
	next, err := p.Pace(context.Background(), last)
	if err != nil {
		t.Fatalf("Pace failed: %v", err)
	}
	if next-last < 0.02 {
		t.Errorf("Expected at least 20ms, got %vs", next-last)
	}
}

func TestSleepPacerInterval(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(1700000000, 0))
	var slept []time.Duration
	p := &SleepPacer{
		Interval: time.Second,
		Time:     mock,
		Sleep: func(_ context.Context, d time.Duration) error {
			slept = append(slept, d)
			mock.Advance(d)
			return nil
		},
	}

	next, err := p.Pace(context.Background(), 0)
	if err != nil {
		t.Fatalf("Pace failed: %v", err)
	}
	if len(slept) != 1 || slept[0] != time.Second {
		t.Errorf("Expected a single 1s sleep, got %v", slept)
	}
	if next != 1700000001 {
		t.Errorf("Expected clock after sleep, got %v", next)
	}
}

func TestSleepPacerCancel(t *testing.T) {
	p := NewSleepPacer(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Pace(ctx, 0); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
