package engine

import (
	"context"
	"runtime"
	"time"
)

// Pacer blocks between frames and returns the clock value for the next one
// last is the clock value the finished frame was rendered with
type Pacer interface {
	Pace(ctx context.Context, last float64) (float64, error)
}

// SleepPacer waits a flat interval after every frame
type SleepPacer struct {
	Interval time.Duration
	Time     TimeProvider

	// Sleep defaults to a context-aware timer wait
	Sleep func(ctx context.Context, d time.Duration) error
}

// NewSleepPacer creates a pacer sleeping interval on the system clock
func NewSleepPacer(interval time.Duration) *SleepPacer {
	return &SleepPacer{
		Interval: interval,
		Time:     NewMonotonicTimeProvider(),
		Sleep:    sleepContext,
	}
}

func (p *SleepPacer) Pace(ctx context.Context, _ float64) (float64, error) {
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepContext
	}
	if err := sleep(ctx, p.Interval); err != nil {
		return 0, err
	}
	return Seconds(p.Time.Now()), nil
}

// SpinPacer samples the clock until Interval has elapsed since the last frame
// The sample that ends the wait becomes the next clock value
type SpinPacer struct {
	Interval time.Duration
	Time     TimeProvider

	// Nap, when positive, sleeps up to this long between samples
	// Zero busy-waits with a scheduler yield
	Nap time.Duration

	// Yield runs between samples, defaults to runtime.Gosched
	Yield func()
}

// NewSpinPacer creates a pacer holding frames to interval on the system clock
func NewSpinPacer(interval time.Duration) *SpinPacer {
	return &SpinPacer{
		Interval: interval,
		Time:     NewMonotonicTimeProvider(),
	}
}

func (p *SpinPacer) Pace(ctx context.Context, last float64) (float64, error) {
	target := p.Interval.Seconds()
	for {
		now := Seconds(p.Time.Now())
		elapsed := now - last
		if elapsed >= target {
			return now, nil
		}
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		switch {
		case p.Yield != nil:
			p.Yield()
		case p.Nap > 0:
			remaining := time.Duration((target - elapsed) * float64(time.Second))
			time.Sleep(min(p.Nap, remaining))
		default:
			runtime.Gosched()
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
