package engine

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/raymarch/march"
	"github.com/lixenwraith/raymarch/render"
	"github.com/lixenwraith/raymarch/shade"
	"github.com/lixenwraith/raymarch/terminal"
)

// statsEvery controls how often frame stats are logged
const statsEvery = 60

// FrameRenderer fills a frame for clock t
type FrameRenderer interface {
	Render(f *render.Frame, t float64) march.Stats
}

// Loop drives render → present → pace until cancelled or Frames are done
type Loop struct {
	Renderer  FrameRenderer
	Presenter terminal.Presenter
	Pacer     Pacer
	Frame     *render.Frame

	// Frames stops after this many frames, 0 runs forever
	Frames int
}

// Run executes the frame loop
// The animation clock starts at 0 and only advances through the pacer
// Cancellation returns nil between frames
func (l *Loop) Run(ctx context.Context) error {
	var t float64
	for n := 0; l.Frames == 0 || n < l.Frames; n++ {
		if ctx.Err() != nil {
			log.Printf("loop: stopped after %d frames", n)
			return nil
		}

		stats := l.Renderer.Render(l.Frame, t)
		if n%statsEvery == 0 {
			log.Printf("loop: frame %d t=%.3f hits=%d escaped=%d exhausted=%d steps=%d blank=%d",
				n, t, stats.Hits, stats.Escaped, stats.Exhausted, stats.Steps, l.Frame.Count(shade.Empty))
		}

		// Write failures are not recoverable here, the next frame retries
		if err := l.Presenter.Present(l.Frame); err != nil {
			log.Printf("loop: present frame %d: %v", n, err)
		}

		next, err := l.Pacer.Pace(ctx, t)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				log.Printf("loop: stopped after %d frames", n+1)
				return nil
			}
			return fmt.Errorf("pace frame %d: %w", n, err)
		}
		t = next
	}
	log.Printf("loop: completed %d frames", l.Frames)
	return nil
}
