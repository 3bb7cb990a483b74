package march

import (
	"github.com/dgravesa/go-parallel/parallel"

	"github.com/lixenwraith/raymarch/render"
)

// Stats aggregates ray outcomes of one frame
type Stats struct {
	Hits      int
	Escaped   int
	Exhausted int
	Steps     int
}

func (s *Stats) add(r Result) {
	switch r.Outcome {
	case Hit:
		s.Hits++
	case Escaped:
		s.Escaped++
	default:
		s.Exhausted++
	}
	s.Steps += r.Steps
}

func (s *Stats) merge(o Stats) {
	s.Hits += o.Hits
	s.Escaped += o.Escaped
	s.Exhausted += o.Exhausted
	s.Steps += o.Steps
}

// Render marches every pixel of f with clock t and writes its glyph
// Every cell is assigned exactly once, prior contents are irrelevant
func (m *Marcher) Render(f *render.Frame, t float64) Stats {
	width, height := f.Bounds()
	rows := make([]Stats, height)

	renderRow := func(y int) {
		for x := 0; x < width; x++ {
			origin, dir := PixelRay(x, y, width, height)
			r := m.March(origin, dir, t)
			f.Set(x, y, r.Glyph)
			rows[y].add(r)
		}
	}

	switch {
	case m.Workers < 0:
		parallel.For(height, func(y, _ int) {
			renderRow(y)
		})
	case m.Workers > 1:
		parallel.WithNumGoroutines(m.Workers).For(height, func(y, _ int) {
			renderRow(y)
		})
	default:
		for y := 0; y < height; y++ {
			renderRow(y)
		}
	}

	var total Stats
	for _, s := range rows {
		total.merge(s)
	}
	return total
}
