package render

import (
	"context"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/hexpath/hexgrid"
	"github.com/katalvlaran/hexpath/search"
)

// Mark is the presentation marker a Step sets.
type Mark int

const (
	// MarkVisited sets Cell.Visited.
	MarkVisited Mark = iota
	// MarkPath sets Cell.OnPath.
	MarkPath
)

// Step is one frame of a staged replay.
type Step struct {
	Pos  hexgrid.Position
	Mark Mark
}

// Steps stages res: every traversed cell in settle order, then every path
// cell from start to target. A nil res yields no steps.
func Steps(res *search.Result) []Step {
	if res == nil {
		return nil
	}
	out := make([]Step, 0, len(res.CellsTraversed)+len(res.CellsOnPath))
	for _, p := range res.CellsTraversed {
		out = append(out, Step{Pos: p, Mark: MarkVisited})
	}
	for _, p := range res.CellsOnPath {
		out = append(out, Step{Pos: p, Mark: MarkPath})
	}
	return out
}

// Player replays Steps onto a grid with a fixed delay between frames.
// Play runs on one goroutine; Skip may be called from any other.
type Player struct {
	steps   []Step
	delay   time.Duration
	skip    chan struct{}
	visited mapset.Set[hexgrid.Position]
	path    mapset.Set[hexgrid.Position]
}

// NewPlayer stages res for replay. delay ≤ 0 plays every step without
// waiting.
func NewPlayer(res *search.Result, delay time.Duration) *Player {
	return &Player{
		steps:   Steps(res),
		delay:   delay,
		skip:    make(chan struct{}, 1),
		visited: mapset.New[hexgrid.Position](),
		path:    mapset.New[hexgrid.Position](),
	}
}

// Len returns the number of staged steps.
func (p *Player) Len() int { return len(p.steps) }

// Skip makes a running Play apply all remaining steps at once.
func (p *Player) Skip() {
	select {
	case p.skip <- struct{}{}:
	default:
	}
}

// Progress returns how many distinct cells are marked visited and on-path so
// far. Call it from the frame callback.
func (p *Player) Progress() (visited, path int) {
	return p.visited.Size(), p.path.Size()
}

// Play applies the steps to g in order, calling frame after each one and
// waiting delay in between. After Skip the remaining steps are applied and
// frame is called once more. Returns ctx.Err() if ctx ends first; g then
// holds the steps applied so far.
func (p *Player) Play(ctx context.Context, g *hexgrid.Grid, frame func(g *hexgrid.Grid)) error {
	skipping := false
	for i, st := range p.steps {
		if err := p.apply(g, st); err != nil {
			return err
		}
		if skipping {
			continue
		}
		frame(g)
		if i == len(p.steps)-1 || p.delay <= 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			continue
		}

		timer := time.NewTimer(p.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-p.skip:
			timer.Stop()
			skipping = true
		case <-timer.C:
		}
	}
	if skipping {
		frame(g)
	}
	return nil
}

func (p *Player) apply(g *hexgrid.Grid, st Step) error {
	switch st.Mark {
	case MarkPath:
		p.path.Put(st.Pos)
		return g.SetOnPath(st.Pos, true)
	default:
		p.visited.Put(st.Pos)
		return g.SetVisited(st.Pos, true)
	}
}
