package main

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/hexpath/hexgrid"
	"github.com/katalvlaran/hexpath/render"
	"github.com/katalvlaran/hexpath/search"
	"github.com/katalvlaran/hexpath/telemetry"
)

// action is what the event loop asks the playback loop to do next.
type action int

const (
	actQuit action = iota
	actReplay
	actRerun
)

// runTUI animates searches until the user quits or ctx ends.
func runTUI(ctx context.Context, cfg config, st setup, ts *telemetry.Searcher) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if err = screen.Init(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go pumpEvents(screen.PollEvent, events, quit)

	r := render.NewRenderer(screen, render.DefaultTheme())
	width, height := screen.Size()
	rerun := true
	var res *searchResult

	for {
		if rerun {
			out, err := ts.SearchContext(ctx, st.grid, st.start, st.target)
			if err != nil {
				return err
			}
			res = &searchResult{out: out, status: statusLine(st, out.Found(), out.Cost)}
			rerun = false
		}

		act, err := play(ctx, screen, r, st, res, cfg, events, &width, &height)
		if err != nil {
			return err
		}
		switch act {
		case actQuit:
			return nil
		case actReplay:
			continue
		case actRerun:
			l := render.FitLayout(width, height, st.grid.Wide())
			g, err := hexgrid.Resize(st.grid, l.Rows, l.Cols, l.Wide)
			if err != nil {
				return err
			}
			st.grid = g
			var ok bool
			if st.start, ok = l.Clamp(st.start); !ok {
				return fmt.Errorf("tui: terminal too small (%dx%d)", width, height)
			}
			st.target, _ = l.Clamp(st.target)
			rerun = true
		}
	}
}

// pumpEvents forwards polled events until poll returns nil, which closes
// events, or until quit is closed.
func pumpEvents(poll func() tcell.Event, events chan<- tcell.Event, quit <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

// play animates one result while handling input. It returns when the user
// quits, asks for a replay or the terminal is resized.
func play(ctx context.Context, screen tcell.Screen, r *render.Renderer, st setup, res *searchResult,
	cfg config, events <-chan tcell.Event, width, height *int) (action, error) {
	pctx, cancel := context.WithCancel(ctx)
	defer cancel()

	view := st.grid.Clone()
	view.ClearMarks()
	player := render.NewPlayer(res.out, cfg.delay)
	done := make(chan error, 1)
	go func() {
		done <- player.Play(pctx, view, func(g *hexgrid.Grid) {
			visited, path := player.Progress()
			r.Draw(g, st.start, st.target, fmt.Sprintf("%s  visited %d  path %d", res.status, visited, path))
		})
	}()
	// stop waits for the player goroutine so the next frame owns the screen
	stop := func(a action) (action, error) {
		cancel()
		if done != nil {
			<-done
		}
		return a, nil
	}

	for {
		select {
		case <-ctx.Done():
			return stop(actQuit)
		case err := <-done:
			done = nil
			if err != nil && pctx.Err() == nil {
				return actQuit, err
			}
		case ev, ok := <-events:
			if !ok {
				return stop(actQuit)
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
					return stop(actQuit)
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					return stop(actQuit)
				case ev.Key() == tcell.KeyRune && ev.Rune() == 's':
					player.Skip()
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
					return stop(actReplay)
				}
			case *tcell.EventResize:
				screen.Sync()
				w, h := screen.Size()
				if w != *width || h != *height {
					*width, *height = w, h
					return stop(actRerun)
				}
			}
		}
	}
}

// searchResult pairs a result with its fixed status prefix.
type searchResult struct {
	out    *search.Result
	status string
}

func statusLine(st setup, found bool, cost int) string {
	if !found {
		return fmt.Sprintf("%s %s→%s no path  [s]kip [r]eplay [q]uit", st.alg, st.start, st.target)
	}
	return fmt.Sprintf("%s %s→%s cost %d  [s]kip [r]eplay [q]uit", st.alg, st.start, st.target, cost)
}
