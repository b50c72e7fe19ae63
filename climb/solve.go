package climb

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/terrain"
)

// Part is one answered question.
type Part struct {
	Number  int           // 1 for ModeStart, 2 for ModeLowest
	Mode    Mode          // ModeStart or ModeLowest
	Result  bfs.Result    // step count or unreachable
	Elapsed time.Duration // wall time of the search
}

// Report holds the answered parts in ascending Number order.
type Report struct {
	Parts []Part
}

// Part returns the part answered for m, if any.
func (r Report) Part(m Mode) (Part, bool) {
	for _, p := range r.Parts {
		if p.Mode == m {
			return p, true
		}
	}
	return Part{}, false
}

// Solve answers the questions selected by mode. ModeBoth runs both searches
// concurrently over the shared, read-only grid. A nil logger uses
// log.Default(). ctx is checked before each search starts; a running search
// is never interrupted.
func Solve(ctx context.Context, g *terrain.Grid, mode Mode, logger *log.Logger) (Report, error) {
	if logger == nil {
		logger = log.Default()
	}
	var modes []Mode
	switch mode {
	case ModeStart, ModeLowest:
		modes = []Mode{mode}
	case ModeBoth:
		modes = []Mode{ModeStart, ModeLowest}
	default:
		return Report{}, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}

	parts := make([]Part, len(modes))
	eg, ctx := errgroup.WithContext(ctx)
	for i, m := range modes {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sources, err := m.Sources(g)
			if err != nil {
				return err
			}
			logger.Debug("searching", "mode", m, "sources", len(sources), "goal", g.Goal())

			start := time.Now()
			res, err := bfs.Search(g, sources, g.Goal())
			if err != nil {
				return err
			}
			parts[i] = Part{Number: int(m), Mode: m, Result: res, Elapsed: time.Since(start)}
			logger.Debug("search done", "mode", m, "result", res, "explored", res.Explored,
				"elapsed", parts[i].Elapsed)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Report{}, err
	}
	return Report{Parts: parts}, nil
}
