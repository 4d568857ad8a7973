package wave

import (
	"context"
	"errors"
	"log"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/hollow-tiles/wfc/grid"
	"github.com/hollow-tiles/wfc/pattern"
)

// decoder is the shared contract both model adapters (overlapping.Model,
// tiled.Model) satisfy so Runner's run loop can be written once instead
// of per adapter — the Go-native stand-in for the C++ Model<CellType>
// base class both OverlappingModel and TiledModel inherit from in
// original_source/src/Model.h. It is unexported: external packages
// never reference it by name, they just happen to implement it, the way
// gridgraph.GridGraph.ToCoreGraph's callers never name core's internal
// contracts either.
//
// Pat is the pattern catalog's payload type (an S×S window for
// Overlapping, a T×T tile image for Tiled); Cell is the element type of
// the decoded output grid. The two differ in both adapters — a pattern
// is a whole window, the output is a grid of its individual cells — so
// Runner is generic over both rather than conflating them into one type
// parameter.
type decoder[Pat, Cell any] interface {
	// WaveSize returns the wave's cell-grid dimensions for this run.
	WaveSize() (width, height int)
	// OutputWrapping returns the wrapping mode to propagate the wave under.
	OutputWrapping() WrapMode
	// Decode turns a Finished wave into the model's output grid.
	Decode(w *Wave) (*grid.Grid[Cell], error)
}

// Runner owns the pieces every model adapter's run loop shares: the
// immutable catalog and compatibility table (read-shared by every wave
// built from them), the master RNG that derives child seeds for
// spawned waves, and the adapter-supplied decoder. Overlapping and
// Tiled models each embed a *Runner and expose Next/NextParallel by
// forwarding to it — see SPEC_FULL.md section 6, "Runner sharing".
type Runner[Pat, Cell any] struct {
	catalog *pattern.Catalog[Pat]
	compat  *Compatibility
	master  *rand.Rand
	dec     decoder[Pat, Cell]
}

// NewRunner builds a Runner sharing catalog and compat read-only with
// every wave it spawns, seeded from masterSeed.
func NewRunner[Pat, Cell any](catalog *pattern.Catalog[Pat], compat *Compatibility, masterSeed uint64, dec decoder[Pat, Cell]) *Runner[Pat, Cell] {
	return &Runner[Pat, Cell]{
		catalog: catalog,
		compat:  compat,
		master:  rngFromSeed(masterSeed),
		dec:     dec,
	}
}

// nextChildSeed advances the master RNG once and derives a child seed
// from the draw, per spec.md section 5: "the master RNG advances once
// per spawned wave, yielding a reproducible sequence of child seeds."
func (r *Runner[Pat, Cell]) nextChildSeed() uint64 {
	return deriveSeed(uint64(r.master.Int63()), 0)
}

func (r *Runner[Pat, Cell]) freqs() (p, plogp []float64) {
	n := r.catalog.Size()
	p = make([]float64, n)
	plogp = make([]float64, n)
	for i := 0; i < n; i++ {
		id := pattern.ID(i)
		p[i] = r.catalog.P(id)
		plogp[i] = r.catalog.PLogP(id)
	}
	return p, plogp
}

// Next runs one wave to completion: if seed is non-nil it is used
// verbatim (no master-RNG draw consumed, matching spec.md section 6's
// `next(seed?)` letting a caller pin a specific run); otherwise a child
// seed is derived from the master RNG. Returns (nil, ErrContradiction)
// on contradiction rather than a panic or a bare nil — spec.md section 6
// calls this out explicitly as a legitimate, expected outcome.
func (r *Runner[Pat, Cell]) Next(seed *uint64) (*grid.Grid[Cell], error) {
	var s uint64
	if seed != nil {
		s = *seed
	} else {
		s = r.nextChildSeed()
	}

	width, height := r.dec.WaveSize()
	p, plogp := r.freqs()
	w, err := New(width, height, r.compat, p, plogp, r.dec.OutputWrapping(), s)
	if err != nil {
		return nil, err
	}

	for {
		switch w.ObserveOnce() {
		case Finished:
			out, err := r.dec.Decode(w)
			if err != nil {
				return nil, err
			}
			log.Printf("wfc: run %s finished (seed=%d)", w.RunID(), s)
			return out, nil
		case Contradiction:
			log.Printf("wfc: run %s contradiction (seed=%d)", w.RunID(), s)
			return nil, ErrContradiction
		}
	}
}

// NextParallel launches k independent runs with child seeds derived
// sequentially from the master RNG before any goroutine starts, so the
// resulting seed sequence — and therefore the multiset of outputs — does
// not depend on goroutine scheduling (spec.md section 5, "Ordering";
// section 8, scenario S5). Runs sharing a single *errgroup.Group is
// grounded on golang.org/x/sync/errgroup, carried from the retrieval
// pack's s53zo-GoCluster dependency for exactly this bounded-fan-out
// shape. A run that contradicts is dropped, not treated as a group
// failure; only a genuine error (e.g. resource exhaustion) aborts the
// whole batch.
func (r *Runner[Pat, Cell]) NextParallel(ctx context.Context, k int) ([]*grid.Grid[Cell], error) {
	if k <= 0 {
		return nil, nil
	}
	seeds := make([]uint64, k)
	for i := range seeds {
		seeds[i] = r.nextChildSeed()
	}

	results := make([]*grid.Grid[Cell], k)
	g, _ := errgroup.WithContext(ctx)
	for i := 0; i < k; i++ {
		i := i
		g.Go(func() error {
			out, err := r.Next(&seeds[i])
			if err != nil {
				if errors.Is(err, ErrContradiction) {
					return nil
				}
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*grid.Grid[Cell], 0, k)
	for _, res := range results {
		if res != nil {
			out = append(out, res)
		}
	}
	return out, nil
}
