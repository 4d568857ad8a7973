package wave

import (
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/hollow-tiles/wfc/direction"
)

const directionCount = 4

// Wave is the mutable solver state over a W×H grid of cells, each
// holding a bitmap of still-allowed patterns plus the aggregates
// (pSum, plogpSum, count) and support counters described in spec.md
// section 3. A Wave is created from an immutable catalog and
// compatibility table (shared, read-only, across every wave built from
// the same model) and is exclusively owned by one goroutine for the
// duration of a run — see spec.md section 5, "Scheduling model".
type Wave struct {
	width, height, n int
	wrap             WrapMode
	compat           *Compatibility
	p, plogp         []float64

	allowed  *bitset
	support  []int32
	plogpSum []float64
	pSum     []float64
	count    []int32
	noise    []float64

	queue   *entropyQueue
	propQ   []banEvent
	dirty   []bool
	dirtyLs []int

	contradiction bool
	rng           *rand.Rand
	cdf           []float64
	runID         uuid.UUID

	minAbsPLogP float64
}

type banEvent struct {
	flat int
	pat  PatternID
}

// New allocates a wave over a width×height grid for a catalog described
// by p (frequencies) and plogp (precomputed p*ln(p)), compatible per
// compat, wrapping per wrap, and seeded from seed. Validation mirrors
// spec.md section 7 "Configuration error": invalid size or an empty
// catalog are reported before any allocation; allocation size beyond the
// int32 support-counter budget (spec.md section 5, "Resource policy")
// reports ErrTooLarge instead of risking an out-of-memory panic deep in
// a propagation cascade.
func New(width, height int, compat *Compatibility, p, plogp []float64, wrap WrapMode, seed uint64) (*Wave, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidWaveSize
	}
	n := len(p)
	if n == 0 {
		return nil, ErrNoPatterns
	}
	if n != len(plogp) || n != compat.Size() {
		return nil, ErrNoPatterns
	}
	cells := int64(width) * int64(height)
	if cells*int64(n) > int64(math.MaxInt32)/int64(directionCount) {
		return nil, ErrTooLarge
	}

	w := &Wave{
		width: width, height: height, n: n,
		wrap: wrap, compat: compat,
		p: p, plogp: plogp,
		allowed:  newBitset(int(cells) * n),
		support:  make([]int32, int(cells)*n*directionCount),
		plogpSum: make([]float64, cells),
		pSum:     make([]float64, cells),
		count:    make([]int32, cells),
		noise:    make([]float64, cells),
		dirty:    make([]bool, cells),
		queue:    newEntropyQueue(int(cells)),
		rng:      rngFromSeed(seed),
		cdf:      make([]float64, n),
		runID:    uuid.New(),
	}
	w.minAbsPLogP = minNonZeroAbs(plogp)
	w.initState()
	return w, nil
}

func minNonZeroAbs(plogp []float64) float64 {
	min := math.Inf(1)
	for _, v := range plogp {
		if v == 0 {
			continue
		}
		if a := math.Abs(v); a < min {
			min = a
		}
	}
	if math.IsInf(min, 1) {
		return 1e-9
	}
	return min
}

// RunID identifies this wave instance in logs, distinguishing concurrent
// runs spawned by NextParallel from each other.
func (w *Wave) RunID() uuid.UUID { return w.runID }

func (w *Wave) flat(x, y int) int { return y*w.width + x }

func (w *Wave) allowedIdx(flat int, i PatternID) int { return flat*w.n + int(i) }

func (w *Wave) supportIdx(flat int, i PatternID, d direction.Direction) int {
	return (flat*w.n+int(i))*directionCount + int(d)
}

// neighbor returns the cell at (x,y)+offset(d) under the wave's wrapping
// rule, or ok=false if that step leaves the grid on a non-wrapping axis.
func (w *Wave) neighbor(x, y int, d direction.Direction) (nx, ny int, ok bool) {
	nx, ny = x+d.DX(), y+d.DY()
	if nx < 0 || nx >= w.width {
		if !w.wrap.HasX() {
			return 0, 0, false
		}
		nx = ((nx % w.width) + w.width) % w.width
	}
	if ny < 0 || ny >= w.height {
		if !w.wrap.HasY() {
			return 0, 0, false
		}
		ny = ((ny % w.height) + w.height) % w.height
	}
	return nx, ny, true
}

// initState resets every field to the fresh-wave state described in
// spec.md section 4.1 "Construction": every pattern allowed everywhere,
// support seeded from the compatibility table, fresh noise, and every
// cell pushed into the entropy queue. Shared by New and Reset.
func (w *Wave) initState() {
	cells := w.width * w.height
	w.allowed.SetAll()
	w.contradiction = false
	w.propQ = w.propQ[:0]
	w.dirtyLs = w.dirtyLs[:0]
	for i := range w.dirty {
		w.dirty[i] = false
	}

	plogpTotal := 0.0
	for _, v := range w.plogp {
		plogpTotal += v
	}

	w.queue = newEntropyQueue(cells)
	for flat := 0; flat < cells; flat++ {
		w.plogpSum[flat] = plogpTotal
		w.pSum[flat] = 1
		w.count[flat] = int32(w.n)
		w.noise[flat] = 0.49 * w.minAbsPLogP * w.rng.Float64()
		for i := 0; i < w.n; i++ {
			pid := PatternID(i)
			for _, d := range direction.Values() {
				w.support[w.supportIdx(flat, pid, d)] = int32(len(w.compat.Allowed(pid, direction.Opposite(d))))
			}
		}
		if w.n >= 2 {
			w.queue.Insert(flat, w.computeEntropy(flat), w.noise[flat])
		}
	}
}

// Reset returns a Terminal wave to Fresh: every allowed bit set,
// supports rebuilt, a fresh noise draw per cell, and the entropy queue
// rebuilt. It continues drawing from this wave's own RNG rather than
// reseeding from the value passed to New — spec.md's design notes flag
// both choices as acceptable and ask only that the choice be documented,
// not conflated; see DESIGN.md for the recorded decision.
func (w *Wave) Reset() {
	w.initState()
}

func (w *Wave) computeEntropy(flat int) float64 {
	pSum := w.pSum[flat]
	if pSum <= 0 {
		return math.Inf(1)
	}
	return math.Log(pSum) - w.plogpSum[flat]/pSum + w.noise[flat]
}

// ban marks pattern i disallowed at flat cell, if it was not already,
// updating the cell's aggregates and queuing it for propagation and for
// an entropy-memo flush. Calling ban twice on an already-banned pattern
// is a no-op, which is what gives Collapse's "ban everything else" loop
// and Propagate's cascade their idempotence (spec.md section 8,
// invariant 6).
func (w *Wave) ban(flat int, i PatternID) {
	idx := w.allowedIdx(flat, i)
	if !w.allowed.Get(idx) {
		return
	}
	w.allowed.Clear(idx)
	for _, d := range direction.Values() {
		w.support[w.supportIdx(flat, i, d)] = 0
	}
	w.plogpSum[flat] -= w.plogp[i]
	w.pSum[flat] -= w.p[i]
	w.count[flat]--
	if w.count[flat] == 0 {
		w.contradiction = true
	}
	w.propQ = append(w.propQ, banEvent{flat: flat, pat: i})
	w.markDirty(flat)
}

func (w *Wave) markDirty(flat int) {
	if w.dirty[flat] {
		return
	}
	w.dirty[flat] = true
	w.dirtyLs = append(w.dirtyLs, flat)
}

// Collapse commits flat to pattern i: every other still-allowed pattern
// at that cell is banned and the cell is removed from the entropy queue
// immediately (it is decided; it must never be picked again even before
// the post-propagation flush runs).
func (w *Wave) Collapse(flat int, i PatternID) {
	for k := 0; k < w.n; k++ {
		pid := PatternID(k)
		if pid == i {
			continue
		}
		if w.allowed.Get(w.allowedIdx(flat, pid)) {
			w.ban(flat, pid)
		}
	}
	w.queue.Remove(flat)
}

// Propagate drains the propagation queue, cascading bans implied by
// arc-consistency (spec.md section 4.1), then flushes every dirty cell's
// entropy memo: removed from the queue if it is now decided or
// contradictory, re-keyed otherwise.
func (w *Wave) Propagate() {
	for len(w.propQ) > 0 {
		ev := w.propQ[0]
		w.propQ = w.propQ[1:]

		x, y := ev.flat%w.width, ev.flat/w.width
		for _, d := range direction.Values() {
			nx, ny, ok := w.neighbor(x, y, d)
			if !ok {
				continue
			}
			nflat := w.flat(nx, ny)
			for _, j := range w.compat.Allowed(ev.pat, d) {
				idx := w.supportIdx(nflat, j, d)
				if w.support[idx] <= 0 {
					continue
				}
				w.support[idx]--
				if w.support[idx] == 0 {
					w.ban(nflat, j)
				}
			}
		}
	}

	for _, flat := range w.dirtyLs {
		w.dirty[flat] = false
		if w.count[flat] <= 1 {
			w.queue.Remove(flat)
			continue
		}
		e := w.computeEntropy(flat)
		if w.queue.Contains(flat) {
			w.queue.Update(flat, e, w.noise[flat])
		} else {
			w.queue.Insert(flat, e, w.noise[flat])
		}
	}
	w.dirtyLs = w.dirtyLs[:0]
}

// PickCell returns the flat index of the lowest-entropy undecided cell,
// per spec.md's pick_cell: ties break on the cell's noise and then on
// flat index, both folded into the entropy queue's ordering already, so
// peeking the queue's minimum is sufficient. PickCell does not mutate
// the queue; Collapse (called from ObserveOnce once a pattern has been
// sampled) is what removes the cell.
func (w *Wave) PickCell() (flat int, status Status) {
	if w.contradiction {
		return 0, Contradiction
	}
	flat, ok := w.queue.Peek()
	if !ok {
		return 0, Finished
	}
	return flat, Unfinished
}

// Peek exposes the queue's current minimum without popping it.
func (q *entropyQueue) Peek() (int, bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	return q.items[0].flat, true
}

// SamplePatternAt draws a pattern for flat by weighted sampling over its
// remaining allowed patterns' frequencies, per spec.md's
// sample_pattern_at: builds the cumulative distribution into the wave's
// scratch buffer, draws uniformly in [0, total), and returns the first
// pattern whose cumulative weight exceeds the draw (falling back to the
// last allowed pattern on floating-point underflow).
func (w *Wave) SamplePatternAt(flat int) PatternID {
	cum := 0.0
	last := PatternID(-1)
	for i := 0; i < w.n; i++ {
		pid := PatternID(i)
		if !w.allowed.Get(w.allowedIdx(flat, pid)) {
			w.cdf[i] = cum
			continue
		}
		cum += w.p[pid]
		w.cdf[i] = cum
		last = pid
	}
	if cum <= 0 || last < 0 {
		return last
	}
	r := w.rng.Float64() * cum
	for i := 0; i < w.n; i++ {
		pid := PatternID(i)
		if w.allowed.Get(w.allowedIdx(flat, pid)) && w.cdf[i] > r {
			return pid
		}
	}
	return last
}

// ObserveOnce performs one pick→sample→collapse→propagate step, per
// spec.md's observe_once.
func (w *Wave) ObserveOnce() Status {
	flat, status := w.PickCell()
	if status != Unfinished {
		return status
	}
	pid := w.SamplePatternAt(flat)
	w.Collapse(flat, pid)
	w.Propagate()
	if w.contradiction {
		return Contradiction
	}
	if w.queue.Empty() {
		return Finished
	}
	return Unfinished
}

// Probe returns the unique still-allowed pattern at (x,y). Call only
// after a run reached Finished; if more than one pattern is still
// allowed (a logic error, or a call before completion) the lowest ID is
// returned as a deterministic fallback, matching spec.md's
// "first-set-bit fallback on garbage".
func (w *Wave) Probe(x, y int) PatternID {
	flat := w.flat(x, y)
	for i := 0; i < w.n; i++ {
		pid := PatternID(i)
		if w.allowed.Get(w.allowedIdx(flat, pid)) {
			return pid
		}
	}
	return PatternID(0)
}

// Width returns the wave's cell-grid width.
func (w *Wave) Width() int { return w.width }

// Height returns the wave's cell-grid height.
func (w *Wave) Height() int { return w.height }

// IsFinished reports whether every cell has been decided with no
// contradiction.
func (w *Wave) IsFinished() bool {
	return !w.contradiction && w.queue.Empty()
}

// Contradiction reports whether any cell has reached zero allowed
// patterns during this run.
func (w *Wave) Contradiction() bool { return w.contradiction }
