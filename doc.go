// Package wfc synthesizes a 2D grid of cells whose local neighborhoods
// are statistically consistent with an example, using Wave Function
// Collapse.
//
// 🧩 What is this?
//
//	A constraint solver (the wave) coupled to two model adapters that
//	feed it and decode its result:
//		• overlapping — learns a pattern catalog and compatibility table
//		  from a sample image
//		• tiled — takes an explicit tile set with labeled sides
//
// Under the hood, everything is organized under these subpackages:
//
//	direction/  — the four cardinal directions and ByDirection[T]
//	d4/         — the dihedral group of order 8 (symmetry algebra)
//	grid/       — the generic 2D array container
//	pattern/    — the immutable pattern catalog
//	wave/       — the constraint solver: wave state, propagator, entropy
//	              queue, run loop
//	overlapping/ — the exemplar-driven model adapter
//	tiled/      — the explicit-tile-set model adapter
//	wfcconfig/  — YAML-driven option loading for both model adapters
//
// Both model adapters expose the same shape:
//
//	model, err := overlapping.New(exemplar, opts)
//	out, err := model.Next(nil)           // one run, nil seed draws from the master RNG
//	outs, err := model.NextParallel(ctx, 8) // k independent runs
//
// A run either decodes a finished grid or returns wave.ErrContradiction
// — a legitimate, expected outcome the caller is expected to retry with
// a fresh seed, not a bug.
package wfc
