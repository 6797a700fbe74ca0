package sim

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// CandidateCells returns every living cell together with its on-board
// neighbors. These are exactly the cells whose state can change in one
// step: a dead cell with no living neighbor stays dead.
func CandidateCells(b *model.Board) []model.Cell {
	seen := make(map[model.Cell]struct{})
	for _, c := range b.LivingCells() {
		seen[c] = struct{}{}
		for _, n := range b.Neighbors(c.X, c.Y) {
			seen[n] = struct{}{}
		}
	}

	candidates := make([]model.Cell, 0, len(seen))
	for c := range seen {
		candidates = append(candidates, c)
	}
	return candidates
}

// StepCell applies the life rule to a single cell, reading neighbor counts
// from the given board, and returns a board differing at most at that cell
func StepCell(b *model.Board, x, y int) *model.Board {
	next := b.Clone()
	next.Set(x, y, rules.ApplyConwayRules(b.LivingNeighborCount(x, y), b.Get(x, y)))
	return next
}

// Step advances the board by one generation. Every candidate is decided
// against the pre-step board before any change is applied, so the result
// does not depend on candidate iteration order.
func Step(b *model.Board, config utils.Config, pool *model.BoardPool) *model.Board {
	if config.UseParallel {
		return stepParallel(b, pool)
	}
	return stepSerial(b, pool)
}

func stepSerial(b *model.Board, pool *model.BoardPool) *model.Board {
	next := nextBoard(b, pool)
	for _, c := range CandidateCells(b) {
		if rules.ApplyConwayRules(b.LivingNeighborCount(c.X, c.Y), b.Get(c.X, c.Y)) {
			next.Set(c.X, c.Y, true)
		}
	}
	return next
}

func stepParallel(b *model.Board, pool *model.BoardPool) *model.Board {
	var (
		candidates = CandidateCells(b)
		next       = nextBoard(b, pool)

		eg               errgroup.Group
		numWorkers       = runtime.NumCPU()
		cellsPerWorker   = (len(candidates) + numWorkers - 1) / numWorkers // Ceiling division
		survivorsByShard = make([][]model.Cell, numWorkers)
	)

	for i := 0; i < numWorkers; i++ {
		var (
			shard = i
			start = i * cellsPerWorker
			end   = min(start+cellsPerWorker, len(candidates))
		)
		if start >= len(candidates) {
			break
		}

		eg.Go(func() error {
			var survivors []model.Cell
			for _, c := range candidates[start:end] {
				if rules.ApplyConwayRules(b.LivingNeighborCount(c.X, c.Y), b.Get(c.X, c.Y)) {
					survivors = append(survivors, c)
				}
			}
			survivorsByShard[shard] = survivors
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		fmt.Printf("Error in parallel processing: %v\n", err)
	}

	// The board map is not safe for concurrent writes, so the shards are
	// merged here after the workers have joined.
	for _, survivors := range survivorsByShard {
		for _, c := range survivors {
			next.Set(c.X, c.Y, true)
		}
	}
	return next
}

// Run applies Step exactly n times. A zero count returns the board
// unchanged; a negative count is a contract violation and fails fast.
func Run(b *model.Board, n int, config utils.Config, pool *model.BoardPool) (*model.Board, error) {
	if n < 0 {
		return nil, errors.Errorf("[Run] generation count must be non-negative, got: %+v", n)
	}

	cur := b
	for i := 0; i < n; i++ {
		next := Step(cur, config, pool)
		// Only intermediate boards go back to the pool. The caller still
		// owns the board it passed in.
		if cur != b {
			model.BoardToPool(cur, pool)
		}
		cur = next
	}
	return cur, nil
}

func nextBoard(b *model.Board, pool *model.BoardPool) *model.Board {
	if pool != nil {
		return pool.Get(b.GetWidth(), b.GetHeight())
	}
	return model.NewBoard(b.GetWidth(), b.GetHeight())
}
