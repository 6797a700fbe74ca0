package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"
	"sort"
)

// Cell identifies a single board coordinate
type Cell struct {
	X, Y int
}

// Board represents the game state as the set of living cell coordinates.
// Dead cells are simply absent, so memory and per-step cost track the
// population rather than the board area.
type Board struct {
	width  int
	height int
	living map[Cell]struct{}
}

// NewBoard creates an empty board with the specified dimensions
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		living: make(map[Cell]struct{}),
	}
}

// GetWidth returns the width of the board
func (b *Board) GetWidth() int {
	return b.width
}

// GetHeight returns the height of the board
func (b *Board) GetHeight() int {
	return b.height
}

// IsOnBoard reports whether the coordinate lies within the board bounds
func (b *Board) IsOnBoard(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Neighbors returns the on-board cells of the Moore neighborhood around
// (x, y). The cell itself is never included; off-board coordinates are
// computed and discarded.
func (b *Board) Neighbors(x, y int) []Cell {
	neighbors := make([]Cell, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue // Skip the cell itself
			}
			if b.IsOnBoard(x+dx, y+dy) {
				neighbors = append(neighbors, Cell{X: x + dx, Y: y + dy})
			}
		}
	}
	return neighbors
}

// LivingNeighborCount counts the living cells in the Moore neighborhood of (x, y)
func (b *Board) LivingNeighborCount(x, y int) (count int) {
	for _, n := range b.Neighbors(x, y) {
		if _, ok := b.living[n]; ok {
			count++
		}
	}
	return
}

// Get returns the state of a cell. Off-board coordinates are dead.
func (b *Board) Get(x, y int) bool {
	_, ok := b.living[Cell{X: x, Y: y}]
	return ok
}

// Set sets a cell to alive (true) or dead (false).
// Setting an off-board coordinate is a silent no-op, which keeps the
// living set inside the board bounds at all times.
func (b *Board) Set(x, y int, alive bool) {
	if !b.IsOnBoard(x, y) {
		return
	}
	if alive {
		b.living[Cell{X: x, Y: y}] = struct{}{}
	} else {
		delete(b.living, Cell{X: x, Y: y})
	}
}

// Population returns the number of living cells
func (b *Board) Population() int {
	return len(b.living)
}

// LivingCells returns the living coordinates sorted by row then column
func (b *Board) LivingCells() []Cell {
	cells := make([]Cell, 0, len(b.living))
	for c := range b.living {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	clone := NewBoard(b.width, b.height)
	for c := range b.living {
		clone.living[c] = struct{}{}
	}
	return clone
}

// Clear removes all living cells
func (b *Board) Clear() {
	b.living = make(map[Cell]struct{})
}

// Reset resets the board to new dimensions with no living cells
func (b *Board) Reset(width, height int) {
	b.width = width
	b.height = height
	b.living = make(map[Cell]struct{})
}

// BoundsOf returns the bounding box of a set of cells.
// ok is false when the set is empty.
func BoundsOf(cells []Cell) (min, max Cell, ok bool) {
	for _, c := range cells {
		if !ok {
			min, max, ok = c, c, true
			continue
		}
		if c.X < min.X {
			min.X = c.X
		}
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
	}
	return
}

// BoundingBox returns the extent of the living population
func (b *Board) BoundingBox() (min, max Cell, ok bool) {
	return BoundsOf(b.LivingCells())
}

// StateHash returns an md5 hash of the current living set
func (b *Board) StateHash() string {
	h := md5.New()
	for _, c := range b.LivingCells() {
		fmt.Fprintf(h, "%d,%d;", c.X, c.Y)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Randomize fills the board with random living cells
func (b *Board) Randomize(density float64) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.Set(x, y, rand.Float64() < density)
		}
	}
}

// AddGlider adds a glider pattern at the specified position
func (b *Board) AddGlider(startX, startY int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, row := range pattern {
		for x, alive := range row {
			if alive {
				b.Set(startX+x, startY+y, true)
			}
		}
	}
}

// AddOscillator adds a horizontal blinker at the specified position
func (b *Board) AddOscillator(startX, startY int) {
	b.Set(startX, startY, true)
	b.Set(startX+1, startY, true)
	b.Set(startX+2, startY, true)
}
