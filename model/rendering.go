package model

import (
	"fmt"
	"io"
)

const (
	cellBlock = "██"
	cellEmpty = "· "
)

// TerminalRenderer writes board regions to a terminal
type TerminalRenderer struct {
	Out io.Writer
}

// Display renders the bounding box of the living population
func (r *TerminalRenderer) Display(b *Board) {
	min, max, ok := b.BoundingBox()
	if !ok {
		fmt.Fprintln(r.Out, "(empty board)")
		return
	}
	r.DisplayRegion(b, min, max)
}

// DisplayRegion renders the cells between min and max inclusive
func (r *TerminalRenderer) DisplayRegion(b *Board, min, max Cell) {
	for y := min.Y; y <= max.Y; y++ {
		for x := min.X; x <= max.X; x++ {
			if b.Get(x, y) {
				fmt.Fprint(r.Out, cellBlock)
			} else {
				fmt.Fprint(r.Out, cellEmpty)
			}
		}
		fmt.Fprintln(r.Out)
	}
}
