package model

import (
	"bytes"
	"strings"
	"testing"
)

func TestDisplayEmptyBoard(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}

	r.Display(NewBoard(5, 5))
	if !strings.Contains(buf.String(), "(empty board)") {
		t.Errorf("expected empty-board message, got %q", buf.String())
	}
}

func TestDisplayRegion(t *testing.T) {
	b := NewBoard(5, 5)
	b.Set(1, 2, true)
	b.Set(2, 2, true)
	b.Set(3, 2, true)

	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	r.DisplayRegion(b, Cell{X: 1, Y: 2}, Cell{X: 3, Y: 2})

	want := cellBlock + cellBlock + cellBlock + "\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestDisplayUsesLivingBounds(t *testing.T) {
	b := NewBoard(10, 10)
	b.Set(4, 4, true)

	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	r.Display(b)

	want := cellBlock + "\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}
