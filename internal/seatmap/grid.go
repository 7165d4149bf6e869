// Package seatmap implements the in-memory seat layout and selection state
// used by the booking screen.  A grid is generated once per screen entry
// from the layout the seat service reports for a showtime and is never
// mutated afterwards; all availability and selection bookkeeping happens
// on top of it.
package seatmap

import (
	"errors"
	"fmt"
)

// rowAlphabet is the fixed set of row labels.  Layouts are capped at 26
// rows; anything larger is outside the contract of this package.
const rowAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Default layout used when the seat service does not report one.
const (
	DefaultRows = 8
	DefaultCols = 6
)

// ErrLayoutTooLarge is returned by Generate when the requested row count
// exceeds the row alphabet.  Callers should treat this as a bad layout
// from the seat service rather than truncate silently.
var ErrLayoutTooLarge = errors.New("seatmap: layout exceeds 26 rows")

// ErrLayoutInvalid is returned when rows or cols is not positive.
var ErrLayoutInvalid = errors.New("seatmap: rows and cols must be positive")

// Seat is a single seat in a generated grid.  Seats are immutable; their
// identity is the row letter joined with the 1-based seat number ("C4").
type Seat struct {
	ID     string `json:"id"`     // row letter + seat number, e.g. "C4"
	Row    string `json:"row"`    // single row letter
	Number int    `json:"number"` // 1-based position within the row
}

// Row is an ordered run of seats sharing one row letter.
type Row []Seat

// Grid is an ordered sequence of rows as produced by Generate.
type Grid []Row

// Generate builds a rectangular grid of rows×cols seats.  The same inputs
// always produce an identical grid, so it is safe to call on every render.
func Generate(rows, cols int) (Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrLayoutInvalid
	}
	if rows > len(rowAlphabet) {
		return nil, ErrLayoutTooLarge
	}
	g := make(Grid, 0, rows)
	for r := 0; r < rows; r++ {
		label := string(rowAlphabet[r])
		row := make(Row, 0, cols)
		for c := 1; c <= cols; c++ {
			row = append(row, Seat{
				ID:     fmt.Sprintf("%s%d", label, c),
				Row:    label,
				Number: c,
			})
		}
		g = append(g, row)
	}
	return g, nil
}

// Contains reports whether the given seat identity exists in the grid.
func (g Grid) Contains(seatID string) bool {
	for _, row := range g {
		for _, s := range row {
			if s.ID == seatID {
				return true
			}
		}
	}
	return false
}

// SplitColumns divides the grid into the two column groups the booking
// screen renders side by side: the first ceil(n/2) rows on the left and
// the remainder on the right.  Row order is preserved and no row is
// duplicated or dropped.
func SplitColumns(g Grid) (left, right Grid) {
	half := (len(g) + 1) / 2
	return g[:half], g[half:]
}
