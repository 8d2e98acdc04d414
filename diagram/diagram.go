// Package diagram renders a lambda.Expr as a Tromp/"lambda diagram": a 2D
// grid of box-drawing characters where a Lambda is a horizontal line, a
// Variable is a vertical line running from the row it is reached at down to
// the bottom, and an Apply is a horizontal link joining its two subterms.
// Variable lines are not tied to their binders. See
// https://tromp.github.io/cl/diagrams.html. Not part of the reduction
// core; a visualization a REPL can offer alongside Eval/Unlambda.
package diagram

import (
	"fmt"
	"strings"

	"github.com/opencalc/lambda"
)

// Diagram is a fixed-size grid of runes.
type Diagram struct {
	Grid   [][]rune
	Width  int
	Height int
}

// New creates an empty diagram of the given dimensions.
func New(width, height int) *Diagram {
	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}
	return &Diagram{Grid: grid, Width: width, Height: height}
}

// Set writes ch at (row, col); out-of-bounds writes are silently dropped.
func (d *Diagram) Set(row, col int, ch rune) {
	if row >= 0 && row < d.Height && col >= 0 && col < d.Width {
		d.Grid[row][col] = ch
	}
}

// Get reads the rune at (row, col), or a space if out of bounds.
func (d *Diagram) Get(row, col int) rune {
	if row >= 0 && row < d.Height && col >= 0 && col < d.Width {
		return d.Grid[row][col]
	}
	return ' '
}

// ASCII renders the grid as newline-joined rows of box-drawing characters.
func (d *Diagram) ASCII() string {
	var sb strings.Builder
	for i, row := range d.Grid {
		for _, ch := range row {
			sb.WriteRune(ch)
		}
		if i < len(d.Grid)-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// SVG renders the grid as an SVG document of line segments.
func (d *Diagram) SVG() string {
	const cellWidth = 20
	const cellHeight = 20

	width := d.Width * cellWidth
	height := d.Height * cellHeight

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		width, height, width, height)
	sb.WriteString("\n")
	sb.WriteString(`<style>line{stroke:black;stroke-width:2;stroke-linecap:round;}</style>`)
	sb.WriteString("\n")

	for row := 0; row < d.Height; row++ {
		for col := 0; col < d.Width; col++ {
			ch := d.Grid[row][col]
			x := col*cellWidth + cellWidth/2
			y := row*cellHeight + cellHeight/2

			switch ch {
			case '─':
				x1, x2 := col*cellWidth, (col+1)*cellWidth
				fmt.Fprintf(&sb, `<line x1="%d" y1="%d" x2="%d" y2="%d"/>`, x1, y, x2, y)
				sb.WriteString("\n")
			case '│':
				y1, y2 := row*cellHeight, (row+1)*cellHeight
				fmt.Fprintf(&sb, `<line x1="%d" y1="%d" x2="%d" y2="%d"/>`, x, y1, x, y2)
				sb.WriteString("\n")
			}
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// drawState tracks the next free column while drawing.
type drawState struct {
	col int
}

// Of renders e as a Diagram. A Symbol leaf is drawn exactly like a
// Variable: one vertical line, with no binder line of its own.
func Of(e lambda.Expr) *Diagram {
	width, height := dimensions(e, 0)
	width += 2
	height += 2

	d := New(width, height)
	st := &drawState{col: 1}
	draw(d, e, st, 1)
	return d
}

func dimensions(e lambda.Expr, depth int) (width, height int) {
	switch t := e.(type) {
	case lambda.Variable, lambda.Symbol:
		return 2, depth + 1
	case lambda.Lambda:
		w, h := dimensions(t.Body, depth+1)
		return w + 2, max(h, depth+2)
	case lambda.Apply:
		w1, h1 := dimensions(t.Lhs, depth)
		w2, h2 := dimensions(t.Rhs, depth)
		return w1 + w2 + 2, max(h1, h2)
	default:
		return 4, depth + 1
	}
}

// draw places e into d starting at the given row, returning the column its
// leading edge occupies so a caller building an Apply can link two
// subterms together.
func draw(d *Diagram, e lambda.Expr, st *drawState, row int) int {
	switch t := e.(type) {
	case lambda.Variable, lambda.Symbol:
		col := st.col
		st.col += 2
		for r := row; r < d.Height-1; r++ {
			d.Set(r, col, '│')
		}
		return col

	case lambda.Lambda:
		startCol := st.col
		for c := startCol; c < startCol+4 && c < d.Width; c++ {
			d.Set(row, c, '─')
		}
		st.col = startCol + 1
		draw(d, t.Body, st, row+1)
		return startCol

	case lambda.Apply:
		lhsCol := draw(d, t.Lhs, st, row)
		rhsCol := draw(d, t.Rhs, st, row)
		if lhsCol < rhsCol {
			for c := lhsCol; c <= rhsCol; c++ {
				if d.Get(row, c) == ' ' {
					d.Set(row, c, '─')
				}
			}
		}
		return lhsCol

	default:
		return st.col
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
