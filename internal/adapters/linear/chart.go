package linear

import (
	"math"
	"strconv"
	"strings"

	"go.trai.ch/curve/internal/core/domain"
)

const (
	cellEmpty = ' '
	cellAxisX = '-'
	cellAxisY = '|'
	cellCross = '+'
	cellPoint = '*'
)

// raster places the frame's points on a width x height character grid.
// Row 0 is the top of the window.
func raster(frame domain.Frame, width, height int) [][]rune {
	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(string(cellEmpty), width))
	}

	w := frame.Window
	col := func(x float64) int {
		return int(math.Round((x - w.XMin) / w.XSpan() * float64(width-1)))
	}
	row := func(y float64) int {
		return int(math.Round((w.YMax - y) / w.YSpan() * float64(height-1)))
	}

	if w.XMin <= 0 && w.XMax >= 0 {
		c := col(0)
		for r := range grid {
			grid[r][c] = cellAxisY
		}
	}
	if w.YMin <= 0 && w.YMax >= 0 {
		r := row(0)
		for c := range grid[r] {
			if grid[r][c] == cellAxisY {
				grid[r][c] = cellCross
			} else {
				grid[r][c] = cellAxisX
			}
		}
	}

	for i := range frame.X {
		x, y := frame.X[i], frame.Y[i]
		if x < w.XMin || x > w.XMax || y < w.YMin || y > w.YMax {
			continue
		}
		grid[row(y)][col(x)] = cellPoint
	}
	return grid
}

func (r *Renderer) writeChart(frame domain.Frame) error {
	grid := raster(frame, r.width, r.height)
	w := frame.Window

	top := label(w.YMax)
	bottom := label(w.YMin)
	gutter := max(len(top), len(bottom))

	point := r.output.String(string(cellPoint)).Foreground(r.output.Color(frame.Color)).String()

	var b strings.Builder
	b.WriteString("y = " + frame.Expression + "\n")
	for i, cells := range grid {
		name := ""
		switch i {
		case 0:
			name = top
		case len(grid) - 1:
			name = bottom
		}
		b.WriteString(strings.Repeat(" ", gutter-len(name)) + name + " |")
		b.WriteString(strings.ReplaceAll(string(cells), string(cellPoint), point))
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat(" ", gutter) + " +" + strings.Repeat("-", r.width) + "\n")

	left, right := label(w.XMin), label(w.XMax)
	gap := max(r.width-len(left)-len(right), 1)
	b.WriteString(strings.Repeat(" ", gutter+2) + left + strings.Repeat(" ", gap) + right + "\n")

	_, err := r.stdout.Write([]byte(b.String()))
	return err
}

func label(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
