package linear

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"go.trai.ch/curve/internal/core/domain"
)

// Document is the JSON form of a frame.
type Document struct {
	Expression string        `json:"expression"`
	Color      string        `json:"color"`
	Window     domain.Window `json:"window"`
	Points     [][2]float64  `json:"points"`
}

// NewDocument converts frame to its JSON form.
func NewDocument(frame domain.Frame) Document {
	points := make([][2]float64, frame.Len())
	for i := range points {
		points[i] = [2]float64{frame.X[i], frame.Y[i]}
	}
	return Document{
		Expression: frame.Expression,
		Color:      frame.Color,
		Window:     frame.Window,
		Points:     points,
	}
}

// WriteJSON writes frame as a single-line JSON document.
func WriteJSON(w io.Writer, frame domain.Frame) error {
	return json.NewEncoder(w).Encode(NewDocument(frame))
}

// WriteTable writes frame as aligned x/y columns.
func WriteTable(w io.Writer, frame domain.Frame) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "x\ty"); err != nil {
		return err
	}
	for i := range frame.X {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", number(frame.X[i]), number(frame.Y[i])); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}
