package domain

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Frame is one finished render: the filtered points, the resolved color and
// the window they should be drawn into.
type Frame struct {
	Expression string
	X          []float64
	Y          []float64
	Color      string
	Window     Window
	// Full is set when the frame came from a full recomputation rather than
	// the cache-reusing path.
	Full bool
}

// Len returns the number of points in the frame.
func (f *Frame) Len() int {
	return len(f.X)
}

// Fingerprint hashes everything that affects how the frame looks.
// Two frames with the same fingerprint rasterize identically.
func (f *Frame) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte

	write := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}

	write(f.Window.XMin)
	write(f.Window.XMax)
	write(f.Window.YMin)
	write(f.Window.YMax)
	_, _ = d.WriteString(f.Expression)
	_, _ = d.WriteString(f.Color)

	binary.LittleEndian.PutUint64(buf[:], uint64(len(f.X)))
	_, _ = d.Write(buf[:])
	for i := range f.X {
		write(f.X[i])
		write(f.Y[i])
	}
	return d.Sum64()
}
