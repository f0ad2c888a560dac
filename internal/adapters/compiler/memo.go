package compiler

import "go.trai.ch/curve/internal/core/ports"

var _ ports.Compiler = (*Memo)(nil)

// Memo keeps the most recently compiled function. Identity is exact string
// equality of the expression text.
type Memo struct {
	inner    ports.Compiler
	source   string
	fn       ports.CompiledFunction
	onChange []func()
	compiles int
}

// NewMemo wraps inner with a single-entry cache.
func NewMemo(inner ports.Compiler) *Memo {
	return &Memo{inner: inner}
}

// OnChange registers fn to run after every successful recompile.
func (m *Memo) OnChange(fn func()) {
	m.onChange = append(m.onChange, fn)
}

// Compile returns the cached function when expr matches the last successful
// compile. A failed compile leaves the cached entry in place.
func (m *Memo) Compile(expr string) (ports.CompiledFunction, error) {
	if m.fn != nil && m.source == expr {
		return m.fn, nil
	}

	fn, err := m.inner.Compile(expr)
	if err != nil {
		return nil, err
	}

	m.source = expr
	m.fn = fn
	m.compiles++

	for _, hook := range m.onChange {
		hook()
	}
	return fn, nil
}

// Compiles returns how many times the inner compiler produced a new function.
func (m *Memo) Compiles() int {
	return m.compiles
}
