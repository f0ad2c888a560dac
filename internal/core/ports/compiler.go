package ports

//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks

// CompiledFunction is a vectorized evaluator of a single-variable expression.
type CompiledFunction interface {
	// Eval evaluates the expression at every x and returns a slice of the same length.
	Eval(xs []float64) []complex128
	// Source returns the expression text the function was compiled from.
	Source() string
}

// Compiler turns expression text into a CompiledFunction.
type Compiler interface {
	// Compile parses expr. It fails with domain.ErrInvalidExpression when expr is
	// not a valid single-variable expression.
	Compile(expr string) (CompiledFunction, error)
}
