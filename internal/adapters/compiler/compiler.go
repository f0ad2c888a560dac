// Package compiler turns expression text into vectorized numeric evaluators.
package compiler

import (
	"errors"
	"strings"

	"github.com/expr-lang/expr/parser"
	"go.trai.ch/curve/internal/core/domain"
	"go.trai.ch/curve/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Compiler = (*Compiler)(nil)

// Compiler parses expressions in x with the expr-lang parser and lowers the
// parse tree into complex-valued kernels.
type Compiler struct{}

// New creates a new Compiler.
func New() *Compiler {
	return &Compiler{}
}

// Compile parses expr into a CompiledFunction.
func (c *Compiler) Compile(expr string) (ports.CompiledFunction, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, invalid(expr, "empty expression", "")
	}

	tree, err := parser.Parse(normalize(expr))
	if err != nil {
		return nil, invalid(expr, "syntax error", firstLine(err.Error()))
	}

	root, err := lower(tree.Node)
	if err != nil {
		var le *lowerError
		if errors.As(err, &le) {
			return nil, invalid(expr, le.reason, le.token)
		}
		return nil, invalid(expr, err.Error(), "")
	}

	return &Function{source: expr, root: root}, nil
}

func invalid(expr, reason, tok string) error {
	err := zerr.Wrap(domain.ErrInvalidExpression, reason)
	err = zerr.With(err, "expression", expr)
	if tok != "" {
		err = zerr.With(err, "token", tok)
	}
	return err
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// Function is a compiled expression.
type Function struct {
	source string
	root   node
}

// Eval evaluates the expression at every x.
func (f *Function) Eval(xs []float64) []complex128 {
	return f.root.eval(xs)
}

// Source returns the expression text.
func (f *Function) Source() string {
	return f.source
}
