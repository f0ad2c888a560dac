// Package resolver narrows a requested x-interval to where an expression is
// likely to be defined.
package resolver

import (
	"math"
	"strings"

	"go.trai.ch/curve/internal/core/ports"
)

var _ ports.DomainResolver = (*Resolver)(nil)

type family int

const (
	familyNone family = iota
	familyLog
	familySqrt
	familyArcsine
	familyOpen
)

// Resolver applies textual domain heuristics. It does not inspect the parse
// tree, so "log(" inside any subexpression restricts the whole curve.
type Resolver struct {
	epsilon float64
}

// New creates a Resolver whose logarithm lower bound is epsilon.
func New(epsilon float64) *Resolver {
	return &Resolver{epsilon: epsilon}
}

// Restrict returns the sub-interval of [xMin, xMax] that is sampled for expr.
// When the restriction leaves nothing, a family specific fallback interval is
// returned instead.
func (r *Resolver) Restrict(expr string, xMin, xMax float64) (float64, float64) {
	lo, hi := xMin, xMax
	fam := classify(expr)

	switch fam {
	case familyLog:
		lo = math.Max(lo, r.epsilon)
	case familySqrt:
		lo = math.Max(lo, 0)
	case familyArcsine:
		lo = math.Max(lo, -1)
		hi = math.Min(hi, 1)
	}

	if lo < hi {
		return lo, hi
	}

	switch fam {
	case familyLog:
		return r.epsilon, math.Max(10, xMax)
	case familySqrt:
		return 0, math.Max(10, xMax)
	case familyArcsine:
		return -1, 1
	default:
		return 0, math.Max(1, xMax)
	}
}

// Call spellings per family, covering every alias the compiler accepts.
var (
	logCalls     = []string{"log(", "ln(", "log10(", "log2("}
	sqrtCalls    = []string{"sqrt("}
	arcsineCalls = []string{"asin(", "acos(", "arcsin(", "arccos("}
	openCalls    = []string{"atan(", "arctan(", "/x"}
)

// classify picks the first matching family. A logarithm takes precedence
// over sqrt when both appear.
func classify(expr string) family {
	s := strings.ReplaceAll(strings.ToLower(expr), " ", "")

	switch {
	case containsAny(s, logCalls):
		return familyLog
	case containsAny(s, sqrtCalls):
		return familySqrt
	case containsAny(s, arcsineCalls):
		return familyArcsine
	case containsAny(s, openCalls):
		return familyOpen
	}
	return familyNone
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
