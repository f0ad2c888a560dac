package compiler

import (
	"math"
	"math/cmplx"
)

type unaryFunc func(complex128) complex128

type binaryFunc func(a, b complex128) complex128

// function is a named callable with one or two argument forms.
type function struct {
	unary  unaryFunc
	binary binaryFunc
}

var functions = map[string]function{
	"sin":   {unary: lift(math.Sin, cmplx.Sin)},
	"cos":   {unary: lift(math.Cos, cmplx.Cos)},
	"tan":   {unary: lift(math.Tan, cmplx.Tan)},
	"sec":   {unary: lift(func(v float64) float64 { return 1 / math.Cos(v) }, func(z complex128) complex128 { return 1 / cmplx.Cos(z) })},
	"csc":   {unary: lift(func(v float64) float64 { return 1 / math.Sin(v) }, func(z complex128) complex128 { return 1 / cmplx.Sin(z) })},
	"cot":   {unary: lift(func(v float64) float64 { return 1 / math.Tan(v) }, cmplx.Cot)},
	"asin":  {unary: lift(math.Asin, cmplx.Asin)},
	"acos":  {unary: lift(math.Acos, cmplx.Acos)},
	"atan":  {unary: lift(math.Atan, cmplx.Atan), binary: liftReal2(math.Atan2)},
	"sinh":  {unary: lift(math.Sinh, cmplx.Sinh)},
	"cosh":  {unary: lift(math.Cosh, cmplx.Cosh)},
	"tanh":  {unary: lift(math.Tanh, cmplx.Tanh)},
	"asinh": {unary: lift(math.Asinh, cmplx.Asinh)},
	"acosh": {unary: lift(math.Acosh, cmplx.Acosh)},
	"atanh": {unary: lift(math.Atanh, cmplx.Atanh)},
	"exp":   {unary: lift(math.Exp, cmplx.Exp)},
	"log":   {unary: lift(math.Log, cmplx.Log), binary: logBase},
	"log10": {unary: lift(math.Log10, cmplx.Log10)},
	"log2":  {unary: lift(math.Log2, func(z complex128) complex128 { return cmplx.Log(z) / complex(math.Ln2, 0) })},
	"sqrt":  {unary: lift(math.Sqrt, cmplx.Sqrt)},
	"cbrt":  {unary: lift(math.Cbrt, func(z complex128) complex128 { return cmplx.Pow(z, complex(1.0/3, 0)) })},
	"abs":   {unary: absolute},
	"floor": {unary: liftReal(math.Floor)},
	"ceil":  {unary: liftReal(math.Ceil)},
	"round": {unary: liftReal(math.Round)},
	"sign":  {unary: sign},
	"atan2": {binary: liftReal2(math.Atan2)},
	"pow":   {binary: power},
	"root":  {binary: func(a, n complex128) complex128 { return power(a, div(1, n)) }},
	"mod":   {binary: modulo},
	"min":   {binary: liftReal2(math.Min)},
	"max":   {binary: liftReal2(math.Max)},
}

var aliases = map[string]string{
	"ln":     "log",
	"arcsin": "asin",
	"arccos": "acos",
	"arctan": "atan",
	"Abs":    "abs",
}

var constants = map[string]complex128{
	"pi": complex(math.Pi, 0),
	"e":  complex(math.E, 0),
	"E":  complex(math.E, 0),
	"I":  complex(0, 1),
}

// Variable is the only free symbol an expression may reference.
const Variable = "x"

func lookupFunction(name string) (function, bool) {
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	fn, ok := functions[name]
	return fn, ok
}

func isFunction(name string) bool {
	_, ok := lookupFunction(name)
	return ok
}

// lift evaluates real arguments with the real function so results match
// ordinary float semantics (sqrt(-1) is NaN), and falls back to the complex
// form once an imaginary part is present.
func lift(rf func(float64) float64, cf func(complex128) complex128) unaryFunc {
	return func(z complex128) complex128 {
		if imag(z) == 0 {
			return complex(rf(real(z)), 0)
		}
		return cf(z)
	}
}

func liftReal(rf func(float64) float64) unaryFunc {
	return func(z complex128) complex128 {
		if imag(z) != 0 {
			return cmplx.NaN()
		}
		return complex(rf(real(z)), 0)
	}
}

func liftReal2(rf func(a, b float64) float64) binaryFunc {
	return func(a, b complex128) complex128 {
		if imag(a) != 0 || imag(b) != 0 {
			return cmplx.NaN()
		}
		return complex(rf(real(a), real(b)), 0)
	}
}

func absolute(z complex128) complex128 {
	if imag(z) == 0 {
		return complex(math.Abs(real(z)), 0)
	}
	return complex(cmplx.Abs(z), 0)
}

func sign(z complex128) complex128 {
	if imag(z) == 0 {
		v := real(z)
		switch {
		case v > 0:
			return 1
		case v < 0:
			return -1
		case v == 0:
			return 0
		default:
			return cmplx.NaN()
		}
	}
	return z / complex(cmplx.Abs(z), 0)
}

func logBase(z, base complex128) complex128 {
	if imag(z) == 0 && imag(base) == 0 {
		return complex(math.Log(real(z))/math.Log(real(base)), 0)
	}
	return cmplx.Log(z) / cmplx.Log(base)
}

func add(a, b complex128) complex128 { return a + b }

func sub(a, b complex128) complex128 { return a - b }

func mul(a, b complex128) complex128 {
	if imag(a) == 0 && imag(b) == 0 {
		return complex(real(a)*real(b), 0)
	}
	return a * b
}

func div(a, b complex128) complex128 {
	if imag(a) == 0 && imag(b) == 0 {
		return complex(real(a)/real(b), 0)
	}
	return a / b
}

func power(a, b complex128) complex128 {
	if imag(a) == 0 && imag(b) == 0 {
		return complex(math.Pow(real(a), real(b)), 0)
	}
	return cmplx.Pow(a, b)
}

// modulo follows the sign of the divisor.
func modulo(a, b complex128) complex128 {
	if imag(a) != 0 || imag(b) != 0 {
		return cmplx.NaN()
	}
	x, y := real(a), real(b)
	if y == 0 {
		return cmplx.NaN()
	}
	return complex(x-y*math.Floor(x/y), 0)
}

func negate(z complex128) complex128 { return -z }

func identity(z complex128) complex128 { return z }
