package compiler

// node is one vectorized operation of a compiled expression.
type node interface {
	eval(xs []float64) []complex128
}

type constNode struct {
	value complex128
}

func (n constNode) eval(xs []float64) []complex128 {
	out := make([]complex128, len(xs))
	for i := range out {
		out[i] = n.value
	}
	return out
}

type varNode struct{}

func (varNode) eval(xs []float64) []complex128 {
	out := make([]complex128, len(xs))
	for i, x := range xs {
		out[i] = complex(x, 0)
	}
	return out
}

type unaryNode struct {
	fn  unaryFunc
	arg node
}

func (n unaryNode) eval(xs []float64) []complex128 {
	out := n.arg.eval(xs)
	for i, v := range out {
		out[i] = n.fn(v)
	}
	return out
}

type binaryNode struct {
	fn          binaryFunc
	left, right node
}

func (n binaryNode) eval(xs []float64) []complex128 {
	out := n.left.eval(xs)
	right := n.right.eval(xs)
	for i := range out {
		out[i] = n.fn(out[i], right[i])
	}
	return out
}

func newUnary(fn unaryFunc, arg node) node {
	if c, ok := arg.(constNode); ok {
		return constNode{value: fn(c.value)}
	}
	return unaryNode{fn: fn, arg: arg}
}

func newBinary(fn binaryFunc, left, right node) node {
	l, lok := left.(constNode)
	r, rok := right.(constNode)
	if lok && rok {
		return constNode{value: fn(l.value, r.value)}
	}
	return binaryNode{fn: fn, left: left, right: right}
}
