package compiler

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr/ast"
)

var binaryOperators = map[string]binaryFunc{
	"+":  add,
	"-":  sub,
	"*":  mul,
	"/":  div,
	"%":  modulo,
	"**": power,
	"^":  power,
}

// lowerError describes why a parse tree does not form a plottable expression.
type lowerError struct {
	reason string
	token  string
}

func (e *lowerError) Error() string {
	return fmt.Sprintf("%s: %s", e.reason, e.token)
}

func lower(n ast.Node) (node, error) {
	switch n := n.(type) {
	case *ast.IntegerNode:
		return constNode{value: complex(float64(n.Value), 0)}, nil
	case *ast.FloatNode:
		return constNode{value: complex(n.Value, 0)}, nil
	case *ast.ConstantNode:
		switch v := n.Value.(type) {
		case int:
			return constNode{value: complex(float64(v), 0)}, nil
		case float64:
			return constNode{value: complex(v, 0)}, nil
		}
		return nil, &lowerError{reason: "unsupported constant", token: fmt.Sprint(n.Value)}
	case *ast.IdentifierNode:
		return lowerIdentifier(n.Value)
	case *ast.UnaryNode:
		arg, err := lower(n.Node)
		if err != nil {
			return nil, err
		}
		switch n.Operator {
		case "-":
			return newUnary(negate, arg), nil
		case "+":
			return newUnary(identity, arg), nil
		}
		return nil, &lowerError{reason: "unsupported operator", token: n.Operator}
	case *ast.BinaryNode:
		fn, ok := binaryOperators[n.Operator]
		if !ok {
			return nil, &lowerError{reason: "unsupported operator", token: n.Operator}
		}
		left, err := lower(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := lower(n.Right)
		if err != nil {
			return nil, err
		}
		return newBinary(fn, left, right), nil
	case *ast.CallNode:
		ident, ok := n.Callee.(*ast.IdentifierNode)
		if !ok {
			return nil, &lowerError{reason: "unsupported call", token: n.Callee.String()}
		}
		return lowerCall(ident.Value, n.Arguments)
	case *ast.BuiltinNode:
		return lowerCall(n.Name, n.Arguments)
	}
	return nil, &lowerError{reason: "unsupported construct", token: strings.TrimSpace(n.String())}
}

func lowerIdentifier(name string) (node, error) {
	if name == Variable {
		return varNode{}, nil
	}
	if v, ok := constants[name]; ok {
		return constNode{value: v}, nil
	}
	if isFunction(name) {
		return nil, &lowerError{reason: "function used without arguments", token: name}
	}
	return nil, &lowerError{reason: "unknown symbol", token: name}
}

func lowerCall(name string, args []ast.Node) (node, error) {
	fn, ok := lookupFunction(name)
	if !ok {
		return nil, &lowerError{reason: "unknown function", token: name}
	}

	lowered := make([]node, len(args))
	for i, a := range args {
		l, err := lower(a)
		if err != nil {
			return nil, err
		}
		lowered[i] = l
	}

	switch {
	case len(lowered) == 1 && fn.unary != nil:
		return newUnary(fn.unary, lowered[0]), nil
	case len(lowered) == 2 && fn.binary != nil:
		return newBinary(fn.binary, lowered[0], lowered[1]), nil
	}
	return nil, &lowerError{reason: "wrong number of arguments", token: fmt.Sprintf("%s/%d", name, len(lowered))}
}
