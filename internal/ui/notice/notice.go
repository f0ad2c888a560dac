// Package notice turns pipeline errors into the titled messages shown to users.
package notice

import (
	"errors"

	"go.trai.ch/curve/internal/core/domain"
	"go.trai.ch/zerr"
)

// ExpressionGuidance is appended to expression errors.
const ExpressionGuidance = "Please use standard mathematical notation. Examples: x**2, sin(x), exp(x), log(x)"

// WindowGuidance is appended to window errors.
const WindowGuidance = "Enter x_min,x_max,y_min,y_max with each minimum below its maximum. Example: -10,10,-10,10"

// Notice is a user-facing error message.
type Notice struct {
	Title string
	Body  string
}

// FromError builds the notice for err.
func FromError(err error) Notice {
	switch {
	case errors.Is(err, domain.ErrEmptyExpression):
		return Notice{Title: "Error", Body: "Please enter a function to plot"}
	case errors.Is(err, domain.ErrInvalidExpression):
		return Notice{Title: "Expression Error", Body: "Invalid expression: " + detail(err) + "\n\n" + ExpressionGuidance}
	case errors.Is(err, domain.ErrInvalidWindow):
		return Notice{Title: "Window Error", Body: "Invalid window: " + detail(err) + "\n\n" + WindowGuidance}
	case errors.Is(err, domain.ErrComputation):
		return Notice{Title: "Error", Body: "Error computing function values: " + detail(err)}
	default:
		return Notice{Title: "Error", Body: err.Error()}
	}
}

// detail returns the message of the first non-sentinel layer of err.
func detail(err error) string {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if joined, ok := e.(interface{ Unwrap() []error }); ok {
			for _, branch := range joined.Unwrap() {
				if !isSentinel(branch) {
					return detail(branch)
				}
			}
			break
		}
		if isSentinel(e) {
			continue
		}
		if zErr, ok := e.(*zerr.Error); ok {
			return zErr.Message()
		}
		return e.Error()
	}
	return err.Error()
}

func isSentinel(err error) bool {
	for _, s := range []error{
		domain.ErrInvalidExpression,
		domain.ErrComputation,
		domain.ErrEmptyExpression,
		domain.ErrInvalidWindow,
	} {
		if err == s { //nolint:errorlint // identity check against the sentinels
			return true
		}
	}
	return false
}
