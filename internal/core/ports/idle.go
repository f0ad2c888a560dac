package ports

import "go.trai.ch/curve/internal/core/domain"

// IdleQueue runs callbacks once the host loop has no other pending work.
//
//go:generate mockgen -source=idle.go -destination=mocks/mock_idle.go -package=mocks
type IdleQueue interface {
	// Post arranges for fn to run at the next idle point.
	Post(fn func()) domain.RedrawToken
	// Cancel prevents a posted callback from running. It reports whether the
	// callback was still pending.
	Cancel(token domain.RedrawToken) bool
}
