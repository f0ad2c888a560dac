// Package scheduler coalesces redraw requests into at most one pending
// render.
package scheduler

import (
	"go.trai.ch/curve/internal/core/domain"
	"go.trai.ch/curve/internal/core/ports"
)

// Scheduler decides when the render pass runs. Non-forced requests are
// deferred to the idle queue and collapse while one is pending; forced
// requests render immediately.
//
// It is not safe for concurrent use. All calls happen on the host loop.
type Scheduler struct {
	queue   ports.IdleQueue
	render  func()
	token   domain.RedrawToken
	renders int
}

// New creates a Scheduler that runs render on demand.
func New(queue ports.IdleQueue, render func()) *Scheduler {
	return &Scheduler{queue: queue, render: render}
}

// Request asks for a render. With force the pending idle render, if any, is
// cancelled and the render runs synchronously.
func (s *Scheduler) Request(force bool) {
	if force {
		if !s.token.IsZero() {
			s.queue.Cancel(s.token)
			s.token = domain.RedrawToken{}
		}
		s.run()
		return
	}

	if s.Pending() {
		return
	}

	var token domain.RedrawToken
	token = s.queue.Post(func() {
		if s.token != token {
			return
		}
		s.token = domain.RedrawToken{}
		s.run()
	})
	s.token = token
}

func (s *Scheduler) run() {
	s.renders++
	s.render()
}

// Pending reports whether an idle render is scheduled.
func (s *Scheduler) Pending() bool {
	return !s.token.IsZero()
}

// Renders returns how many render passes have run.
func (s *Scheduler) Renders() int {
	return s.renders
}
