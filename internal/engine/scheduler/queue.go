package scheduler

import (
	"go.trai.ch/curve/internal/core/domain"
	"go.trai.ch/curve/internal/core/ports"
)

var _ ports.IdleQueue = (*Queue)(nil)

type queued struct {
	token domain.RedrawToken
	fn    func()
}

// Queue is a single-threaded FIFO idle queue. Posted callbacks run when
// RunIdle is called.
type Queue struct {
	items []queued
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Post appends fn to the queue.
func (q *Queue) Post(fn func()) domain.RedrawToken {
	token := domain.NewRedrawToken()
	q.items = append(q.items, queued{token: token, fn: fn})
	return token
}

// Cancel removes the callback posted under token.
func (q *Queue) Cancel(token domain.RedrawToken) bool {
	for i, it := range q.items {
		if it.token == token {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of pending callbacks.
func (q *Queue) Len() int {
	return len(q.items)
}

// RunIdle runs pending callbacks in posting order until the queue is empty,
// including callbacks posted while draining. It returns how many ran.
func (q *Queue) RunIdle() int {
	ran := 0
	for len(q.items) > 0 {
		it := q.items[0]
		q.items = q.items[1:]
		it.fn()
		ran++
	}
	return ran
}
