package scheduler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/curve/internal/core/domain"
	"go.trai.ch/curve/internal/core/ports/mocks"
	"go.trai.ch/curve/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

func TestScheduler_CoalescesRequests(t *testing.T) {
	queue := scheduler.NewQueue()
	renders := 0
	s := scheduler.New(queue, func() { renders++ })

	for range 10 {
		s.Request(false)
	}
	assert.True(t, s.Pending())
	assert.Equal(t, 1, queue.Len())
	assert.Zero(t, renders)

	assert.Equal(t, 1, queue.RunIdle())
	assert.Equal(t, 1, renders)
	assert.Equal(t, 1, s.Renders())
	assert.False(t, s.Pending())
}

func TestScheduler_NewRequestAfterIdle(t *testing.T) {
	queue := scheduler.NewQueue()
	renders := 0
	s := scheduler.New(queue, func() { renders++ })

	s.Request(false)
	queue.RunIdle()
	s.Request(false)
	queue.RunIdle()

	assert.Equal(t, 2, renders)
}

func TestScheduler_ForcedWhilePending(t *testing.T) {
	queue := scheduler.NewQueue()
	renders := 0
	s := scheduler.New(queue, func() { renders++ })

	s.Request(false)
	s.Request(true)

	assert.Equal(t, 1, renders)
	assert.False(t, s.Pending())
	assert.Zero(t, queue.Len())

	queue.RunIdle()
	assert.Equal(t, 1, renders)
}

func TestScheduler_ForcedWhenIdle(t *testing.T) {
	queue := scheduler.NewQueue()
	renders := 0
	s := scheduler.New(queue, func() { renders++ })

	s.Request(true)
	s.Request(true)
	assert.Equal(t, 2, renders)
	assert.Zero(t, queue.Len())
}

func TestScheduler_PendingClearedBeforeRender(t *testing.T) {
	queue := scheduler.NewQueue()
	var s *scheduler.Scheduler
	var pendingDuringRender bool
	s = scheduler.New(queue, func() { pendingDuringRender = s.Pending() })

	s.Request(false)
	queue.RunIdle()
	assert.False(t, pendingDuringRender)
}

func TestScheduler_StaleCallbackIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := mocks.NewMockIdleQueue(ctrl)
	token := domain.NewRedrawToken()

	var posted func()
	queue.EXPECT().Post(gomock.Any()).DoAndReturn(func(fn func()) domain.RedrawToken {
		posted = fn
		return token
	})
	// A queue that cannot retract the callback reports false.
	queue.EXPECT().Cancel(token).Return(false)

	renders := 0
	s := scheduler.New(queue, func() { renders++ })

	s.Request(false)
	s.Request(true)
	require.NotNil(t, posted)

	posted()
	assert.Equal(t, 1, renders)
	assert.Equal(t, 1, s.Renders())
}

func TestQueue_CancelAndOrder(t *testing.T) {
	queue := scheduler.NewQueue()
	var order []int

	queue.Post(func() { order = append(order, 1) })
	second := queue.Post(func() { order = append(order, 2) })
	queue.Post(func() {
		order = append(order, 3)
		queue.Post(func() { order = append(order, 4) })
	})

	assert.True(t, queue.Cancel(second))
	assert.False(t, queue.Cancel(second))
	assert.False(t, queue.Cancel(domain.RedrawToken{}))

	assert.Equal(t, 3, queue.RunIdle())
	assert.Equal(t, []int{1, 3, 4}, order)
	assert.Zero(t, queue.Len())
}
