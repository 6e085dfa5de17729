package app

import (
	"slices"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/boxkit/pkg/tooltip"
)

// Scheduler runs tooltip callbacks on the bubbletea update goroutine.
// AfterFunc queues a FireCmd; Drain hands the queued commands to the
// program, and Fire runs the callback when its FireEvent arrives.
type Scheduler struct {
	mu      sync.Mutex
	next    uint64
	pending map[uint64]func()
	queued  []tea.Cmd
}

// NewScheduler creates an empty Scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[uint64]func())}
}

// AfterFunc implements tooltip.Scheduler.
func (s *Scheduler) AfterFunc(d time.Duration, f func()) tooltip.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	id := s.next
	s.pending[id] = f
	s.queued = append(s.queued, FireCmd(id, d))
	return schedTimer{s: s, id: id}
}

// Fire runs and forgets the callback for id. It reports false if the
// callback was stopped or already ran.
func (s *Scheduler) Fire(id uint64) bool {
	s.mu.Lock()
	f, ok := s.pending[id]
	delete(s.pending, id)
	s.mu.Unlock()
	if ok {
		f()
	}
	return ok
}

// FireAll runs every pending callback now, in scheduling order, and
// returns how many ran. Headless renders use it to skip show delays.
func (s *Scheduler) FireAll() int {
	s.mu.Lock()
	ids := make([]uint64, 0, len(s.pending))
	for id := range s.pending {
		ids = append(ids, id)
	}
	s.mu.Unlock()
	slices.Sort(ids)

	n := 0
	for _, id := range ids {
		if s.Fire(id) {
			n++
		}
	}
	return n
}

// Drain returns the commands queued since the last call, batched.
func (s *Scheduler) Drain() tea.Cmd {
	s.mu.Lock()
	cmds := s.queued
	s.queued = nil
	s.mu.Unlock()
	return tea.Batch(cmds...)
}

// Pending returns the number of callbacks waiting to fire.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

type schedTimer struct {
	s  *Scheduler
	id uint64
}

func (t schedTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	_, ok := t.s.pending[t.id]
	delete(t.s.pending, t.id)
	return ok
}

var _ tooltip.Scheduler = (*Scheduler)(nil)
