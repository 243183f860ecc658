package service

import (
	"sync/atomic"
	"time"

	"webhook_bot/internal/models"
)

type State struct {
	ready     atomic.Bool
	startedAt time.Time

	lastSignalUnix atomic.Int64 // unix seconds
	lastStatus     atomic.Value // models.Status
	handled        atomic.Int64
	errors         atomic.Int64
}

func NewState() *State {
	s := &State{startedAt: time.Now()}
	s.ready.Store(false)
	return s
}

func (s *State) SetReady(v bool) { s.ready.Store(v) }
func (s *State) Ready() bool     { return s.ready.Load() }

// TouchSignal отмечает обработанный вебхук.
func (s *State) TouchSignal(t time.Time, status models.Status) {
	s.lastSignalUnix.Store(t.Unix())
	s.lastStatus.Store(status)
	s.handled.Add(1)
	if status == models.StatusError {
		s.errors.Add(1)
	}
}

func (s *State) LastSignal() time.Time {
	u := s.lastSignalUnix.Load()
	if u == 0 {
		return time.Time{}
	}
	return time.Unix(u, 0)
}

func (s *State) LastStatus() models.Status {
	v, _ := s.lastStatus.Load().(models.Status)
	return v
}

func (s *State) Handled() int64 { return s.handled.Load() }
func (s *State) Errors() int64  { return s.errors.Load() }

func (s *State) Uptime() time.Duration { return time.Since(s.startedAt) }
