package engine

import "sync/atomic"

// AvailabilityState is the process-wide downtime flag. It is global and
// singular, not per-chat: process lifetime equals process uptime, the only
// writer is the owner-issued toggle command, and every private message read
// must observe the latest write. It is injected into the dispatcher rather
// than living as ambient package state so unit tests stay deterministic.
type AvailabilityState struct {
	on atomic.Bool
}

func NewAvailabilityState() *AvailabilityState {
	return &AvailabilityState{}
}

func (s *AvailabilityState) Active() bool {
	return s.on.Load()
}

func (s *AvailabilityState) Set(active bool) {
	s.on.Store(active)
}
