package workers

import (
	"ares-gme/contract"
	"ares-gme/domain/event"
	"context"
	"log/slog"
)

var _ contract.Worker = (*RosterWorker)(nil)

// RosterEventHandler reacts to one membership change.
type RosterEventHandler interface {
	HandleEvent(ctx context.Context, evt event.RosterEvent)
}

// RosterWorker feeds roster-change events to the notifier, bypassing command
// dispatch entirely.
type RosterWorker struct {
	events   chan event.RosterEvent
	notifier RosterEventHandler
	log      *slog.Logger
}

func NewRosterWorker(events chan event.RosterEvent, notifier RosterEventHandler, log *slog.Logger) *RosterWorker {
	return &RosterWorker{events: events, notifier: notifier, log: log}
}

func (w *RosterWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case evt, ok := <-w.events:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			w.notifier.HandleEvent(ctx, evt)
		}
	}
}
