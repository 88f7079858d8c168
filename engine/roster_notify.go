package engine

import (
	"ares-gme/contract"
	"ares-gme/domain"
	"ares-gme/domain/event"
	"context"
	"fmt"
	"log/slog"
	"time"
)

// RosterNotifier reacts to join/leave notifications with welcome and
// farewell notices. It stays silent in chats the bot cannot moderate.
type RosterNotifier struct {
	log       *slog.Logger
	transport contract.Transport
	roster    *RosterCache
	audit     contract.Auditor
	self      domain.Actor
	prefix    string
	timeout   time.Duration
}

func NewRosterNotifier(
	log *slog.Logger,
	transport contract.Transport,
	roster *RosterCache,
	audit contract.Auditor,
	self domain.Actor,
	prefix string,
	timeout time.Duration,
) *RosterNotifier {
	return &RosterNotifier{
		log:       log,
		transport: transport,
		roster:    roster,
		audit:     audit,
		self:      self,
		prefix:    prefix,
		timeout:   timeout,
	}
}

// HandleEvent posts the notice for one roster change. Batched events degrade
// to acting on the first affected Actor only; this mirrors the historical
// gateway behavior and is a documented limitation, not silently generalized.
// A failed send is dropped and logged, never escalated.
func (n *RosterNotifier) HandleEvent(ctx context.Context, evt event.RosterEvent) {
	if len(evt.Participants) == 0 {
		return
	}
	target := evt.Participants[0]

	// The event itself proves the roster changed.
	n.roster.Invalidate(evt.Chat.ID)

	admin, err := n.roster.IsAdmin(ctx, evt.Chat.ID, n.self)
	if err != nil {
		n.log.Warn("Roster notice skipped, admin check unavailable",
			"chat", evt.Chat.ID, "error", err)
		return
	}
	if !admin {
		return
	}

	var text string
	switch evt.Action {
	case event.ParticipantJoined:
		text = fmt.Sprintf(
			"📢 **NOTICE**: New unit personnel detected. *Welcome, Agent @%s*. Review the protocol: %sprotocol",
			target.Display(), n.prefix)
	case event.ParticipantLeft:
		text = fmt.Sprintf(
			"⚠️ **UNIT DISBANDMENT**: Agent @%s has detached from the current roster. Record updated.",
			target.Display())
	default:
		return
	}

	callCtx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()
	if err := n.transport.SendMessage(callCtx, evt.Chat.ID, text, []domain.Actor{target}); err != nil {
		n.log.Warn("Roster notice delivery failed",
			"chat", evt.Chat.ID, "action", evt.Action, "error", err)
		return
	}
	n.audit.RosterNotice(evt.Chat.ID, string(evt.Action), target)
}
