package engine

import (
	"ares-gme/domain"
	"context"
	"log/slog"
)

// Resolver computes the AuthorizationContext for one inbound message.
type Resolver struct {
	owner  domain.Actor
	self   domain.Actor
	roster *RosterCache
	log    *slog.Logger
}

func NewResolver(owner, self domain.Actor, roster *RosterCache, log *slog.Logger) *Resolver {
	return &Resolver{owner: owner, self: self, roster: roster, log: log}
}

// Resolve evaluates privilege fresh for every message. Admin flags are
// group-only concepts and stay false in direct chats. A roster fetch failure
// degrades both admin flags to false instead of propagating: administration
// commands become unavailable rather than crashing the dispatcher.
func (r *Resolver) Resolve(ctx context.Context, chat domain.Chat, sender domain.Actor) domain.AuthorizationContext {
	auth := domain.AuthorizationContext{
		IsOwner: sender == r.owner,
		IsGroup: chat.IsGroup(),
	}
	if !auth.IsGroup {
		return auth
	}

	participants, err := r.roster.Participants(ctx, chat.ID)
	if err != nil {
		r.log.Warn("Roster lookup failed, degrading to non-admin",
			"chat", chat.ID, "error", err)
		return auth
	}
	for _, p := range participants {
		if p.ID == sender {
			auth.SenderIsAdmin = p.IsAdmin
		}
		if p.ID == r.self {
			auth.BotIsAdmin = p.IsAdmin
		}
	}
	return auth
}
