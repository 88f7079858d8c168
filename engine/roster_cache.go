package engine

import (
	"ares-gme/contract"
	"ares-gme/domain"
	"ares-gme/errors"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/samber/lo"
)

// RosterCache holds per-chat participant snapshots with a short validity
// window. Entries are advisory: a handler acting on a stale admin flag must
// tolerate the transport rejecting the requested mutation.
//
// The cache is safe for concurrent use, though in practice each chat is
// served by a single worker so entries see no contention.
type RosterCache struct {
	mu        sync.Mutex
	transport contract.Transport
	ttl       time.Duration
	timeout   time.Duration
	log       *slog.Logger
	entries   map[domain.ChatID]rosterEntry
	now       func() time.Time
}

type rosterEntry struct {
	participants []domain.Participant
	fetchedAt    time.Time
}

func NewRosterCache(transport contract.Transport, ttl, timeout time.Duration, log *slog.Logger) *RosterCache {
	return &RosterCache{
		transport: transport,
		ttl:       ttl,
		timeout:   timeout,
		log:       log,
		entries:   make(map[domain.ChatID]rosterEntry),
		now:       time.Now,
	}
}

// Participants returns the roster for a group chat, refreshing it from the
// transport when the cached snapshot is older than the TTL. A transport
// failure surfaces as ErrRosterUnavailable; callers degrade, never crash.
func (c *RosterCache) Participants(ctx context.Context, chat domain.ChatID) ([]domain.Participant, error) {
	c.mu.Lock()
	entry, ok := c.entries[chat]
	fresh := ok && c.now().Sub(entry.fetchedAt) < c.ttl
	c.mu.Unlock()
	if fresh {
		return entry.participants, nil
	}

	// Fetch outside the lock so one slow chat does not stall the others.
	fetchCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	participants, err := c.transport.FetchRoster(fetchCtx, chat)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrRosterUnavailable, err)
	}

	c.mu.Lock()
	c.entries[chat] = rosterEntry{participants: participants, fetchedAt: c.now()}
	c.mu.Unlock()
	return participants, nil
}

// Admins returns the admin subset of a chat's roster.
func (c *RosterCache) Admins(ctx context.Context, chat domain.ChatID) ([]domain.Actor, error) {
	participants, err := c.Participants(ctx, chat)
	if err != nil {
		return nil, err
	}
	admins := lo.FilterMap(participants, func(p domain.Participant, _ int) (domain.Actor, bool) {
		return p.ID, p.IsAdmin
	})
	return admins, nil
}

// IsAdmin reports whether actor holds the admin flag in the chat's roster.
// An actor absent from the roster is not admin; this never errors into the
// caller beyond the roster fetch itself.
func (c *RosterCache) IsAdmin(ctx context.Context, chat domain.ChatID, actor domain.Actor) (bool, error) {
	participants, err := c.Participants(ctx, chat)
	if err != nil {
		return false, err
	}
	p, found := lo.Find(participants, func(p domain.Participant) bool { return p.ID == actor })
	return found && p.IsAdmin, nil
}

// Invalidate drops the cached snapshot for a chat. Called after the engine
// requests a roster mutation or receives a roster-change event, so the next
// lookup observes the transport's view.
func (c *RosterCache) Invalidate(chat domain.ChatID) {
	c.mu.Lock()
	delete(c.entries, chat)
	c.mu.Unlock()
}
