// Package engine implements the command authorization and moderation engine:
// it classifies every inbound event, resolves caller and bot privilege
// against the live roster, routes to the matching handler tier, and keeps the
// availability flag and roster cache consistent under concurrent delivery.
package engine

import (
	"ares-gme/content"
	"ares-gme/contract"
	"ares-gme/domain"
	"ares-gme/moderation"
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"
)

type Dispatcher struct {
	log          *slog.Logger
	transport    contract.Transport
	registry     *Registry
	resolver     *Resolver
	roster       *RosterCache
	availability *AvailabilityState
	guard        *moderation.LinkGuard
	audit        contract.Auditor
	content      ContentStore
	prefix       string
	timeout      time.Duration
}

// ContentStore hands out entries for the universal content commands.
type ContentStore interface {
	Maxim() string
	Quote() string
	WhoIs() string
	Quiz() content.QuizQuestion
}

func NewDispatcher(
	log *slog.Logger,
	transport contract.Transport,
	resolver *Resolver,
	roster *RosterCache,
	availability *AvailabilityState,
	guard *moderation.LinkGuard,
	audit contract.Auditor,
	content ContentStore,
	prefix string,
	timeout time.Duration,
) *Dispatcher {
	d := &Dispatcher{
		log:          log,
		transport:    transport,
		registry:     NewRegistry(),
		resolver:     resolver,
		roster:       roster,
		availability: availability,
		guard:        guard,
		audit:        audit,
		content:      content,
		prefix:       prefix,
		timeout:      timeout,
	}
	d.registerCommands()
	return d
}

// Registry exposes the command table for inspection (manifest dumps).
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// HandleMessage processes one inbound message to completion. It never
// panics outward and never returns an error: one malformed or failing event
// must not stop processing of subsequent events.
//
// Evaluation order:
//  1. the bot's own non-command chatter is discarded (echo-loop guard);
//  2. authorization is resolved fresh against the roster;
//  3. the moderation policy runs, independent of command dispatch;
//  4. availability interception fires for private non-command messages from
//     non-owner senders. It runs before command parsing, so a malformed
//     command cannot bypass it, while any literal command always does;
//  5. non-command text stops here;
//  6. the first tier+name match in the registry executes, exactly once.
func (d *Dispatcher) HandleMessage(ctx context.Context, msg domain.InboundMessage) {
	isCommand := strings.HasPrefix(msg.Text, d.prefix)
	if msg.FromSelf && !isCommand {
		return
	}

	auth := d.resolver.Resolve(ctx, msg.Chat, msg.Sender)

	d.moderate(ctx, msg, auth)

	if !auth.IsGroup && d.availability.Active() && !isCommand && !auth.IsOwner {
		d.reply(ctx, msg, downtimeNotice)
		return
	}

	inv, ok := domain.ParseInvocation(msg.Text, d.prefix, msg.Mentions)
	if !ok {
		return
	}

	run, tier, ok := d.registry.Lookup(auth, inv.Name)
	if !ok {
		// Unknown names are silent; there is no unknown-command reply.
		return
	}

	req := &Request{Msg: msg, Auth: auth, Inv: inv}
	if err := run(ctx, req); err != nil {
		d.log.Warn("Command handler failed",
			"command", inv.Name, "tier", tier, "chat", msg.Chat.ID, "error", err)
	}
}

// moderate applies the link policy to one group message. It needs the bot to
// be admin for the warning to be meaningful, exempts the chat's admin set
// (recomputed from the roster, independent of the command flags), and posts
// exactly one warning per qualifying message.
func (d *Dispatcher) moderate(ctx context.Context, msg domain.InboundMessage, auth domain.AuthorizationContext) {
	if !auth.IsGroup || !auth.BotIsAdmin {
		return
	}
	if !d.guard.Flags(msg.Text) {
		return
	}
	admins, err := d.roster.Admins(ctx, msg.Chat.ID)
	if err != nil {
		d.log.Warn("Moderation skipped, admin set unavailable",
			"chat", msg.Chat.ID, "error", err)
		return
	}
	if lo.Contains(admins, msg.Sender) {
		return
	}
	d.reply(ctx, msg, moderation.Warning)
	d.audit.ModerationFlagged(msg.Chat.ID, msg.Sender, msg.Text)
}

// reply sends a message back to the origin chat. Delivery is fire-and-forget:
// failures are logged, never retried.
func (d *Dispatcher) reply(ctx context.Context, msg domain.InboundMessage, text string, mentions ...domain.Actor) {
	callCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	if err := d.transport.SendMessage(callCtx, msg.Chat.ID, text, mentions); err != nil {
		d.log.Warn("Reply delivery failed", "chat", msg.Chat.ID, "error", err)
	}
}

// mutate is the scoped failure boundary around a transport mutation: any
// fault becomes the single uniform protocol-failure reply, success posts the
// confirmation and invalidates the chat's roster snapshot. No retries.
func (d *Dispatcher) mutate(ctx context.Context, req *Request, op func(ctx context.Context) error, confirmation string, mentions ...domain.Actor) {
	callCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	if err := op(callCtx); err != nil {
		d.log.Warn("Transport mutation rejected",
			"command", req.Inv.Name, "chat", req.Msg.Chat.ID, "error", err)
		d.reply(ctx, req.Msg, protocolFailure)
		return
	}
	d.roster.Invalidate(req.Msg.Chat.ID)
	d.reply(ctx, req.Msg, confirmation, mentions...)
}
