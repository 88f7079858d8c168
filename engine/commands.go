package engine

import (
	"ares-gme/domain"
	"context"
	"fmt"
	"strings"
)

// registerCommands populates the tier tables. Registration order inside a
// tier drives the protocol manifest, nothing else; lookup is by name.
func (d *Dispatcher) registerCommands() {
	d.registry.Register(domain.TierOwner,
		"!downtime [on|off] - Toggles auto-reply for private messages.",
		d.cmdDowntime, "downtime")

	d.registry.Register(domain.TierGroupAdmin,
		"!kick / !terminate @user", d.cmdKick, "kick", "terminate")
	d.registry.Register(domain.TierGroupAdmin,
		"!promote / !elevate @user", d.cmdPromote, "promote", "elevate")
	d.registry.Register(domain.TierGroupAdmin,
		"!demote / !strip @user", d.cmdDemote, "demote", "strip")
	d.registry.Register(domain.TierGroupAdmin,
		"!subject [Title] / !rename [Title]", d.cmdSubject, "subject", "rename")

	d.registry.Register(domain.TierUniversal,
		"!maxim - Core tactical maxim.", d.cmdMaxim, "maxim")
	d.registry.Register(domain.TierUniversal,
		"!quote - Quote of the day.", d.cmdQuote, "quote")
	d.registry.Register(domain.TierUniversal,
		"!quiz - Answer a quiz question.", d.cmdQuiz, "quiz")
	d.registry.Register(domain.TierUniversal,
		"!whois - Fun group game.", d.cmdWhoIs, "whois")
	d.registry.Register(domain.TierUniversal,
		"!status / !ping - Operational status.", d.cmdStatus, "ping", "status")
	d.registry.Register(domain.TierUniversal,
		"!protocol / !help - This manifest.", d.cmdProtocol, "protocol", "help")
}

// --- owner tier ---

func (d *Dispatcher) cmdDowntime(ctx context.Context, req *Request) error {
	switch strings.ToLower(req.Inv.Args) {
	case "on":
		d.availability.Set(true)
		d.reply(ctx, req.Msg, downtimeEngaged)
	case "off":
		d.availability.Set(false)
		d.reply(ctx, req.Msg, downtimeLifted)
	default:
		// Invalid token: state is untouched and the reply names the prior state.
		d.reply(ctx, req.Msg, fmt.Sprintf(
			"⚠️ **SYNTAX ERROR**. Use: !downtime [on|off]. Current Status: %s",
			availabilityLabel(d.availability.Active())))
	}
	return nil
}

// --- group-admin tier ---

// requireAdmin enforces the sender-side clearance check inside the tier: the
// tier gate only established that the chat is a group and the bot is admin.
// A denial is a terminal outcome, distinct from "command not found".
func (d *Dispatcher) requireAdmin(ctx context.Context, req *Request) bool {
	if req.Auth.SenderIsAdmin {
		return true
	}
	d.reply(ctx, req.Msg, accessDenied)
	return false
}

func (d *Dispatcher) cmdKick(ctx context.Context, req *Request) error {
	if !d.requireAdmin(ctx, req) {
		return nil
	}
	if len(req.Inv.Mentions) == 0 {
		d.reply(ctx, req.Msg, kickSyntax)
		return nil
	}
	target := req.Inv.Mentions[0]
	d.mutate(ctx, req, func(ctx context.Context) error {
		return d.transport.RemoveParticipants(ctx, req.Msg.Chat.ID, []domain.Actor{target})
	}, fmt.Sprintf("✅ **TERMINATION COMPLETE**. Target %s removed from the unit.", target.Display()))
	return nil
}

func (d *Dispatcher) cmdPromote(ctx context.Context, req *Request) error {
	if !d.requireAdmin(ctx, req) {
		return nil
	}
	if len(req.Inv.Mentions) == 0 {
		d.reply(ctx, req.Msg, promoteSyntax)
		return nil
	}
	target := req.Inv.Mentions[0]
	d.mutate(ctx, req, func(ctx context.Context) error {
		return d.transport.PromoteParticipants(ctx, req.Msg.Chat.ID, []domain.Actor{target})
	}, fmt.Sprintf("⬆️ **RANK ELEVATED**. User %s granted administrative clearance.", target.Display()))
	return nil
}

func (d *Dispatcher) cmdDemote(ctx context.Context, req *Request) error {
	if !d.requireAdmin(ctx, req) {
		return nil
	}
	if len(req.Inv.Mentions) == 0 {
		d.reply(ctx, req.Msg, demoteSyntax)
		return nil
	}
	target := req.Inv.Mentions[0]
	d.mutate(ctx, req, func(ctx context.Context) error {
		return d.transport.DemoteParticipants(ctx, req.Msg.Chat.ID, []domain.Actor{target})
	}, fmt.Sprintf("⬇️ **RANK STRIPPED**. User %s reduced to standard personnel.", target.Display()))
	return nil
}

func (d *Dispatcher) cmdSubject(ctx context.Context, req *Request) error {
	if !d.requireAdmin(ctx, req) {
		return nil
	}
	title := strings.TrimSpace(req.Inv.Args)
	if title == "" {
		d.reply(ctx, req.Msg, subjectSyntax)
		return nil
	}
	d.mutate(ctx, req, func(ctx context.Context) error {
		return d.transport.SetChatTitle(ctx, req.Msg.Chat.ID, title)
	}, fmt.Sprintf("✏️ **SUBJECT UPDATED**. New Designation: *%s*", title))
	return nil
}

// --- universal tier ---

func (d *Dispatcher) cmdMaxim(ctx context.Context, req *Request) error {
	d.reply(ctx, req.Msg, fmt.Sprintf("📜 **ARES MAXIM**:\n\n*%s*", d.content.Maxim()))
	return nil
}

func (d *Dispatcher) cmdQuote(ctx context.Context, req *Request) error {
	d.reply(ctx, req.Msg, fmt.Sprintf("💡 Quote of the day:\n%q", d.content.Quote()))
	return nil
}

func (d *Dispatcher) cmdQuiz(ctx context.Context, req *Request) error {
	q := d.content.Quiz()
	var b strings.Builder
	fmt.Fprintf(&b, "🧠 Quiz Time!\n\n%s\n", q.Question)
	for i, opt := range q.Options {
		fmt.Fprintf(&b, "%d. %s\n", i+1, opt)
	}
	d.reply(ctx, req.Msg, b.String())
	return nil
}

func (d *Dispatcher) cmdWhoIs(ctx context.Context, req *Request) error {
	d.reply(ctx, req.Msg, d.content.WhoIs())
	return nil
}

func (d *Dispatcher) cmdStatus(ctx context.Context, req *Request) error {
	mode := "STANDARD"
	switch {
	case req.Auth.IsOwner:
		mode = "OWNER"
	case req.Auth.IsGroup && req.Auth.BotIsAdmin:
		mode = "ADMIN"
	}
	d.reply(ctx, req.Msg, fmt.Sprintf(
		"📡 **ARES GME STATUS**: OPERATIONAL (%s). Downtime Protocol: %s",
		mode, availabilityLabel(d.availability.Active())))
	return nil
}

func (d *Dispatcher) cmdProtocol(ctx context.Context, req *Request) error {
	sections := map[domain.Tier]*strings.Builder{
		domain.TierOwner:      new(strings.Builder),
		domain.TierGroupAdmin: new(strings.Builder),
		domain.TierUniversal:  new(strings.Builder),
	}
	for _, entry := range d.registry.Manifest() {
		fmt.Fprintf(sections[entry.Tier], "%s\n", entry.Usage)
	}
	manifest := fmt.Sprintf(
		"👑 **ARES PROTOCOL MANIFEST** 👑\n\n*OWNER ONLY (Private Chat):*\n%s\n*ADMINISTRATION (Group Admin/Bot Admin):*\n%s\n*UTILITY (All Personnel):*\n%s",
		sections[domain.TierOwner].String(),
		sections[domain.TierGroupAdmin].String(),
		sections[domain.TierUniversal].String())
	d.reply(ctx, req.Msg, manifest)
	return nil
}

func availabilityLabel(active bool) string {
	if active {
		return "ACTIVE"
	}
	return "INACTIVE"
}
