package engine

import (
	"ares-gme/domain"
	"context"
)

// Handler executes one matched command invocation. Handlers report only
// unexpected failures; user-visible outcomes (syntax errors, access denials,
// transport rejections) are replied inline and return nil.
type Handler func(ctx context.Context, req *Request) error

// Request bundles everything a handler may consult for one invocation.
type Request struct {
	Msg  domain.InboundMessage
	Auth domain.AuthorizationContext
	Inv  domain.Invocation
}

// binding is one registered command: its aliases, a usage line for the
// manifest, and the handler.
type binding struct {
	names []string
	usage string
	run   Handler
}

type tierTable struct {
	tier     domain.Tier
	gate     func(domain.AuthorizationContext) bool
	bindings []binding
	byName   map[string]Handler
}

// Registry maps command names to handlers as an explicit ordered list of
// (tier gate, name->handler) tables, evaluated top-down. Tier precedence is
// data, not code order: owner commands are consulted first, then group-admin,
// then universal. An unmatched name falls through to the next tier; a name
// unmatched in every reachable tier produces no action at all.
type Registry struct {
	tiers []*tierTable
}

func NewRegistry() *Registry {
	return &Registry{tiers: []*tierTable{
		{
			tier:   domain.TierOwner,
			gate:   func(a domain.AuthorizationContext) bool { return a.IsOwner },
			byName: make(map[string]Handler),
		},
		{
			tier:   domain.TierGroupAdmin,
			gate:   func(a domain.AuthorizationContext) bool { return a.IsGroup && a.BotIsAdmin },
			byName: make(map[string]Handler),
		},
		{
			tier:   domain.TierUniversal,
			gate:   func(domain.AuthorizationContext) bool { return true },
			byName: make(map[string]Handler),
		},
	}}
}

// Register binds a handler under one or more aliases in the given tier.
// The usage line feeds the protocol manifest.
func (r *Registry) Register(tier domain.Tier, usage string, run Handler, names ...string) {
	for _, table := range r.tiers {
		if table.tier != tier {
			continue
		}
		table.bindings = append(table.bindings, binding{names: names, usage: usage, run: run})
		for _, name := range names {
			table.byName[name] = run
		}
		return
	}
}

// Lookup walks the tier tables in precedence order and returns the first
// handler whose tier gate admits the caller and whose table knows the name.
// Exactly one handler matches per invocation; later tiers are not consulted
// once a match fires.
func (r *Registry) Lookup(auth domain.AuthorizationContext, name string) (Handler, domain.Tier, bool) {
	for _, table := range r.tiers {
		if !table.gate(auth) {
			continue
		}
		if run, ok := table.byName[name]; ok {
			return run, table.tier, true
		}
	}
	return nil, 0, false
}

// ManifestEntry is one command group as shown by the protocol command.
type ManifestEntry struct {
	Tier  domain.Tier
	Names []string
	Usage string
}

// Manifest lists every registered command in tier precedence order,
// preserving registration order inside each tier.
func (r *Registry) Manifest() []ManifestEntry {
	var out []ManifestEntry
	for _, table := range r.tiers {
		for _, b := range table.bindings {
			out = append(out, ManifestEntry{Tier: table.tier, Names: b.names, Usage: b.usage})
		}
	}
	return out
}
