package domain

// AuthorizationContext carries the privilege flags computed for one message.
// It is never persisted: roster state can change between messages, so the
// resolver recomputes it per invocation.
type AuthorizationContext struct {
	IsOwner       bool
	IsGroup       bool
	SenderIsAdmin bool
	BotIsAdmin    bool
}

// Tier is an authorization level determining which commands are reachable.
type Tier int

const (
	TierOwner Tier = iota
	TierGroupAdmin
	TierUniversal
)

func (t Tier) String() string {
	switch t {
	case TierOwner:
		return "owner"
	case TierGroupAdmin:
		return "group-admin"
	case TierUniversal:
		return "universal"
	default:
		return "unknown"
	}
}
