package domain

type ChatID string

type ChatKind string

const (
	ChatDirect ChatKind = "direct"
	ChatGroup  ChatKind = "group"
)

// Chat identifies where a message originated. The participant roster of a
// group chat lives in the roster cache, not here.
type Chat struct {
	ID   ChatID
	Kind ChatKind
}

func (c Chat) IsGroup() bool {
	return c.Kind == ChatGroup
}
