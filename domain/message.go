package domain

// InboundMessage is one transport-delivered chat event, as handed to the
// dispatcher. Messages are immutable once received.
type InboundMessage struct {
	Chat     Chat
	Sender   Actor
	Text     string
	Mentions []Actor
	FromSelf bool
}
