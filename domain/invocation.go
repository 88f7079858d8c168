package domain

import "strings"

// Invocation is a single parsed command derived from one inbound message:
// lower-cased name, remaining argument text, and the mentioned Actors.
type Invocation struct {
	Name     string
	Args     string
	Mentions []Actor
}

// ParseInvocation derives an Invocation from raw message text. It reports
// false when the text does not start with the command prefix. A bare prefix
// with no command name also reports false.
func ParseInvocation(text, prefix string, mentions []Actor) (Invocation, bool) {
	if !strings.HasPrefix(text, prefix) {
		return Invocation{}, false
	}
	fields := strings.Fields(strings.TrimPrefix(text, prefix))
	if len(fields) == 0 {
		return Invocation{}, false
	}
	return Invocation{
		Name:     strings.ToLower(fields[0]),
		Args:     strings.Join(fields[1:], " "),
		Mentions: mentions,
	}, true
}
