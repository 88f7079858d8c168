// Package domain contains core concepts of the enforcement engine.
// This file defines Actors and Participants.
// No runtime, network, or UI logic should be added here.
package domain

import "strings"

// Actor is the opaque stable identifier of a sender, a target, or the bot
// itself, in the transport's canonical address form. Compared by equality only.
type Actor string

// Display returns the user-facing form of the identifier, the part before
// the address domain (e.g. "2349021503942@c.us" -> "2349021503942").
func (a Actor) Display() string {
	return strings.SplitN(string(a), "@", 2)[0]
}

// Participant is one roster entry of a group chat. Roster membership is
// authoritative only from the transport; the engine never mutates it directly.
type Participant struct {
	ID      Actor
	IsAdmin bool
}
