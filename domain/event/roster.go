package event

import "ares-gme/domain"

type RosterAction string

const (
	ParticipantJoined RosterAction = "joined"
	ParticipantLeft   RosterAction = "left"
)

// RosterEvent is a transport notification that group membership changed.
// It may carry several affected Actors when the transport batches changes.
type RosterEvent struct {
	Chat         domain.Chat
	Action       RosterAction
	Participants []domain.Actor
}
