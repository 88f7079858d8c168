// Package gateway connects the engine to the chat session gateway over a
// websocket. The gateway owns session establishment, credentials, and
// reconnect logic; this adapter only exchanges JSON frames: pushed events in,
// correlated request/response pairs out.
package gateway

import (
	"ares-gme/domain"
	"ares-gme/domain/event"

	"github.com/samber/lo"
)

type frameType string

const (
	frameEvent    frameType = "event"
	frameRequest  frameType = "request"
	frameResponse frameType = "response"
)

// Frame is the single envelope on the wire; exactly one payload is set,
// matching Type. Responses echo the request ID.
type Frame struct {
	Type     frameType        `json:"type"`
	ID       string           `json:"id,omitempty"`
	Event    *EventPayload    `json:"event,omitempty"`
	Request  *RequestPayload  `json:"request,omitempty"`
	Response *ResponsePayload `json:"response,omitempty"`
}

type EventPayload struct {
	Kind       string           `json:"kind"` // message | roster | connection
	Message    *MessageEvent    `json:"message,omitempty"`
	Roster     *RosterEvent     `json:"roster,omitempty"`
	Connection *ConnectionEvent `json:"connection,omitempty"`
}

type MessageEvent struct {
	ChatID   string   `json:"chat_id"`
	ChatKind string   `json:"chat_kind"` // direct | group
	Sender   string   `json:"sender"`
	Text     string   `json:"text"`
	Mentions []string `json:"mentions,omitempty"`
	FromSelf bool     `json:"from_self,omitempty"`
}

type RosterEvent struct {
	ChatID       string   `json:"chat_id"`
	Action       string   `json:"action"` // joined | left
	Participants []string `json:"participants"`
}

type ConnectionEvent struct {
	State string `json:"state"`
}

type RequestPayload struct {
	Op       string   `json:"op"` // fetch_roster | send_message | set_title | remove | promote | demote
	ChatID   string   `json:"chat_id"`
	Text     string   `json:"text,omitempty"`
	Title    string   `json:"title,omitempty"`
	Mentions []string `json:"mentions,omitempty"`
	Targets  []string `json:"targets,omitempty"`
}

type ResponsePayload struct {
	OK           bool                 `json:"ok"`
	Error        string               `json:"error,omitempty"`
	Participants []ParticipantPayload `json:"participants,omitempty"`
}

type ParticipantPayload struct {
	ID      string `json:"id"`
	IsAdmin bool   `json:"is_admin"`
}

const (
	opFetchRoster = "fetch_roster"
	opSendMessage = "send_message"
	opSetTitle    = "set_title"
	opRemove      = "remove"
	opPromote     = "promote"
	opDemote      = "demote"
)

func toInboundMessage(m MessageEvent) domain.InboundMessage {
	kind := domain.ChatDirect
	if m.ChatKind == string(domain.ChatGroup) {
		kind = domain.ChatGroup
	}
	return domain.InboundMessage{
		Chat:     domain.Chat{ID: domain.ChatID(m.ChatID), Kind: kind},
		Sender:   domain.Actor(m.Sender),
		Text:     m.Text,
		Mentions: toActors(m.Mentions),
		FromSelf: m.FromSelf,
	}
}

func toRosterEvent(r RosterEvent) (event.RosterEvent, bool) {
	var action event.RosterAction
	switch r.Action {
	case string(event.ParticipantJoined):
		action = event.ParticipantJoined
	case string(event.ParticipantLeft):
		action = event.ParticipantLeft
	default:
		return event.RosterEvent{}, false
	}
	return event.RosterEvent{
		Chat:         domain.Chat{ID: domain.ChatID(r.ChatID), Kind: domain.ChatGroup},
		Action:       action,
		Participants: toActors(r.Participants),
	}, true
}

func toParticipants(payload []ParticipantPayload) []domain.Participant {
	return lo.Map(payload, func(p ParticipantPayload, _ int) domain.Participant {
		return domain.Participant{ID: domain.Actor(p.ID), IsAdmin: p.IsAdmin}
	})
}

func toActors(ids []string) []domain.Actor {
	return lo.Map(ids, func(id string, _ int) domain.Actor { return domain.Actor(id) })
}

func fromActors(actors []domain.Actor) []string {
	return lo.Map(actors, func(a domain.Actor, _ int) string { return string(a) })
}
