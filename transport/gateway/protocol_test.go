package gateway

import (
	"ares-gme/domain"
	"ares-gme/domain/event"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_toInboundMessage_maps_chat_kind_and_mentions(t *testing.T) {
	req := require.New(t)

	msg := toInboundMessage(MessageEvent{
		ChatID:   "unit@g.us",
		ChatKind: "group",
		Sender:   "user@c.us",
		Text:     "!kick @victim",
		Mentions: []string{"victim@c.us"},
	})

	req.Equal(domain.ChatID("unit@g.us"), msg.Chat.ID)
	req.True(msg.Chat.IsGroup())
	req.Equal(domain.Actor("user@c.us"), msg.Sender)
	req.Equal([]domain.Actor{"victim@c.us"}, msg.Mentions)
	req.False(msg.FromSelf)
}

func Test_toInboundMessage_defaults_unknown_kinds_to_direct(t *testing.T) {
	msg := toInboundMessage(MessageEvent{ChatID: "user@c.us", ChatKind: "broadcast"})
	require.False(t, msg.Chat.IsGroup())
}

func Test_toRosterEvent_accepts_only_known_actions(t *testing.T) {
	req := require.New(t)

	evt, ok := toRosterEvent(RosterEvent{
		ChatID: "unit@g.us", Action: "joined", Participants: []string{"a@c.us", "b@c.us"},
	})
	req.True(ok)
	req.Equal(event.ParticipantJoined, evt.Action)
	req.True(evt.Chat.IsGroup())
	req.Len(evt.Participants, 2)

	_, ok = toRosterEvent(RosterEvent{ChatID: "unit@g.us", Action: "renamed"})
	req.False(ok)
}

func Test_participant_payloads_roundtrip_to_domain(t *testing.T) {
	req := require.New(t)

	got := toParticipants([]ParticipantPayload{
		{ID: "admin@c.us", IsAdmin: true},
		{ID: "user@c.us"},
	})

	req.Equal([]domain.Participant{
		{ID: "admin@c.us", IsAdmin: true},
		{ID: "user@c.us"},
	}, got)
}

func Test_actor_conversion_preserves_order(t *testing.T) {
	req := require.New(t)
	actors := []domain.Actor{"a@c.us", "b@c.us"}

	req.Equal([]string{"a@c.us", "b@c.us"}, fromActors(actors))
	req.Equal(actors, toActors([]string{"a@c.us", "b@c.us"}))
}
