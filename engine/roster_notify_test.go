package engine_test

import (
	"ares-gme/domain"
	"ares-gme/domain/event"
	"ares-gme/engine"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newNotifierFixtures(t *testing.T, rosters map[domain.ChatID][]domain.Participant) (*engine.RosterNotifier, *fakeTransport, *recordingAuditor) {
	t.Helper()
	log := slog.Default()
	transport := &fakeTransport{rosters: rosters}
	audit := &recordingAuditor{}
	roster := engine.NewRosterCache(transport, time.Minute, time.Second, log)
	notifier := engine.NewRosterNotifier(log, transport, roster, audit, botID, "!", time.Second)
	return notifier, transport, audit
}

func rosterEvent(action event.RosterAction, participants ...domain.Actor) event.RosterEvent {
	return event.RosterEvent{Chat: groupChat, Action: action, Participants: participants}
}

func Test_Join_event_posts_a_welcome_mentioning_the_newcomer(t *testing.T) {
	req := require.New(t)
	notifier, transport, audit := newNotifierFixtures(t, adminBotRoster())

	notifier.HandleEvent(context.Background(), rosterEvent(event.ParticipantJoined, userID))

	req.Len(transport.sent, 1)
	req.Contains(transport.sent[0].Text, "Welcome, Agent @user")
	req.Contains(transport.sent[0].Text, "!protocol")
	req.Equal([]domain.Actor{userID}, transport.sent[0].Mentions)
	req.Equal(1, audit.roster)
}

func Test_Leave_event_posts_a_farewell(t *testing.T) {
	req := require.New(t)
	notifier, transport, _ := newNotifierFixtures(t, adminBotRoster())

	notifier.HandleEvent(context.Background(), rosterEvent(event.ParticipantLeft, userID))

	req.Len(transport.sent, 1)
	req.Contains(transport.sent[0].Text, "UNIT DISBANDMENT")
	req.Contains(transport.sent[0].Text, "@user")
}

func Test_Batched_event_acts_on_the_first_participant_only(t *testing.T) {
	req := require.New(t)
	notifier, transport, _ := newNotifierFixtures(t, adminBotRoster())

	other := domain.Actor("other@c.us")
	notifier.HandleEvent(context.Background(), rosterEvent(event.ParticipantJoined, userID, other))

	req.Len(transport.sent, 1)
	req.Contains(transport.sent[0].Text, "@user")
	req.NotContains(transport.sent[0].Text, "@other")
}

func Test_Event_without_participants_is_dropped(t *testing.T) {
	notifier, transport, _ := newNotifierFixtures(t, adminBotRoster())

	notifier.HandleEvent(context.Background(), rosterEvent(event.ParticipantJoined))

	require.Empty(t, transport.sent)
	require.Zero(t, transport.fetches)
}

func Test_Notices_stay_silent_when_the_bot_is_not_admin(t *testing.T) {
	rosters := map[domain.ChatID][]domain.Participant{
		groupChat.ID: {{ID: botID}, {ID: userID}},
	}
	notifier, transport, audit := newNotifierFixtures(t, rosters)

	notifier.HandleEvent(context.Background(), rosterEvent(event.ParticipantJoined, userID))

	require.Empty(t, transport.sent)
	require.Zero(t, audit.roster)
}

func Test_Notices_are_skipped_when_the_roster_is_unavailable(t *testing.T) {
	notifier, transport, audit := newNotifierFixtures(t, adminBotRoster())
	transport.rosterErr = context.DeadlineExceeded

	notifier.HandleEvent(context.Background(), rosterEvent(event.ParticipantJoined, userID))

	require.Empty(t, transport.sent)
	require.Zero(t, audit.roster)
}

func Test_Event_invalidates_the_cached_roster(t *testing.T) {
	req := require.New(t)
	notifier, transport, _ := newNotifierFixtures(t, adminBotRoster())

	notifier.HandleEvent(context.Background(), rosterEvent(event.ParticipantJoined, userID))
	notifier.HandleEvent(context.Background(), rosterEvent(event.ParticipantLeft, userID))

	// Each event drops the snapshot before the admin check, so the transport
	// is consulted once per event despite the long TTL.
	req.Equal(2, transport.fetches)
}
