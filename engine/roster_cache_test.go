package engine_test

import (
	"ares-gme/domain"
	"ares-gme/engine"
	"ares-gme/errors"
	"ares-gme/mocks"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_Participants_serves_the_cached_snapshot_within_the_ttl(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)
	roster := []domain.Participant{{ID: adminID, IsAdmin: true}, {ID: userID}}
	transport.EXPECT().
		FetchRoster(gomock.Any(), groupChat.ID).
		Return(roster, nil).
		Times(1)

	cache := engine.NewRosterCache(transport, time.Minute, time.Second, slog.Default())

	for range 3 {
		got, err := cache.Participants(context.Background(), groupChat.ID)
		req.NoError(err)
		req.Equal(roster, got)
	}
}

func Test_Participants_refetches_once_the_ttl_expires(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)
	transport.EXPECT().
		FetchRoster(gomock.Any(), groupChat.ID).
		Return([]domain.Participant{{ID: userID}}, nil).
		Times(2)

	cache := engine.NewRosterCache(transport, time.Millisecond, time.Second, slog.Default())

	_, err := cache.Participants(context.Background(), groupChat.ID)
	req.NoError(err)
	time.Sleep(5 * time.Millisecond)
	_, err = cache.Participants(context.Background(), groupChat.ID)
	req.NoError(err)
}

func Test_Participants_wraps_transport_faults_as_roster_unavailable(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)
	transport.EXPECT().
		FetchRoster(gomock.Any(), groupChat.ID).
		Return(nil, fmt.Errorf("gateway offline"))

	cache := engine.NewRosterCache(transport, time.Minute, time.Second, slog.Default())

	_, err := cache.Participants(context.Background(), groupChat.ID)
	req.ErrorIs(err, errors.ErrRosterUnavailable)
}

func Test_Fetch_errors_do_not_poison_the_cache(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)
	gomock.InOrder(
		transport.EXPECT().
			FetchRoster(gomock.Any(), groupChat.ID).
			Return(nil, fmt.Errorf("gateway offline")),
		transport.EXPECT().
			FetchRoster(gomock.Any(), groupChat.ID).
			Return([]domain.Participant{{ID: userID}}, nil),
	)

	cache := engine.NewRosterCache(transport, time.Minute, time.Second, slog.Default())

	_, err := cache.Participants(context.Background(), groupChat.ID)
	req.Error(err)
	got, err := cache.Participants(context.Background(), groupChat.ID)
	req.NoError(err)
	req.Len(got, 1)
}

func Test_Invalidate_forces_the_next_lookup_to_refetch(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)
	transport.EXPECT().
		FetchRoster(gomock.Any(), groupChat.ID).
		Return([]domain.Participant{{ID: userID}}, nil).
		Times(2)

	cache := engine.NewRosterCache(transport, time.Minute, time.Second, slog.Default())

	_, err := cache.Participants(context.Background(), groupChat.ID)
	req.NoError(err)
	cache.Invalidate(groupChat.ID)
	_, err = cache.Participants(context.Background(), groupChat.ID)
	req.NoError(err)
}

func Test_Admins_filters_the_flagged_subset(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)
	transport.EXPECT().
		FetchRoster(gomock.Any(), groupChat.ID).
		Return([]domain.Participant{
			{ID: botID, IsAdmin: true},
			{ID: adminID, IsAdmin: true},
			{ID: userID},
		}, nil)

	cache := engine.NewRosterCache(transport, time.Minute, time.Second, slog.Default())

	admins, err := cache.Admins(context.Background(), groupChat.ID)
	req.NoError(err)
	req.Equal([]domain.Actor{botID, adminID}, admins)
}

func Test_IsAdmin_treats_absent_actors_as_not_admin(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)
	transport.EXPECT().
		FetchRoster(gomock.Any(), groupChat.ID).
		Return([]domain.Participant{{ID: adminID, IsAdmin: true}}, nil)

	cache := engine.NewRosterCache(transport, time.Minute, time.Second, slog.Default())

	admin, err := cache.IsAdmin(context.Background(), groupChat.ID, domain.Actor("stranger@c.us"))
	req.NoError(err)
	req.False(admin)
}
