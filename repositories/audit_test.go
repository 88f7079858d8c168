package repositories_test

import (
	"ares-gme/mocks"
	"ares-gme/repositories"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func SetupTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func record(kind repositories.AuditKind, at time.Time, detail string) repositories.AuditRecord {
	return repositories.AuditRecord{
		ID:     uuid.New(),
		Kind:   kind,
		Chat:   "unit@g.us",
		Actor:  "user@c.us",
		Detail: detail,
		At:     at,
	}
}

func Test_Store_then_Recent_roundtrips_a_record(t *testing.T) {
	req := require.New(t)
	repo := repositories.NewAuditRepository(SetupTestDB(t), slog.Default())

	rec := record(repositories.KindModeration, time.Now().UTC(), "see www.example.com")
	rec.Lang = "en"
	req.NoError(repo.Store(rec))

	got, err := repo.Recent(0)
	req.NoError(err)
	req.Len(got, 1)
	req.Equal(rec.ID, got[0].ID)
	req.Equal(repositories.KindModeration, got[0].Kind)
	req.Equal("see www.example.com", got[0].Detail)
	req.Equal("en", got[0].Lang)
	req.True(rec.At.Equal(got[0].At))
}

func Test_Recent_returns_records_oldest_first_across_kinds(t *testing.T) {
	req := require.New(t)
	repo := repositories.NewAuditRepository(SetupTestDB(t), slog.Default())

	base := time.Now().UTC()
	// Insert out of order; key padding must restore chronology.
	req.NoError(repo.Store(record(repositories.KindRoster, base.Add(2*time.Second), "third")))
	req.NoError(repo.Store(record(repositories.KindModeration, base, "first")))
	req.NoError(repo.Store(record(repositories.KindModeration, base.Add(time.Second), "second")))

	got, err := repo.Recent(0)
	req.NoError(err)
	req.Len(got, 3)
	req.Equal("first", got[0].Detail)
	req.Equal("second", got[1].Detail)
	req.Equal("third", got[2].Detail)
}

func Test_Recent_limit_keeps_the_newest_tail(t *testing.T) {
	req := require.New(t)
	repo := repositories.NewAuditRepository(SetupTestDB(t), slog.Default())

	base := time.Now().UTC()
	for i := range 5 {
		req.NoError(repo.Store(record(repositories.KindModeration,
			base.Add(time.Duration(i)*time.Second), fmt.Sprintf("entry-%d", i))))
	}

	got, err := repo.Recent(2)
	req.NoError(err)
	req.Len(got, 2)
	req.Equal("entry-3", got[0].Detail)
	req.Equal("entry-4", got[1].Detail)
}

func Test_Recorder_enriches_moderation_records_with_language(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIAuditRepository(ctrl)

	var stored repositories.AuditRecord
	repo.EXPECT().
		Store(gomock.Any()).
		DoAndReturn(func(rec repositories.AuditRecord) error {
			stored = rec
			return nil
		})

	recorder := repositories.NewAuditRecorder(repo, slog.Default())
	recorder.ModerationFlagged("unit@g.us", "user@c.us",
		"Please everyone should visit www.example.com because the offer there is really worth your time")

	req.Equal(repositories.KindModeration, stored.Kind)
	req.Equal("unit@g.us", stored.Chat)
	req.Equal("user@c.us", stored.Actor)
	req.NotEmpty(stored.Lang)
	req.NotEqual(uuid.Nil, stored.ID)
	req.False(stored.At.IsZero())
}

func Test_Recorder_swallows_storage_failures(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIAuditRepository(ctrl)
	repo.EXPECT().Store(gomock.Any()).Return(fmt.Errorf("disk full")).Times(2)

	recorder := repositories.NewAuditRecorder(repo, slog.Default())
	recorder.ModerationFlagged("unit@g.us", "user@c.us", "www.example.com")
	recorder.RosterNotice("unit@g.us", "joined", "user@c.us")
}

func Test_Recorder_stores_roster_notices_without_language(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIAuditRepository(ctrl)

	var stored repositories.AuditRecord
	repo.EXPECT().
		Store(gomock.Any()).
		DoAndReturn(func(rec repositories.AuditRecord) error {
			stored = rec
			return nil
		})

	recorder := repositories.NewAuditRecorder(repo, slog.Default())
	recorder.RosterNotice("unit@g.us", "left", "user@c.us")

	req.Equal(repositories.KindRoster, stored.Kind)
	req.Equal("left", stored.Detail)
	req.Empty(stored.Lang)
}
