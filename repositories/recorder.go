package repositories

import (
	"ares-gme/domain"
	"log/slog"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"
)

// AuditRecorder adapts the repository to the engine-facing contract.Auditor:
// it enriches records and swallows write failures so a storage problem never
// reaches the dispatch path.
type AuditRecorder struct {
	repo IAuditRepository
	log  *slog.Logger
}

func NewAuditRecorder(repo IAuditRepository, log *slog.Logger) AuditRecorder {
	return AuditRecorder{repo: repo, log: log}
}

func (r AuditRecorder) ModerationFlagged(chat domain.ChatID, sender domain.Actor, text string) {
	info := whatlanggo.Detect(text)
	rec := AuditRecord{
		ID:     uuid.New(),
		Kind:   KindModeration,
		Chat:   string(chat),
		Actor:  string(sender),
		Detail: text,
		Lang:   info.Lang.Iso6391(),
		At:     time.Now().UTC(),
	}
	if err := r.repo.Store(rec); err != nil {
		r.log.Warn("Audit write failed", "kind", rec.Kind, "error", err)
	}
}

func (r AuditRecorder) RosterNotice(chat domain.ChatID, action string, target domain.Actor) {
	rec := AuditRecord{
		ID:     uuid.New(),
		Kind:   KindRoster,
		Chat:   string(chat),
		Actor:  string(target),
		Detail: action,
		At:     time.Now().UTC(),
	}
	if err := r.repo.Store(rec); err != nil {
		r.log.Warn("Audit write failed", "kind", rec.Kind, "error", err)
	}
}
