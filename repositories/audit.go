//go:generate go run go.uber.org/mock/mockgen -source=audit.go -destination=../mocks/mock_audit_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

type AuditKind string

const (
	KindModeration AuditKind = "moderation"
	KindRoster     AuditKind = "roster"
)

// AuditRecord is one persisted enforcement decision. Command history is
// deliberately not recorded.
type AuditRecord struct {
	ID     uuid.UUID `cbor:"id"`
	Kind   AuditKind `cbor:"kind"`
	Chat   string    `cbor:"chat"`
	Actor  string    `cbor:"actor"`
	Detail string    `cbor:"detail"`
	Lang   string    `cbor:"lang,omitempty"`
	At     time.Time `cbor:"at"`
}

type IAuditRepository interface {
	Store(rec AuditRecord) error
	Recent(limit int) ([]AuditRecord, error)
}

type AuditRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewAuditRepository(db *badger.DB, log *slog.Logger) AuditRepository {
	return AuditRepository{db: db, log: log}
}

// Store persists a record. The key is "audit:{timestamp_padded}:{kind}:{uuid}":
//  1. 19-digit zero padding keeps chronological order lexicographical.
//  2. The UUID disambiguates two records landing on the same nanosecond.
func (r AuditRepository) Store(rec AuditRecord) error {
	key := fmt.Sprintf("audit:%019d:%s:%s", rec.At.UnixNano(), rec.Kind, rec.ID)
	value, err := cbor.Marshal(rec)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

// Recent returns up to limit records, oldest first, via a prefix scan.
func (r AuditRepository) Recent(limit int) ([]AuditRecord, error) {
	var records []AuditRecord
	prefix := []byte("audit:")
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var rec AuditRecord
				if err := cbor.Unmarshal(val, &rec); err != nil {
					return err
				}
				records = append(records, rec)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(records) > limit {
		records = records[len(records)-limit:]
	}
	return records, nil
}
