//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"ares-gme/domain"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Transport is the narrow surface the engine consumes from the chat gateway.
// Every call is fallible and must be invoked with a caller-supplied timeout;
// the engine issues no automatic retries.
type Transport interface {
	FetchRoster(ctx context.Context, chat domain.ChatID) ([]domain.Participant, error)
	SendMessage(ctx context.Context, chat domain.ChatID, text string, mentions []domain.Actor) error
	SetChatTitle(ctx context.Context, chat domain.ChatID, title string) error
	RemoveParticipants(ctx context.Context, chat domain.ChatID, targets []domain.Actor) error
	PromoteParticipants(ctx context.Context, chat domain.ChatID, targets []domain.Actor) error
	DemoteParticipants(ctx context.Context, chat domain.ChatID, targets []domain.Actor) error
}

// Auditor records enforcement decisions for later inspection. Implementations
// must never block or fail the caller: an audit write problem is logged on
// their side and swallowed.
type Auditor interface {
	ModerationFlagged(chat domain.ChatID, sender domain.Actor, text string)
	RosterNotice(chat domain.ChatID, action string, target domain.Actor)
}
