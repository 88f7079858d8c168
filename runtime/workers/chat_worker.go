package workers

import (
	"ares-gme/contract"
	"ares-gme/domain"
	"context"
	"log/slog"
)

// Ensure *ChatWorker implements the contract.Worker interface at compile time.
var _ contract.Worker = (*ChatWorker)(nil)

// MessageHandler is the dispatch entry point a ChatWorker drives.
type MessageHandler interface {
	HandleMessage(ctx context.Context, msg domain.InboundMessage)
}

// ChatWorker drains one shard queue. Every chat id hashes to exactly one
// shard, so messages of the same chat are processed in order while
// independent chats proceed concurrently on other workers.
type ChatWorker struct {
	messages   chan domain.InboundMessage
	dispatcher MessageHandler
	log        *slog.Logger
}

func NewChatWorker(messages chan domain.InboundMessage, dispatcher MessageHandler, log *slog.Logger) *ChatWorker {
	return &ChatWorker{messages: messages, dispatcher: dispatcher, log: log}
}

func (w *ChatWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case msg, ok := <-w.messages:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			w.dispatcher.HandleMessage(ctx, msg)
		}
	}
}
