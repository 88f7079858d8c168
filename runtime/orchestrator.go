// Package runtime wires event intake to the supervised worker pool. It
// orchestrates the system without containing business logic or domain rules.
package runtime

import (
	"ares-gme/contract"
	"ares-gme/domain"
	"ares-gme/domain/event"
	"ares-gme/runtime/workers"
	"context"
	"hash/fnv"
	"log/slog"
	"time"
)

// Orchestrator owns the bounded shard queues and the supervised workers.
// Inbound messages shard by chat id so each chat is processed in order by a
// single worker; roster events flow to a dedicated worker, bypassing command
// dispatch. Full queues drop with a warning rather than blocking the
// transport's read pump.
type Orchestrator struct {
	log               *slog.Logger
	supervisor        contract.ISupervisor
	dispatcher        workers.MessageHandler
	notifier          workers.RosterEventHandler
	queues            []chan domain.InboundMessage
	rosterEvents      chan event.RosterEvent
	extra             []contract.Worker
	telemetryInterval time.Duration
}

func NewOrchestrator(
	log *slog.Logger,
	supervisor contract.ISupervisor,
	dispatcher workers.MessageHandler,
	notifier workers.RosterEventHandler,
	numWorkers, bufferSize int,
	telemetryInterval time.Duration,
) *Orchestrator {
	queues := make([]chan domain.InboundMessage, numWorkers)
	for i := range queues {
		queues[i] = make(chan domain.InboundMessage, bufferSize)
	}
	return &Orchestrator{
		log:               log,
		supervisor:        supervisor,
		dispatcher:        dispatcher,
		notifier:          notifier,
		queues:            queues,
		rosterEvents:      make(chan event.RosterEvent, bufferSize),
		telemetryInterval: telemetryInterval,
	}
}

// Add registers extra workers (e.g. the gateway read pump) to be supervised
// alongside the pool.
func (o *Orchestrator) Add(w ...contract.Worker) {
	o.extra = append(o.extra, w...)
}

// Submit routes one inbound message to its chat's shard queue.
func (o *Orchestrator) Submit(msg domain.InboundMessage) {
	queue := o.queues[shardFor(msg.Chat.ID, len(o.queues))]
	select {
	case queue <- msg:
	default:
		o.log.Warn("Inbound queue full, dropping message", "chat", msg.Chat.ID)
	}
}

// SubmitRosterEvent routes one membership change to the roster worker.
func (o *Orchestrator) SubmitRosterEvent(evt event.RosterEvent) {
	select {
	case o.rosterEvents <- evt:
	default:
		o.log.Warn("Roster queue full, dropping event", "chat", evt.Chat.ID)
	}
}

// SubmitConnectionState records transport connectivity transitions. The
// engine takes no action: reconnects belong to the gateway.
func (o *Orchestrator) SubmitConnectionState(state string) {
	o.log.Info("Transport connection state changed", "state", state)
}

// Start registers all workers with the supervisor and launches supervision.
// It returns immediately; Stop triggers the graceful drain.
func (o *Orchestrator) Start(ctx context.Context) {
	for _, queue := range o.queues {
		o.supervisor.Add(workers.NewChatWorker(queue, o.dispatcher, o.log))
	}
	o.supervisor.Add(workers.NewRosterWorker(o.rosterEvents, o.notifier, o.log))
	o.supervisor.Add(workers.NewTelemetryWorker(o.log, o.telemetryInterval, o.queueStats))
	o.supervisor.Add(o.extra...)

	o.log.Info("Starting orchestrator and all supervised workers",
		"chat_workers", len(o.queues))
	go o.supervisor.Run(ctx)
}

// Stop cancels supervision; workers exit once their current event finishes.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}

func (o *Orchestrator) queueStats() (int, int) {
	depth, capacity := 0, 0
	for _, q := range o.queues {
		depth += len(q)
		capacity += cap(q)
	}
	return depth, capacity
}

// shardFor maps a chat id to a stable worker index.
func shardFor(chat domain.ChatID, shards int) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(chat))
	return int(h.Sum32() % uint32(shards))
}
