package gateway

import (
	"ares-gme/contract"
	"ares-gme/domain"
	"ares-gme/domain/event"
	"ares-gme/errors"
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Compile-time checks: the client is both the engine's transport and a
// supervised worker (its read pump).
var (
	_ contract.Transport = (*Client)(nil)
	_ contract.Worker    = (*Client)(nil)
)

// Handlers receive pushed gateway events. All callbacks run on the read pump
// goroutine and must hand work off quickly (the orchestrator's Submit
// methods are non-blocking).
type Handlers struct {
	OnMessage         func(msg domain.InboundMessage)
	OnRosterEvent     func(evt event.RosterEvent)
	OnConnectionState func(state string)
}

// Client speaks the gateway frame protocol over one websocket. Run is the
// read pump; a broken connection surfaces as a worker error so the
// supervisor's restart loop performs the redial.
type Client struct {
	log      *slog.Logger
	url      string
	handlers Handlers

	connMu  sync.Mutex
	conn    *websocket.Conn
	writeMu sync.Mutex

	pendingMu sync.Mutex
	pending   map[string]chan ResponsePayload
}

func NewClient(url string, handlers Handlers, log *slog.Logger) *Client {
	return &Client{
		log:      log,
		url:      url,
		handlers: handlers,
		pending:  make(map[string]chan ResponsePayload),
	}
}

// SetHandlers replaces the event callbacks. Call before Run starts: the
// read pump reads the struct without synchronization.
func (c *Client) SetHandlers(handlers Handlers) {
	c.handlers = handlers
}

// Run dials the gateway if needed and pumps frames until the connection or
// the context dies. It implements contract.Worker: any error hands control
// back to the supervisor, which redials after its restart delay.
func (c *Client) Run(ctx context.Context) error {
	conn, err := c.ensureConn(ctx)
	if err != nil {
		return err
	}

	// The websocket read has no context; closing the connection unblocks it.
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	for {
		var frame Frame
		if err := conn.ReadJSON(&frame); err != nil {
			c.dropConn()
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("gateway read: %w", err)
		}
		c.handleFrame(frame)
	}
}

func (c *Client) ensureConn(ctx context.Context) (*websocket.Conn, error) {
	c.connMu.Lock()
	defer c.connMu.Unlock()
	if c.conn != nil {
		return c.conn, nil
	}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("gateway dial %s: %w", c.url, err)
	}
	c.log.Info("Gateway connection established", "url", c.url)
	c.conn = conn
	return conn, nil
}

func (c *Client) dropConn() {
	c.connMu.Lock()
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
	c.connMu.Unlock()

	// Fail every in-flight request; callers see a transport failure, not a hang.
	c.pendingMu.Lock()
	for id, ch := range c.pending {
		ch <- ResponsePayload{OK: false, Error: "gateway connection lost"}
		delete(c.pending, id)
	}
	c.pendingMu.Unlock()
}

func (c *Client) handleFrame(frame Frame) {
	switch frame.Type {
	case frameResponse:
		if frame.Response == nil {
			return
		}
		c.pendingMu.Lock()
		ch, ok := c.pending[frame.ID]
		delete(c.pending, frame.ID)
		c.pendingMu.Unlock()
		if ok {
			ch <- *frame.Response
		}
	case frameEvent:
		c.handleEvent(frame.Event)
	default:
		c.log.Debug("Unexpected gateway frame", "type", frame.Type)
	}
}

func (c *Client) handleEvent(payload *EventPayload) {
	if payload == nil {
		return
	}
	switch payload.Kind {
	case "message":
		if payload.Message != nil && c.handlers.OnMessage != nil {
			c.handlers.OnMessage(toInboundMessage(*payload.Message))
		}
	case "roster":
		if payload.Roster != nil && c.handlers.OnRosterEvent != nil {
			if evt, ok := toRosterEvent(*payload.Roster); ok {
				c.handlers.OnRosterEvent(evt)
			}
		}
	case "connection":
		if payload.Connection != nil && c.handlers.OnConnectionState != nil {
			c.handlers.OnConnectionState(payload.Connection.State)
		}
	default:
		c.log.Debug("Unknown gateway event kind", "kind", payload.Kind)
	}
}

// roundTrip sends one request frame and waits for its correlated response or
// the context deadline; past that bound the call is failed, never hung.
func (c *Client) roundTrip(ctx context.Context, req RequestPayload) (ResponsePayload, error) {
	c.connMu.Lock()
	conn := c.conn
	c.connMu.Unlock()
	if conn == nil {
		return ResponsePayload{}, errors.ErrGatewayOffline
	}

	id := uuid.NewString()
	ch := make(chan ResponsePayload, 1)
	c.pendingMu.Lock()
	c.pending[id] = ch
	c.pendingMu.Unlock()
	defer func() {
		c.pendingMu.Lock()
		delete(c.pending, id)
		c.pendingMu.Unlock()
	}()

	c.writeMu.Lock()
	err := conn.WriteJSON(Frame{Type: frameRequest, ID: id, Request: &req})
	c.writeMu.Unlock()
	if err != nil {
		return ResponsePayload{}, fmt.Errorf("gateway write: %w", err)
	}

	select {
	case <-ctx.Done():
		return ResponsePayload{}, ctx.Err()
	case resp := <-ch:
		if !resp.OK {
			return ResponsePayload{}, fmt.Errorf("%w: %s", errors.ErrTransportFailure, resp.Error)
		}
		return resp, nil
	}
}

// --- contract.Transport ---

func (c *Client) FetchRoster(ctx context.Context, chat domain.ChatID) ([]domain.Participant, error) {
	resp, err := c.roundTrip(ctx, RequestPayload{Op: opFetchRoster, ChatID: string(chat)})
	if err != nil {
		return nil, err
	}
	return toParticipants(resp.Participants), nil
}

func (c *Client) SendMessage(ctx context.Context, chat domain.ChatID, text string, mentions []domain.Actor) error {
	_, err := c.roundTrip(ctx, RequestPayload{
		Op: opSendMessage, ChatID: string(chat), Text: text, Mentions: fromActors(mentions),
	})
	return err
}

func (c *Client) SetChatTitle(ctx context.Context, chat domain.ChatID, title string) error {
	_, err := c.roundTrip(ctx, RequestPayload{Op: opSetTitle, ChatID: string(chat), Title: title})
	return err
}

func (c *Client) RemoveParticipants(ctx context.Context, chat domain.ChatID, targets []domain.Actor) error {
	_, err := c.roundTrip(ctx, RequestPayload{Op: opRemove, ChatID: string(chat), Targets: fromActors(targets)})
	return err
}

func (c *Client) PromoteParticipants(ctx context.Context, chat domain.ChatID, targets []domain.Actor) error {
	_, err := c.roundTrip(ctx, RequestPayload{Op: opPromote, ChatID: string(chat), Targets: fromActors(targets)})
	return err
}

func (c *Client) DemoteParticipants(ctx context.Context, chat domain.ChatID, targets []domain.Actor) error {
	_, err := c.roundTrip(ctx, RequestPayload{Op: opDemote, ChatID: string(chat), Targets: fromActors(targets)})
	return err
}
