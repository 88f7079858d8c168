package runtime

import (
	"ares-gme/domain"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_shardFor_is_stable_and_in_range(t *testing.T) {
	req := require.New(t)
	chats := []domain.ChatID{"a@g.us", "b@g.us", "unit@g.us", "owner@c.us"}

	for _, chat := range chats {
		first := shardFor(chat, 4)
		req.GreaterOrEqual(first, 0)
		req.Less(first, 4)
		for range 10 {
			req.Equal(first, shardFor(chat, 4))
		}
	}
}

func Test_shardFor_single_shard_takes_everything(t *testing.T) {
	require.Equal(t, 0, shardFor("any@g.us", 1))
}

func Test_Submit_drops_when_the_shard_queue_is_full(t *testing.T) {
	req := require.New(t)
	o := NewOrchestrator(slog.Default(), nil, nil, nil, 1, 1, 0)

	msg := domain.InboundMessage{Chat: domain.Chat{ID: "unit@g.us", Kind: domain.ChatGroup}}
	o.Submit(msg)
	o.Submit(msg) // queue of one is full, this drops

	depth, capacity := o.queueStats()
	req.Equal(1, depth)
	req.Equal(1, capacity)
}

func Test_Submit_keeps_one_chat_on_one_shard(t *testing.T) {
	req := require.New(t)
	o := NewOrchestrator(slog.Default(), nil, nil, nil, 4, 8, 0)

	msg := domain.InboundMessage{Chat: domain.Chat{ID: "unit@g.us", Kind: domain.ChatGroup}}
	for range 5 {
		o.Submit(msg)
	}

	loaded := 0
	for _, q := range o.queues {
		if len(q) > 0 {
			loaded++
			req.Equal(5, len(q))
		}
	}
	req.Equal(1, loaded)
}
