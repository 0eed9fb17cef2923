// Package notify is the change-notification channel of the storage layer.
// Writers publish an event after every successful write; any number of
// subscribers receive the events matching their table and filter. Delivery is
// best-effort: a subscriber that stops draining loses events rather than
// blocking writers.
package notify

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Pranav99t/polytask/internal/domain"
)

type EventType string

const (
	EventCreated    EventType = "created"
	EventUpdated    EventType = "updated"
	EventDeleted    EventType = "deleted"
	EventTranslated EventType = "translated"
)

// Event is one change-feed notification: an event type plus the affected row.
// Row is the written entity for created/updated, the deleted entity (or one
// carrying just its id) for deleted, and a *domain.Translation for translated.
type Event struct {
	Type  EventType   `json:"type"`
	Table domain.Kind `json:"table"`
	Row   any         `json:"row"`
}

// Filter scopes a subscription, e.g. to one parent id. A nil Filter matches
// every event on the table.
type Filter func(Event) bool

const subscriberBuffer = 64

type subscriber struct {
	table  domain.Kind
	filter Filter
	ch     chan Event
}

// Hub fans events out to subscribers. The zero value is not usable; call New.
type Hub struct {
	mu   sync.RWMutex
	subs map[*subscriber]struct{}
}

func New() *Hub {
	return &Hub{subs: make(map[*subscriber]struct{})}
}

// Publish delivers ev to every matching subscriber without blocking. Safe to
// call on a nil hub, which makes the feed optional for callers.
func (h *Hub) Publish(ev Event) {
	if h == nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.subs {
		if s.table != ev.Table {
			continue
		}
		if s.filter != nil && !s.filter(ev) {
			continue
		}
		select {
		case s.ch <- ev:
		default:
			log.Warn().Str("table", string(ev.Table)).Str("type", string(ev.Type)).
				Msg("change feed subscriber too slow, dropping event")
		}
	}
}

// Subscribe registers for events on one table. The returned channel closes
// when cancel is called or ctx is done. cancel is idempotent.
func (h *Hub) Subscribe(ctx context.Context, table domain.Kind, filter Filter) (<-chan Event, func()) {
	s := &subscriber{table: table, filter: filter, ch: make(chan Event, subscriberBuffer)}

	h.mu.Lock()
	h.subs[s] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, s)
			h.mu.Unlock()
			close(s.ch)
		})
	}

	if ctx != nil {
		go func() {
			<-ctx.Done()
			cancel()
		}()
	}

	return s.ch, cancel
}
