// Package stream reconciles a client session's three comment event sources --
// its own optimistic writes, direct write confirmations, and the storage
// change feed -- into one duplicate-free, append-ordered view. It is
// UI-framework independent: a mutex-guarded state machine whose callers feed
// it events in arrival order.
package stream

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Pranav99t/polytask/internal/domain"
	"github.com/Pranav99t/polytask/internal/notify"
)

type State string

const (
	// StateOptimistic marks a locally created item awaiting confirmation.
	StateOptimistic State = "optimistic"
	// StateConfirmed marks an item with a real id, via either arrival path.
	StateConfirmed State = "confirmed"
	// StateTranslated marks a confirmed item whose displayed text has been
	// replaced by a translation for the session locale.
	StateTranslated State = "translated"
)

// Item is one row of the visible list.
type Item struct {
	// TempID is set while the item is optimistic, empty once confirmed.
	TempID    string
	ID        int64
	AuthorID  int64
	Content   string
	State     State
	CreatedAt time.Time
}

// Reconciler holds one session's view of a comment thread.
//
// Invariants: the visible order is append-order by creation attempt; the
// processed-id set is the single source of truth for "already displayed", so
// the direct-response and change-feed paths can never both insert an item;
// every optimistic marker is eventually replaced or removed.
type Reconciler struct {
	mu        sync.Mutex
	locale    domain.Locale
	items     []*Item
	processed *idSet
}

// New builds a reconciler for one session viewing in locale. dedupSize bounds
// the processed-id set; see newIDSet for the default.
func New(locale domain.Locale, dedupSize int) *Reconciler {
	return &Reconciler{locale: locale, processed: newIDSet(dedupSize)}
}

// Submit records a user's new comment before any network round trip: the
// optimistic marker is appended at the end and the temp id returned for the
// write call. Callers clear their input immediately after.
func (r *Reconciler) Submit(authorID int64, content string) string {
	tempID := uuid.NewString()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, &Item{
		TempID:    tempID,
		AuthorID:  authorID,
		Content:   content,
		State:     StateOptimistic,
		CreatedAt: time.Now(),
	})
	return tempID
}

// ConfirmWrite applies a successful write response. If the change feed has
// not delivered the comment yet, the optimistic marker is replaced in place;
// if it got there first the feed handler already owns the item and this is a
// no-op beyond discarding the marker.
func (r *Reconciler) ConfirmWrite(tempID string, c *domain.Comment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.processed.Contains(c.ID) {
		r.removeMarker(tempID)
		return
	}
	if it := r.findMarker(tempID); it != nil {
		confirm(it, c)
	} else {
		r.append(c)
	}
	r.processed.Add(c.ID)
}

// FailWrite removes the marker for a failed write and hands the draft text
// back so the user's input can be restored.
func (r *Reconciler) FailWrite(tempID string) (draft string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if it := r.findMarker(tempID); it != nil {
		draft = it.Content
		r.removeMarker(tempID)
		return draft, true
	}
	return "", false
}

// Apply feeds one change-feed event into the view. Events for other tables or
// locales are ignored. An insert that matches no local state is a fresh
// append, never an error.
func (r *Reconciler) Apply(ev notify.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch ev.Type {
	case notify.EventCreated:
		if c, ok := ev.Row.(*domain.Comment); ok {
			r.applyCreated(c)
		}
	case notify.EventUpdated:
		if c, ok := ev.Row.(*domain.Comment); ok {
			if it := r.findByID(c.ID); it != nil {
				it.Content = c.Content
			}
		}
	case notify.EventDeleted:
		if c, ok := ev.Row.(*domain.Comment); ok {
			r.removeByID(c.ID)
			r.processed.Remove(c.ID)
		}
	case notify.EventTranslated:
		if t, ok := ev.Row.(*domain.Translation); ok {
			r.applyTranslated(t)
		}
	}
}

// Run drains feed in arrival order until the channel closes or ctx is done.
func (r *Reconciler) Run(ctx context.Context, feed <-chan notify.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-feed:
			if !ok {
				return
			}
			r.Apply(ev)
		}
	}
}

// Items returns a snapshot of the visible list in display order.
func (r *Reconciler) Items() []Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Item, len(r.items))
	for i, it := range r.items {
		out[i] = *it
	}
	return out
}

func (r *Reconciler) applyCreated(c *domain.Comment) {
	if r.processed.Contains(c.ID) {
		// The direct response path already displayed it.
		return
	}
	// The temp id is unknown to the feed, so a still-pending marker is
	// matched by author identity.
	if it := r.findPendingByAuthor(c.AuthorID); it != nil {
		confirm(it, c)
	} else {
		r.append(c)
	}
	r.processed.Add(c.ID)
}

func (r *Reconciler) applyTranslated(t *domain.Translation) {
	if t.EntityKind != domain.KindComment || t.Locale != r.locale {
		return
	}
	it := r.findByID(t.EntityID)
	if it == nil || it.State == StateOptimistic {
		return
	}
	if text := t.Fields[domain.FieldContent]; text != "" {
		// Text only; identity, position and metadata stay put.
		it.Content = text
		it.State = StateTranslated
	}
}

// confirm promotes a marker in place, keeping its list position.
func confirm(it *Item, c *domain.Comment) {
	it.TempID = ""
	it.ID = c.ID
	it.AuthorID = c.AuthorID
	it.Content = c.Content
	it.State = StateConfirmed
	it.CreatedAt = c.CreatedAt
}

func (r *Reconciler) append(c *domain.Comment) {
	r.items = append(r.items, &Item{
		ID:        c.ID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		State:     StateConfirmed,
		CreatedAt: c.CreatedAt,
	})
}

func (r *Reconciler) findMarker(tempID string) *Item {
	for _, it := range r.items {
		if it.State == StateOptimistic && it.TempID == tempID {
			return it
		}
	}
	return nil
}

func (r *Reconciler) findPendingByAuthor(authorID int64) *Item {
	for _, it := range r.items {
		if it.State == StateOptimistic && it.AuthorID == authorID {
			return it
		}
	}
	return nil
}

func (r *Reconciler) findByID(id int64) *Item {
	for _, it := range r.items {
		if it.State != StateOptimistic && it.ID == id {
			return it
		}
	}
	return nil
}

func (r *Reconciler) removeMarker(tempID string) {
	for i, it := range r.items {
		if it.State == StateOptimistic && it.TempID == tempID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return
		}
	}
}

func (r *Reconciler) removeByID(id int64) {
	for i, it := range r.items {
		if it.State != StateOptimistic && it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return
		}
	}
}
