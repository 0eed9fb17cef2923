package stream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pranav99t/polytask/internal/domain"
	"github.com/Pranav99t/polytask/internal/notify"
)

func created(c *domain.Comment) notify.Event {
	return notify.Event{Type: notify.EventCreated, Table: domain.KindComment, Row: c}
}

func deleted(c *domain.Comment) notify.Event {
	return notify.Event{Type: notify.EventDeleted, Table: domain.KindComment, Row: c}
}

func translated(id int64, locale domain.Locale, text string) notify.Event {
	return notify.Event{Type: notify.EventTranslated, Table: domain.KindComment, Row: &domain.Translation{
		EntityKind: domain.KindComment,
		EntityID:   id,
		Locale:     locale,
		Fields:     domain.Fields{domain.FieldContent: text},
	}}
}

func TestReconciler_SubmitShowsImmediately(t *testing.T) {
	t.Parallel()

	r := New(domain.LocaleEN, 0)
	r.Submit(42, "first")
	r.Submit(42, "second")

	items := r.Items()
	require.Len(t, items, 2)
	assert.Equal(t, StateOptimistic, items[0].State)
	assert.Equal(t, "first", items[0].Content)
	assert.Equal(t, "second", items[1].Content, "append order follows creation order")
}

func TestReconciler_NoDuplicate_ResponseBeforeNotification(t *testing.T) {
	t.Parallel()

	r := New(domain.LocaleEN, 0)
	tempID := r.Submit(42, "Hello team")
	c := &domain.Comment{ID: 10, TaskID: 1, AuthorID: 42, Content: "Hello team", CreatedAt: time.Now()}

	r.ConfirmWrite(tempID, c)
	r.Apply(created(c))

	items := r.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(10), items[0].ID)
	assert.Equal(t, StateConfirmed, items[0].State)
	assert.Empty(t, items[0].TempID)
}

func TestReconciler_NoDuplicate_NotificationBeforeResponse(t *testing.T) {
	t.Parallel()

	r := New(domain.LocaleEN, 0)
	tempID := r.Submit(42, "Hello team")
	c := &domain.Comment{ID: 10, TaskID: 1, AuthorID: 42, Content: "Hello team", CreatedAt: time.Now()}

	r.Apply(created(c))
	r.ConfirmWrite(tempID, c)

	items := r.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(10), items[0].ID)
	assert.Equal(t, StateConfirmed, items[0].State)
}

func TestReconciler_DedupIsAuthorScoped(t *testing.T) {
	t.Parallel()

	r := New(domain.LocaleEN, 0)
	tempA := r.Submit(1, "from alice")
	r.Submit(2, "from bob")

	// Bob's confirmation arrives over the feed first; it must not consume
	// Alice's marker.
	bob := &domain.Comment{ID: 20, AuthorID: 2, Content: "from bob"}
	r.Apply(created(bob))

	alice := &domain.Comment{ID: 21, AuthorID: 1, Content: "from alice"}
	r.ConfirmWrite(tempA, alice)
	r.Apply(created(alice))

	items := r.Items()
	require.Len(t, items, 2)
	assert.Equal(t, int64(21), items[0].ID, "alice keeps her original position")
	assert.Equal(t, int64(20), items[1].ID)
}

func TestReconciler_OtherParticipantAppends(t *testing.T) {
	t.Parallel()

	r := New(domain.LocaleEN, 0)
	r.Apply(created(&domain.Comment{ID: 5, AuthorID: 99, Content: "hi from elsewhere"}))

	items := r.Items()
	require.Len(t, items, 1)
	assert.Equal(t, StateConfirmed, items[0].State)

	// Replay of the same id is ignored.
	r.Apply(created(&domain.Comment{ID: 5, AuthorID: 99, Content: "hi from elsewhere"}))
	assert.Len(t, r.Items(), 1)
}

func TestReconciler_FailWriteRestoresDraft(t *testing.T) {
	t.Parallel()

	r := New(domain.LocaleEN, 0)
	tempID := r.Submit(42, "precious words")

	draft, ok := r.FailWrite(tempID)
	require.True(t, ok)
	assert.Equal(t, "precious words", draft)
	assert.Empty(t, r.Items(), "failed marker leaves no trace")

	_, ok = r.FailWrite(tempID)
	assert.False(t, ok)
}

func TestReconciler_DeleteRemovesAndForgets(t *testing.T) {
	t.Parallel()

	r := New(domain.LocaleEN, 0)
	c := &domain.Comment{ID: 7, AuthorID: 1, Content: "bye"}
	r.Apply(created(c))
	r.Apply(deleted(c))

	assert.Empty(t, r.Items())

	// The id was forgotten, so a re-created id displays again.
	r.Apply(created(c))
	assert.Len(t, r.Items(), 1)
}

func TestReconciler_TranslationReplacesTextOnly(t *testing.T) {
	t.Parallel()

	r := New(domain.LocaleES, 0)
	r.Apply(created(&domain.Comment{ID: 1, AuthorID: 9, Content: "first"}))
	r.Apply(created(&domain.Comment{ID: 2, AuthorID: 9, Content: "Hello team"}))

	r.Apply(translated(2, domain.LocaleES, "Hola equipo"))

	items := r.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "first", items[0].Content)
	assert.Equal(t, int64(2), items[1].ID, "position and identity unchanged")
	assert.Equal(t, "Hola equipo", items[1].Content)
	assert.Equal(t, StateTranslated, items[1].State)

	// A translation for another locale is not the viewer's business.
	r.Apply(translated(1, domain.LocaleDE, "Hallo"))
	assert.Equal(t, "first", r.Items()[0].Content)
}

func TestReconciler_TranslationForUnknownIDIsIgnored(t *testing.T) {
	t.Parallel()

	r := New(domain.LocaleES, 0)
	r.Apply(translated(404, domain.LocaleES, "fantasma"))
	assert.Empty(t, r.Items())
}

func TestReconciler_RunAppliesInArrivalOrder(t *testing.T) {
	t.Parallel()

	r := New(domain.LocaleEN, 0)
	feed := make(chan notify.Event, 3)
	c := &domain.Comment{ID: 3, AuthorID: 8, Content: "hello"}
	feed <- created(c)
	feed <- translated(3, domain.LocaleEN, "hello!")
	feed <- deleted(c)
	close(feed)

	r.Run(t.Context(), feed)

	assert.Empty(t, r.Items())
}

func TestIDSet_BoundedEviction(t *testing.T) {
	t.Parallel()

	s := newIDSet(3)
	for id := int64(1); id <= 5; id++ {
		s.Add(id)
	}
	assert.False(t, s.Contains(1), "oldest ids evicted at capacity")
	assert.False(t, s.Contains(2))
	assert.True(t, s.Contains(3))
	assert.True(t, s.Contains(4))
	assert.True(t, s.Contains(5))

	s.Remove(4)
	assert.False(t, s.Contains(4))
}
