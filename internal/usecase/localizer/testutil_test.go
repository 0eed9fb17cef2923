package localizer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Pranav99t/polytask/internal/domain"
)

// fakeTranslator tags every translated text with the target locale, and can
// be told to fail for specific targets or for everything.
type fakeTranslator struct {
	failFor map[domain.Locale]bool
	failAll bool
}

func (f *fakeTranslator) translate(text string, source, target domain.Locale) (string, error) {
	if f.failAll || f.failFor[target] {
		return text, errors.New("provider unavailable")
	}
	if source == target || text == "" {
		return text, nil
	}
	return fmt.Sprintf("[%s] %s", target, text), nil
}

func (f *fakeTranslator) TranslateOne(_ context.Context, text string, source, target domain.Locale) (string, error) {
	return f.translate(text, source, target)
}

func (f *fakeTranslator) TranslateBatch(_ context.Context, texts []string, source, target domain.Locale) ([]string, error) {
	out := make([]string, len(texts))
	var firstErr error
	for i, t := range texts {
		v, err := f.translate(t, source, target)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		out[i] = v
	}
	return out, firstErr
}

type storeKey struct {
	kind   domain.Kind
	id     int64
	locale domain.Locale
}

// memStore is an in-memory TranslationRepository with replace-on-conflict
// semantics.
type memStore struct {
	mu      sync.Mutex
	rows    map[storeKey]*domain.Translation
	upserts int
	failFor map[domain.Locale]bool
}

func newMemStore() *memStore {
	return &memStore{rows: make(map[storeKey]*domain.Translation)}
}

func (m *memStore) Upsert(_ context.Context, t *domain.Translation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failFor[t.Locale] {
		return errors.New("disk full")
	}
	m.upserts++
	cp := *t
	cp.Fields = t.Fields.Clone()
	m.rows[storeKey{t.EntityKind, t.EntityID, t.Locale}] = &cp
	return nil
}

func (m *memStore) Get(_ context.Context, kind domain.Kind, id int64, locale domain.Locale) (*domain.Translation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows[storeKey{kind, id, locale}], nil
}

func (m *memStore) ListByEntities(_ context.Context, kind domain.Kind, ids []int64, locale domain.Locale) ([]*domain.Translation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Translation
	for _, id := range ids {
		if t, ok := m.rows[storeKey{kind, id, locale}]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memStore) DeleteByEntity(_ context.Context, kind domain.Kind, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range domain.Locales {
		delete(m.rows, storeKey{kind, id, l})
	}
	return nil
}
