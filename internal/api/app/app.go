// Package app exposes the write and read operations consumed by the
// presentation layer. Writes return the raw entity as soon as storage accepts
// it; the translation fan-out runs in the background and is never allowed to
// fail or delay the write.
package app

import (
	"context"
	"errors"
	"time"

	"github.com/Pranav99t/polytask/internal/domain"
	"github.com/Pranav99t/polytask/internal/usecase/localizer"
)

// localizeTimeout bounds one entity's whole background fan-out.
const localizeTimeout = 90 * time.Second

var ErrEmptyFields = errors.New("at least one text field is required")

// localizeAsync runs detect + fan-out + persist detached from the request:
// the caller's response does not wait for translations, and a crash in
// between leaves the entity intact with translations simply absent until the
// next edit regenerates them.
func localizeAsync(svc *localizer.Service, kind domain.Kind, entityID int64, fields domain.Fields, hint domain.Locale) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), localizeTimeout)
		defer cancel()
		svc.Localize(ctx, kind, entityID, fields, hint)
	}()
}

// sourceLocale resolves the write's locale: an explicit valid hint wins,
// otherwise the text is sniffed.
func sourceLocale(hint string, fields domain.Fields) domain.Locale {
	if l := domain.Locale(hint); l.Valid() {
		return l
	}
	return localizer.DetectFields(fields)
}
