package ports

import (
	"context"

	"github.com/Pranav99t/polytask/internal/domain"
)

// Translator wraps an external machine-translation backend.
//
// Both calls are best-effort: on any failure the returned text is the input
// unchanged and the error exists only so callers can log it. Implementations
// must short-circuit when source == target or the input is blank, enforce
// their own request timeout, and stay usable with no credentials configured.
type Translator interface {
	TranslateOne(ctx context.Context, text string, source, target domain.Locale) (string, error)
	// TranslateBatch translates texts in order; the result has the same length
	// and ordinal order as texts.
	TranslateBatch(ctx context.Context, texts []string, source, target domain.Locale) ([]string, error)
}
