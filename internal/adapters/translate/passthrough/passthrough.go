// Package passthrough is the no-credentials translation mode: every call
// returns its input unchanged. Used when no provider is configured so the rest
// of the pipeline behaves identically, just without real translations.
package passthrough

import (
	"context"

	"github.com/Pranav99t/polytask/internal/domain"
)

type Translator struct{}

func New() *Translator { return &Translator{} }

func (Translator) TranslateOne(_ context.Context, text string, _, _ domain.Locale) (string, error) {
	return text, nil
}

func (Translator) TranslateBatch(_ context.Context, texts []string, _, _ domain.Locale) ([]string, error) {
	out := make([]string, len(texts))
	copy(out, texts)
	return out, nil
}
