package factory

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Pranav99t/polytask/internal/adapters/translate/libretranslate"
	"github.com/Pranav99t/polytask/internal/adapters/translate/passthrough"
	"github.com/Pranav99t/polytask/internal/ports"
)

// FromConfig returns the translator for the configured provider. An empty
// base URL means no provider is configured and translation degrades to
// passthrough rather than failing.
func FromConfig(baseURL, apiKey string, timeout time.Duration) ports.Translator {
	if baseURL == "" {
		log.Warn().Msg("no translation provider configured, content stays in its source language")
		return passthrough.New()
	}
	return libretranslate.New(baseURL, apiKey, timeout)
}
