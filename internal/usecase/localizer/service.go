// Package localizer implements the multilingual content pipeline: detecting a
// write's source locale, fanning the text out to every supported locale,
// persisting the per-locale records, and merging translations back into
// entities on read.
package localizer

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Pranav99t/polytask/internal/domain"
	"github.com/Pranav99t/polytask/internal/notify"
	"github.com/Pranav99t/polytask/internal/ports"
)

type Deps struct {
	Translator   ports.Translator
	Translations ports.TranslationRepository
	// Events receives a "translated" notification per persisted locale row.
	// May be nil.
	Events *notify.Hub
	// Concurrency bounds the fan-out worker pool; zero means one worker per
	// target locale.
	Concurrency int
}

type Service struct{ d Deps }

func New(d Deps) *Service { return &Service{d: d} }

// Localize runs the full write-side pipeline for one entity: detect the
// source locale (unless hint is a valid locale), fan out to all targets, and
// upsert one record per locale. Always also writes the identity record for
// the source locale. Returns the source locale used.
//
// Failures degrade, never propagate: a failed translation leaves that cell's
// original text, a failed upsert skips that locale. The caller's entity write
// has already succeeded and stays untouched either way.
func (s *Service) Localize(ctx context.Context, kind domain.Kind, entityID int64, fields domain.Fields, hint domain.Locale) domain.Locale {
	source := hint
	if !source.Valid() {
		source = DetectFields(fields)
	}
	perLocale := s.FanOut(ctx, fields, source)
	s.persist(ctx, kind, entityID, perLocale)
	return source
}

func (s *Service) persist(ctx context.Context, kind domain.Kind, entityID int64, perLocale map[domain.Locale]domain.Fields) {
	for locale, fields := range perLocale {
		t := &domain.Translation{EntityKind: kind, EntityID: entityID, Locale: locale, Fields: fields.NonEmpty()}
		if err := s.d.Translations.Upsert(ctx, t); err != nil {
			log.Warn().Err(err).
				Str("kind", string(kind)).Int64("entity_id", entityID).Str("locale", locale.String()).
				Msg("translation upsert failed, row stays stale until next edit")
			continue
		}
		s.d.Events.Publish(notify.Event{Type: notify.EventTranslated, Table: kind, Row: t})
	}
}

// Forget removes every translation record of an entity. Used after entity
// deletes; errors are logged, the rows are unreachable either way.
func (s *Service) Forget(ctx context.Context, kind domain.Kind, entityID int64) {
	if err := s.d.Translations.DeleteByEntity(ctx, kind, entityID); err != nil {
		log.Warn().Err(err).Str("kind", string(kind)).Int64("entity_id", entityID).
			Msg("deleting translation rows failed")
	}
}
