package localizer

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/Pranav99t/polytask/internal/domain"
)

// FanOut translates fields into every supported locale. One worker per target
// locale, bounded by Deps.Concurrency; locales fail independently and a failed
// cell keeps its original text, so the result always covers every locale and
// every field. The source locale's entry is a verbatim copy of fields.
func (s *Service) FanOut(ctx context.Context, fields domain.Fields, source domain.Locale) map[domain.Locale]domain.Fields {
	targets := domain.TargetLocales(source)

	// Stable field order so batch slices line up per worker.
	names := make([]string, 0, len(fields))
	for name, v := range fields {
		if v != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	texts := make([]string, len(names))
	for i, name := range names {
		texts[i] = fields[name]
	}

	results := make([]domain.Fields, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	if s.d.Concurrency > 0 {
		g.SetLimit(s.d.Concurrency)
	}
	for i, target := range targets {
		g.Go(func() error {
			results[i] = s.translateInto(gctx, texts, names, source, target)
			return nil
		})
	}
	// Workers never return errors; Wait is just the barrier.
	_ = g.Wait()

	out := make(map[domain.Locale]domain.Fields, len(targets)+1)
	out[source] = fields.Clone()
	for i, target := range targets {
		out[target] = results[i]
	}
	return out
}

func (s *Service) translateInto(ctx context.Context, texts []string, names []string, source, target domain.Locale) domain.Fields {
	out := make(domain.Fields, len(names))
	translated, err := s.d.Translator.TranslateBatch(ctx, texts, source, target)
	if err != nil || len(translated) != len(texts) {
		log.Warn().Err(err).
			Str("source", source.String()).Str("target", target.String()).
			Msg("batch translation degraded to source text")
		translated = texts
	}
	for i, name := range names {
		out[name] = translated[i]
	}
	return out
}
