package localizer

import (
	"strings"
	"unicode"

	"github.com/Pranav99t/polytask/internal/domain"
)

// detectRule pairs a locale with the script or diacritic signal that marks it.
// Rules run in order; the first hit wins. This is a heuristic, not a
// classifier: false positives are acceptable and never block the pipeline.
type detectRule struct {
	locale domain.Locale
	match  func(r rune) bool
}

var detectRules = []detectRule{
	{domain.LocaleHI, func(r rune) bool { return unicode.Is(unicode.Devanagari, r) }},
	{domain.LocaleJA, func(r rune) bool { return unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r) }},
	{domain.LocaleZH, func(r rune) bool { return unicode.Is(unicode.Han, r) }},
	{domain.LocaleES, runeIn("ñÑ¿¡áíóúÁÍÓÚ")},
	{domain.LocaleFR, runeIn("çÇœŒèêàùîôûëïÈÊÀÙÎÔÛËÏ")},
	{domain.LocaleDE, runeIn("äöüßÄÖÜ")},
}

func runeIn(set string) func(rune) bool {
	return func(r rune) bool { return strings.ContainsRune(set, r) }
}

// Detect guesses the source locale of text. It is total and deterministic:
// blank input and text with no script-specific signal both resolve to the
// default locale.
func Detect(text string) domain.Locale {
	if strings.TrimSpace(text) == "" {
		return domain.DefaultLocale
	}
	for _, rule := range detectRules {
		for _, r := range text {
			if rule.match(r) {
				return rule.locale
			}
		}
	}
	return domain.DefaultLocale
}

// DetectFields applies Detect to the concatenation of the entity's text
// fields, so a hint in any field decides the source locale.
func DetectFields(fields domain.Fields) domain.Locale {
	var b strings.Builder
	for _, v := range fields {
		b.WriteString(v)
		b.WriteByte(' ')
	}
	return Detect(b.String())
}
