package domain

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is a supported language code. The set is fixed; content is fanned
// out to every locale in Locales on write.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleES Locale = "es"
	LocaleHI Locale = "hi"
	LocaleFR Locale = "fr"
	LocaleDE Locale = "de"
	LocaleJA Locale = "ja"
	LocaleZH Locale = "zh"
)

// DefaultLocale is used when detection finds no signal and when a requested
// locale cannot be matched.
const DefaultLocale = LocaleEN

// Locales lists every supported locale, default first.
var Locales = []Locale{LocaleEN, LocaleES, LocaleHI, LocaleFR, LocaleDE, LocaleJA, LocaleZH}

var localeTags = func() []language.Tag {
	tags := make([]language.Tag, len(Locales))
	for i, l := range Locales {
		tags[i] = language.Make(string(l))
	}
	return tags
}()

var localeMatcher = language.NewMatcher(localeTags)

func (l Locale) String() string { return string(l) }

// Valid reports whether l is one of the supported locales.
func (l Locale) Valid() bool {
	for _, s := range Locales {
		if l == s {
			return true
		}
	}
	return false
}

// MatchLocale maps an arbitrary BCP 47 tag (e.g. "es-MX", "zh-Hant") onto the
// supported set. Unparseable or unmatched input yields DefaultLocale.
func MatchLocale(requested string) Locale {
	requested = strings.TrimSpace(requested)
	if requested == "" {
		return DefaultLocale
	}
	if l := Locale(requested); l.Valid() {
		return l
	}
	tag, err := language.Parse(requested)
	if err != nil {
		return DefaultLocale
	}
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return DefaultLocale
	}
	return Locales[idx]
}

// TargetLocales returns every supported locale except src.
func TargetLocales(src Locale) []Locale {
	out := make([]Locale, 0, len(Locales)-1)
	for _, l := range Locales {
		if l != src {
			out = append(out, l)
		}
	}
	return out
}
