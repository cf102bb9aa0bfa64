// Package i18n resolves display labels for enumerated profile values.
// English is the canonical locale; missing translations fall back to it.
package i18n

import (
	"golang.org/x/text/language"
)

var supported = []language.Tag{
	language.English, // en, default
	language.Spanish, // es
	language.Arabic,  // ar
}

var matcher = language.NewMatcher(supported)

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// Resolve picks the best supported language from the given candidates,
// in priority order. Candidates may be single tags ("es") or full
// Accept-Language headers ("es-MX, en;q=0.8"). Empty candidates are
// skipped; no match yields the default.
func Resolve(candidates ...string) language.Tag {
	var tags []language.Tag
	for _, c := range candidates {
		if c == "" {
			continue
		}
		parsed, _, err := language.ParseAcceptLanguage(c)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}

	if len(tags) == 0 {
		return Default()
	}

	_, index, _ := matcher.Match(tags...)
	return supported[index]
}

var genreLabels = map[string]map[string]string{
	"en": {
		"action":      "Action",
		"adventure":   "Adventure",
		"comedy":      "Comedy",
		"drama":       "Drama",
		"horror":      "Horror",
		"romance":     "Romance",
		"sci-fi":      "Sci-Fi",
		"thriller":    "Thriller",
		"documentary": "Documentary",
	},
	"es": {
		"action":      "Acción",
		"adventure":   "Aventura",
		"comedy":      "Comedia",
		"drama":       "Drama",
		"horror":      "Terror",
		"romance":     "Romance",
		"sci-fi":      "Ciencia ficción",
		"thriller":    "Suspenso",
		"documentary": "Documental",
	},
	"ar": {
		"action":      "أكشن",
		"adventure":   "مغامرة",
		"comedy":      "كوميديا",
		"drama":       "دراما",
		"horror":      "رعب",
		"romance":     "رومانسية",
		"sci-fi":      "خيال علمي",
		"thriller":    "إثارة",
		"documentary": "وثائقي",
	},
}

// GenreLabel returns the display label for a genre key in the given
// language. Unknown keys come back unchanged; unknown languages fall
// back to English.
func GenreLabel(tag language.Tag, key string) string {
	base, _ := tag.Base()

	if labels, ok := genreLabels[base.String()]; ok {
		if label, ok := labels[key]; ok {
			return label
		}
	}

	if label, ok := genreLabels["en"][key]; ok {
		return label
	}

	return key
}
