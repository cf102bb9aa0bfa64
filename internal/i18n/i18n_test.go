package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/solbing/solbing-api/internal/i18n"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		expected   language.Tag
	}{
		{"no candidates", nil, language.English},
		{"empty candidates", []string{"", ""}, language.English},
		{"exact match", []string{"es"}, language.Spanish},
		{"regional variant", []string{"es-MX"}, language.Spanish},
		{"accept-language header", []string{"ar-EG, en;q=0.5"}, language.Arabic},
		{"unsupported falls back", []string{"fr"}, language.English},
		{"first candidate wins", []string{"es", "ar"}, language.Spanish},
		{"skips empty and garbage", []string{"", "!!!", "ar"}, language.Arabic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, i18n.Resolve(tt.candidates...))
		})
	}
}

func TestGenreLabel(t *testing.T) {
	tests := []struct {
		name     string
		tag      language.Tag
		key      string
		expected string
	}{
		{"english", language.English, "sci-fi", "Sci-Fi"},
		{"spanish", language.Spanish, "horror", "Terror"},
		{"arabic", language.Arabic, "drama", "دراما"},
		{"regional variant uses base", language.MustParse("es-MX"), "comedy", "Comedia"},
		{"unsupported language falls back to english", language.French, "action", "Action"},
		{"unknown key passes through", language.Spanish, "mystery", "mystery"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, i18n.GenreLabel(tt.tag, tt.key))
		})
	}
}

func TestSupportedIsACopy(t *testing.T) {
	tags := i18n.Supported()
	tags[0] = language.French

	assert.Equal(t, language.English, i18n.Supported()[0])
	assert.Equal(t, language.English, i18n.Default())
}
