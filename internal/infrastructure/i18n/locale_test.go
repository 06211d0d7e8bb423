package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charbot/internal/infrastructure/i18n"
)

func TestParseLocale(t *testing.T) {
	tests := []struct {
		input string
		want  i18n.Locale
		ok    bool
	}{
		{"en-US", i18n.AmericanEnglish, true},
		{"es-ES", i18n.EuropeanSpanish, true},
		{"fr", i18n.French, true},
		{"nl", i18n.Dutch, true},
		{"fr-FR", "", false},
		{"en", "", false},
		{"EN-US", "", false},
		{"xx-ZZ", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := i18n.ParseLocale(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSupportedLocalesDefaultFirst(t *testing.T) {
	translator, err := i18n.NewTranslator()
	require.NoError(t, err)

	locales := translator.SupportedLocales()
	require.Len(t, locales, 4)
	assert.Equal(t, string(i18n.DefaultLocale), locales[0])
	assert.Contains(t, locales, "es-ES")
	assert.Contains(t, locales, "fr")
	assert.Contains(t, locales, "nl")
}
