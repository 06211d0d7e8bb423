package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charbot/internal/infrastructure/i18n"
)

func newTranslator(t *testing.T) *i18n.Translator {
	t.Helper()
	translator, err := i18n.NewTranslator()
	require.NoError(t, err)
	return translator
}

func TestTranslate(t *testing.T) {
	translator := newTranslator(t)

	tests := []struct {
		name   string
		locale string
		key    string
		args   map[string]any
		want   string
	}{
		{
			name:   "default locale with template data",
			locale: "en-US",
			key:    "greeting",
			args:   map[string]any{"name": "Ava"},
			want:   "Hello, Ava!",
		},
		{
			name:   "unrecognized tag falls back to en-US",
			locale: "xx-ZZ",
			key:    "greeting",
			args:   map[string]any{"name": "Ava"},
			want:   "Hello, Ava!",
		},
		{
			name:   "french catalog",
			locale: "fr",
			key:    "greeting",
			args:   map[string]any{"name": "Ava"},
			want:   "Bonjour, Ava !",
		},
		{
			name:   "regional tag does not match base language",
			locale: "fr-FR",
			key:    "greeting",
			args:   map[string]any{"name": "Ava"},
			want:   "Hello, Ava!",
		},
		{
			name:   "key missing from nl falls back to en-US",
			locale: "nl",
			key:    "language.update_failed",
			want:   "Could not update the server language.",
		},
		{
			name:   "fallback key missing from nl",
			locale: "nl",
			key:    "shrugman.start_failed",
			want:   "Could not start a game, try again later.",
		},
		{
			name:   "plural one",
			locale: "en-US",
			key:    "shrugman.points",
			args:   map[string]any{"count": 1},
			want:   "You earned 1 point.",
		},
		{
			name:   "plural other",
			locale: "en-US",
			key:    "shrugman.points",
			args:   map[string]any{"count": 3},
			want:   "You earned 3 points.",
		},
		{
			name:   "spanish plural",
			locale: "es-ES",
			key:    "shrugman.points",
			args:   map[string]any{"count": 2},
			want:   "Ganaste 2 puntos.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := translator.Translate(tc.locale, tc.key, tc.args)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTranslateIsIdempotent(t *testing.T) {
	translator := newTranslator(t)

	first, err := translator.Translate("es-ES", "greeting", map[string]any{"name": "Ava"})
	require.NoError(t, err)
	second, err := translator.Translate("es-ES", "greeting", map[string]any{"name": "Ava"})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTranslateFailures(t *testing.T) {
	translator := newTranslator(t)

	tests := []struct {
		name   string
		locale string
		key    string
		args   map[string]any
	}{
		{
			name:   "key missing from every catalog",
			locale: "fr",
			key:    "nonexistent_key",
		},
		{
			name:   "mismatched placeholder name",
			locale: "en-US",
			key:    "greeting",
			args:   map[string]any{"nom": "Ava"},
		},
		{
			name:   "unsupported argument type",
			locale: "en-US",
			key:    "greeting",
			args:   map[string]any{"name": []string{"Ava"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := translator.Translate(tc.locale, tc.key, tc.args)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.ErrorContains(t, err, "Failed to translate")

			var runtimeErr *i18n.RuntimeError
			assert.ErrorAs(t, err, &runtimeErr)
		})
	}
}
