package i18n

import (
	"embed"
	"errors"
	"fmt"
	"sync"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/nicksnyder/go-i18n/v2/i18n/template"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"charbot/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Translator implements the output port.
var _ output.Translator = (*Translator)(nil)

// RuntimeError is the single error kind crossing the translator boundary.
// Internal failures (catalog loading, lookup, formatting) are boxed into it
// with a human-readable cause chain.
type RuntimeError struct {
	msg   string
	cause error
}

func (e *RuntimeError) Error() string {
	return e.msg + ": " + e.cause.Error()
}

func (e *RuntimeError) Unwrap() error {
	return e.cause
}

// strictTemplates errors on placeholders absent from the argument map
// instead of rendering "<no value>".
var strictTemplates = &template.TextParser{Option: "missingkey=error"}

// Translator resolves locale tags against the embedded catalogs and renders
// keyed messages. Message syntax, plural rules and key fallback to the
// default locale are go-i18n's job; this type only owns locale resolution,
// catalog loading and error boxing.
type Translator struct {
	bundle *goi18n.Bundle

	mu         sync.RWMutex
	loaded     map[Locale]bool
	localizers map[Locale]*goi18n.Localizer
}

// NewTranslator builds a Translator over the embedded catalogs. The default
// locale's catalog is loaded eagerly and must be present; the others are
// loaded on first use.
func NewTranslator() (*Translator, error) {
	bundle := goi18n.NewBundle(language.AmericanEnglish)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	t := &Translator{
		bundle:     bundle,
		loaded:     make(map[Locale]bool),
		localizers: make(map[Locale]*goi18n.Localizer),
	}
	if _, err := t.localizerFor(DefaultLocale); err != nil {
		return nil, fmt.Errorf("load default catalog: %w", err)
	}
	return t, nil
}

// SupportedLocales lists the supported locale tags, default first.
func (t *Translator) SupportedLocales() []string {
	out := make([]string, len(supported))
	for i, l := range supported {
		out[i] = string(l)
	}
	return out
}

// Translate renders the message identified by key for the given locale tag.
// An unrecognized tag silently falls back to the default locale; the key is
// looked up exactly as given either way. Every failure comes back as a
// *RuntimeError.
func (t *Translator) Translate(locale, key string, args map[string]any) (string, error) {
	loc, ok := ParseLocale(locale)
	if !ok {
		loc = DefaultLocale
	}

	localizer, err := t.localizerFor(loc)
	if err != nil {
		return "", &RuntimeError{msg: "Failed to create translator", cause: err}
	}

	cfg := &goi18n.LocalizeConfig{
		MessageID:      key,
		TemplateParser: strictTemplates,
	}
	if len(args) > 0 {
		for name, value := range args {
			switch value.(type) {
			case string, int, int64, float64:
			default:
				return "", &RuntimeError{
					msg:   "Failed to translate",
					cause: fmt.Errorf("argument %q has unsupported type %T", name, value),
				}
			}
		}
		cfg.TemplateData = args
		if count, ok := args["count"].(int); ok {
			cfg.PluralCount = count
		}
	}

	// The read lock keeps Localize from racing a lazy catalog load.
	t.mu.RLock()
	msg, err := localizer.Localize(cfg)
	t.mu.RUnlock()
	if err != nil {
		// Localize reports a key absent from the requested catalog even
		// when it rendered the default locale's translation; that text is
		// the answer, not a failure.
		var notFound *goi18n.MessageNotFoundErr
		if errors.As(err, &notFound) && msg != "" {
			return msg, nil
		}
		return "", &RuntimeError{msg: "Failed to translate", cause: err}
	}
	return msg, nil
}

// localizerFor returns the cached localizer for a locale, loading its
// catalog into the bundle on first use. The localizer falls back to the
// default locale for keys the requested catalog is missing.
func (t *Translator) localizerFor(locale Locale) (*goi18n.Localizer, error) {
	t.mu.RLock()
	localizer, ok := t.localizers[locale]
	t.mu.RUnlock()
	if ok {
		return localizer, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if localizer, ok := t.localizers[locale]; ok {
		return localizer, nil
	}
	if !t.loaded[locale] {
		file := fmt.Sprintf("active.%s.toml", locale)
		if _, err := t.bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
		t.loaded[locale] = true
	}
	localizer = goi18n.NewLocalizer(t.bundle, string(locale), string(DefaultLocale))
	t.localizers[locale] = localizer
	return localizer, nil
}
