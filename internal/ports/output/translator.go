package output

// Translator exposes the localization contract for user-facing messages:
// locale resolution, catalog lookup and placeholder formatting.
type Translator interface {
	// Translate renders the message identified by key for the given locale
	// tag. Argument values may be int, int64, float64 or string; an integer
	// "count" argument additionally selects the plural form. Unrecognized
	// locale tags silently fall back to the default locale; a key that
	// cannot be resolved or formatted returns an error.
	Translate(locale, key string, args map[string]any) (string, error)

	// SupportedLocales lists the supported locale tags, default first.
	SupportedLocales() []string
}
