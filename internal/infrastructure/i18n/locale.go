package i18n

// Locale identifies one of the message catalogs shipped with the bot.
// The set is closed: catalogs are embedded at build time and there is no
// dynamic registration.
type Locale string

const (
	AmericanEnglish Locale = "en-US"
	EuropeanSpanish Locale = "es-ES"
	French          Locale = "fr"
	Dutch           Locale = "nl"
)

// DefaultLocale is substituted whenever a caller supplies a tag outside the
// supported set. Its catalog is always loadable.
const DefaultLocale = AmericanEnglish

var supported = []Locale{AmericanEnglish, EuropeanSpanish, French, Dutch}

// ParseLocale maps a raw locale tag to a supported Locale. Matching is
// exact: "fr-FR" is not "fr".
func ParseLocale(input string) (Locale, bool) {
	for _, l := range supported {
		if string(l) == input {
			return l, true
		}
	}
	return "", false
}
