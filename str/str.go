package str

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// DefaultShortenLength is used by [ShortenText] for non-positive lengths.
const DefaultShortenLength = 100

var (
	upperASCII    = regexp.MustCompile(`[A-Z]`)
	underscoreLow = regexp.MustCompile(`_[a-z]`)
	whitespace    = regexp.MustCompile(`\s+`)
	underscores   = regexp.MustCompile(`_+`)
	notSlug       = regexp.MustCompile(`[^-a-z0-9 ]+`)
	dashes        = regexp.MustCompile(`-{2,}`)
	notDelimited  = regexp.MustCompile(`[^a-z0-9 ]`)
)

var polish = map[rune]rune{
	'ą': 'a', 'ć': 'c', 'ę': 'e', 'ł': 'l', 'ń': 'n',
	'ó': 'o', 'ś': 's', 'ź': 'z', 'ż': 'z',
}

// ToSnakeCase converts camelCase or PascalCase to snake_case.
//
//	ToSnakeCase("createdAt") // "created_at"
func ToSnakeCase(s string) string {
	s = mapFirst(s, unicode.ToLower)
	return upperASCII.ReplaceAllStringFunc(s, func(m string) string {
		return "_" + strings.ToLower(m)
	})
}

// ToCamelCase converts snake_case to camelCase, or to PascalCase when
// capitaliseFirst is set. Only lower case letters after an underscore are
// joined.
func ToCamelCase(s string, capitaliseFirst bool) string {
	if capitaliseFirst {
		s = mapFirst(s, unicode.ToUpper)
	}
	return underscoreLow.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ToUpper(m[1:])
	})
}

// StripPolish turns text into a lower case URL slug. Polish letters are
// replaced by their ASCII base letter, runs of whitespace become a single
// dash, underscores become dashes and every other character outside
// [a-z0-9-] is dropped.
//
//	StripPolish("Zażółć gęślą jaźń") // "zazolc-gesla-jazn"
func StripPolish(text string) string {
	t := transform.Chain(
		cases.Lower(language.Polish),
		runes.Map(func(r rune) rune {
			if base, ok := polish[r]; ok {
				return base
			}
			return r
		}),
	)
	s, _, err := transform.String(t, text)
	if err != nil {
		s = strings.ToLower(text)
	}
	s = strings.ReplaceAll(s, "/", "")
	s = whitespace.ReplaceAllString(s, " ")
	s = underscores.ReplaceAllString(s, "-")
	s = notSlug.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, " ", "-")
	s = dashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ShortenText removes "&nbsp;" entities and cuts text to length runes,
// appending "..." when anything was cut.
func ShortenText(text string, length int) string {
	if length <= 0 {
		length = DefaultShortenLength
	}
	text = strings.ReplaceAll(text, "&nbsp;", "")
	if utf8.RuneCountInString(text) <= length {
		return text
	}
	return string([]rune(text)[:length]) + "..."
}

// ToDelimitedLowerCase lower-cases s and replaces every character other
// than a-z, 0-9 and space with delimiter.
//
//	ToDelimitedLowerCase("Hello World_2!", "-") // "hello world-2-"
func ToDelimitedLowerCase(s, delimiter string) string {
	s = cases.Lower(language.Und).String(s)
	return notDelimited.ReplaceAllLiteralString(s, delimiter)
}

func mapFirst(s string, fn func(rune) rune) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(fn(r)) + s[size:]
}
