package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength prevents oversized Accept-Language headers from
// being parsed.
const maxAcceptLanguageLength = 4096

// Tag parses a dataset key into a language tag.
// Underscores are accepted as separators ("pt_BR"). The second result is
// false for keys that are not valid BCP 47 tags.
func Tag(key string) (language.Tag, bool) {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(key), "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

// Negotiate picks the entry of available that best matches an
// Accept-Language header. It returns fallback when the header is empty,
// malformed, or matches none of the available locales.
// Returned values are always elements of available or fallback itself.
func Negotiate(header string, available []string, fallback string) string {
	header = strings.TrimSpace(header)
	if header == "" || len(available) == 0 {
		return fallback
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return fallback
	}

	tags := make([]language.Tag, 0, len(available))
	keys := make([]string, 0, len(available))
	for _, key := range available {
		if tag, ok := Tag(key); ok {
			tags = append(tags, tag)
			keys = append(keys, key)
		}
	}
	if len(tags) == 0 {
		return fallback
	}

	_, index, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No {
		return fallback
	}
	return keys[index]
}
