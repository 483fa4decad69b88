// Package i18n holds the two UI languages, their text direction and the
// strings the chart is labelled with.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported UI language code.
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

// Default is used when no preference has been stored.
const Default = Arabic

// Direction values for the document dir attribute.
const (
	LTR = "ltr"
	RTL = "rtl"
)

var supported = []language.Tag{language.Arabic, language.English}

var matcher = language.NewMatcher(supported)

// Parse validates a language code.
func Parse(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, nil
	case Arabic:
		return Arabic, nil
	}
	return "", fmt.Errorf("unsupported language %q", s)
}

// Negotiate picks the best supported language for an Accept-Language
// header, falling back to Default.
func Negotiate(acceptLanguage string) Language {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	base, _ := supported[idx].Base()
	return Language(base.String())
}

// Dir returns the text direction for the language.
func (l Language) Dir() string {
	if l == Arabic {
		return RTL
	}
	return LTR
}

// IsRTL reports whether the language is laid out right to left.
func (l Language) IsRTL() bool { return l.Dir() == RTL }

// Toggle switches between English and Arabic.
func (l Language) Toggle() Language {
	if l == English {
		return Arabic
	}
	return English
}

func (l Language) String() string { return string(l) }
