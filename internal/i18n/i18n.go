// Package i18n holds the string tables for the supported interface languages.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported lists interface languages in the order the language switch
// cycles through them. The first entry is the default.
var Supported = []language.Tag{language.English, language.Polish}

var (
	matcher = language.NewMatcher(Supported)
	cat     = mustCatalog()
)

func mustCatalog() *catalog.Builder {
	b, err := buildCatalog()
	if err != nil {
		panic(err)
	}
	return b
}

// Parse maps a locale code such as "pl" or "pl-PL" onto a supported tag,
// falling back to English.
func Parse(code string) (language.Tag, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Supported[0], false
	}
	tag, err := language.Parse(code)
	if err != nil {
		return Supported[0], false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Supported[0], false
	}
	return Supported[index], true
}

// Next returns the language after tag in Supported, wrapping around.
func Next(tag language.Tag) language.Tag {
	for idx, candidate := range Supported {
		if candidate == tag {
			return Supported[(idx+1)%len(Supported)]
		}
	}
	return Supported[0]
}

// Code is the short form stored in the config file.
func Code(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

type Text struct {
	tag     language.Tag
	printer *message.Printer
}

func New(tag language.Tag) Text {
	return Text{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}
}

func (t Text) T(key Key, args ...any) string {
	if t.printer == nil {
		return New(Supported[0]).T(key, args...)
	}
	return t.printer.Sprintf(string(key), args...)
}

func (t Text) Tag() language.Tag {
	return t.tag
}

func (t Text) Code() string {
	return Code(t.tag)
}

// LanguageName is the language's own name for itself, e.g. "polski".
func (t Text) LanguageName() string {
	return display.Self.Name(t.tag)
}
