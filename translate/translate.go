// Package translate renders strbf's error and log messages in the user's
// language. The locale is detected once, at startup, and falls back to en-US.
package translate

import (
	"fmt"
	"io"
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(detect())

// detect picks the best supported language for the user's locales.
func detect() language.Tag {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("strbf: locale: %v", err)
	}

	if len(locales) == 0 {
		return language.AmericanEnglish
	}

	return message.MatchLanguage(locales...)
}

// From formats an en-US message key and its arguments for the detected
// locale. Numbers are grouped as the locale prefers.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Fprintln writes the message From would return, and a newline, to w.
func Fprintln(w io.Writer, key message.Reference, args ...any) (err error) {
	_, err = fmt.Fprintln(w, printer.Sprintf(key, args...))
	return
}
