// Package translate formats the user facing messages of the calculator
// through a golang.org/x/text message printer matched to the host locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	mutex   sync.RWMutex
	printer *message.Printer
	current language.Tag
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("hp35: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	use(message.MatchLanguage(locales...))
}

func use(tag language.Tag) {
	mutex.Lock()
	defer mutex.Unlock()

	current = tag
	printer = message.NewPrinter(tag)
}

// SetLanguage overrides the detected locale with a BCP 47 tag (ie "de-CH").
func SetLanguage(name string) (err error) {
	tag, err := language.Parse(name)
	if err != nil {
		return
	}

	use(tag)
	return
}

// Language returns the tag currently used for formatting.
func Language() language.Tag {
	mutex.RLock()
	defer mutex.RUnlock()

	return current
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	mutex.RLock()
	defer mutex.RUnlock()

	return printer.Sprintf(key, args...)
}
