package translate

import (
	"errors"
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// DEFAULT_LOCALE is used when the host does not report any locale.
const DEFAULT_LOCALE = "en-US"

var (
	printer     *message.Printer
	printerOnce sync.Once
)

func getPrinter() *message.Printer {
	printerOnce.Do(func() {
		locales, err := locale.GetLocales()
		if err != nil {
			log.Printf("lmc: locale: %v", err)
		}

		if len(locales) == 0 {
			locales = []string{DEFAULT_LOCALE}
		}

		printer = message.NewPrinter(message.MatchLanguage(locales...))
	})

	return printer
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return getPrinter().Sprintf(key, args...)
}

// Error creates a new error from a translated en-US message.
func Error(key message.Reference, args ...any) error {
	return errors.New(From(key, args...))
}
