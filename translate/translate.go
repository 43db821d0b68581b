// Package translate renders user-visible text for the host locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var (
	printerOnce sync.Once
	printer     *message.Printer
)

func loadPrinter() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("uartmon: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
//
// Register values and hex dumps must not go through From, as the printer
// applies locale digit grouping to numeric verbs.
func From(key message.Reference, args ...any) string {
	printerOnce.Do(loadPrinter)
	return printer.Sprintf(key, args...)
}
