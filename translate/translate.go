// Package translate renders user facing messages in the user's locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var (
	mutex   sync.RWMutex
	printer *message.Printer
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("aram: locale: %v", err)
	}

	SetLanguage(locales...)
}

// SetLanguage selects the printer for the best match of the given BCP 47 tags.
// With no usable tags, en-US is used.
func SetLanguage(tags ...string) {
	if len(tags) == 0 {
		tags = []string{"en-US"}
	}

	p := message.NewPrinter(message.MatchLanguage(tags...))

	mutex.Lock()
	printer = p
	mutex.Unlock()
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	mutex.RLock()
	p := printer
	mutex.RUnlock()

	return p.Sprintf(key, args...)
}
