package alphabet

import (
	"log/slog"

	"github.com/genpass/genpass-go/internal/symbols"
)

// Observer is notified at each accumulation step of Build. It must not
// influence the result.
type Observer interface {
	GroupAdded(name, chars string)
	AllowAdded(chars string)
	Built(alphabet *symbols.Set)
}

// NopObserver discards every event.
type NopObserver struct{}

func (NopObserver) GroupAdded(string, string) {}
func (NopObserver) AllowAdded(string)         {}
func (NopObserver) Built(*symbols.Set)        {}

// LogObserver writes each event as a debug record, so the lines only appear
// when the logger runs at debug level.
type LogObserver struct {
	Logger *slog.Logger
}

func (o LogObserver) GroupAdded(name, chars string) {
	o.Logger.Debug("add symbols", "group", name, "symbols", chars)
}

func (o LogObserver) AllowAdded(chars string) {
	o.Logger.Debug("add symbols", "symbols", chars)
}

func (o LogObserver) Built(alphabet *symbols.Set) {
	o.Logger.Debug("symbols to use", "symbols", alphabet.String(), "count", alphabet.Len())
}
