package storage

import (
	"fyne.io/fyne/v2"
	"github.com/go-faster/errors"
	"github.com/quasilyte/gdata/v2"
)

// Backend names accepted by Open
const (
	BackendPreferences = "preferences"
	BackendGdata       = "gdata"
	BackendMemory      = "memory"
)

// KV is a durable string-keyed byte store. Load reports ok=false for keys
// that were never written.
type KV interface {
	Load(key string) (data []byte, ok bool, err error)
	Save(key string, data []byte) error
}

// Open returns the backend selected by name. Unknown names fall back to the
// preferences backend.
func Open(backend string, app fyne.App) (KV, error) {
	switch backend {
	case BackendGdata:
		m, err := gdata.Open(gdata.Config{AppName: appName(app)})
		if err != nil {
			return nil, errors.Wrap(err, "open gdata storage")
		}
		return NewGdata(m), nil
	case BackendMemory:
		return NewMemory(), nil
	default:
		return NewPreferences(app.Preferences()), nil
	}
}

func appName(app fyne.App) string {
	if md := app.Metadata(); md.ID != "" {
		return md.ID
	}
	return "storefront"
}
