package storage

import "fyne.io/fyne/v2"

// Preferences stores values as strings in Fyne application preferences
type Preferences struct {
	prefs fyne.Preferences
}

// NewPreferences creates a preferences backed store
func NewPreferences(prefs fyne.Preferences) *Preferences {
	return &Preferences{prefs: prefs}
}

// Load returns the stored value for key
func (p *Preferences) Load(key string) ([]byte, bool, error) {
	value := p.prefs.String(key)
	if value == "" {
		return nil, false, nil
	}
	return []byte(value), true, nil
}

// Save writes the value for key
func (p *Preferences) Save(key string, data []byte) error {
	p.prefs.SetString(key, string(data))
	return nil
}
