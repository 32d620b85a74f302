package storage

import (
	"github.com/go-faster/errors"
	"github.com/quasilyte/gdata/v2"
)

// gdataObject groups every storefront key under one save object
const gdataObject = "storefront"

// Gdata stores each key as a property of one gdata save object
type Gdata struct {
	manager *gdata.Manager
}

// NewGdata creates a gdata backed store
func NewGdata(manager *gdata.Manager) *Gdata {
	return &Gdata{manager: manager}
}

// Load returns the stored value for key
func (g *Gdata) Load(key string) ([]byte, bool, error) {
	if !g.manager.ObjectPropExists(gdataObject, key) {
		return nil, false, nil
	}
	data, err := g.manager.LoadObjectProp(gdataObject, key)
	if err != nil {
		return nil, false, errors.Wrapf(err, "load %q", key)
	}
	return data, true, nil
}

// Save writes the value for key
func (g *Gdata) Save(key string, data []byte) error {
	if err := g.manager.SaveObjectProp(gdataObject, key, data); err != nil {
		return errors.Wrapf(err, "save %q", key)
	}
	return nil
}
