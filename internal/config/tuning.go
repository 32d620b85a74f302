package config

import (
	_ "embed"
	"os"
	"time"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"

	"github.com/ytget/storefront/internal/flyout"
)

//go:embed tuning.yaml
var defaultTuningYAML []byte

// FlyoutTuning configures the add-to-cart flyout
type FlyoutTuning struct {
	CartAnchorX  float32 `yaml:"cartAnchorX"`
	VerticalBias float32 `yaml:"verticalBias"`
	ShrinkScale  float32 `yaml:"shrinkScale"`
	ShrinkMillis int     `yaml:"shrinkMillis"`
	FlyMillis    int     `yaml:"flyMillis"`
}

// CatalogTuning configures product paging
type CatalogTuning struct {
	PageSize        int    `yaml:"pageSize"`
	MaxItems        int    `yaml:"maxItems"`
	ProductListPath string `yaml:"productListPath"`
}

// LocaleTuning configures the language switch
type LocaleTuning struct {
	RestartDelayMillis int `yaml:"restartDelayMillis"`
}

// UITuning configures view animations
type UITuning struct {
	FadeInMillis int `yaml:"fadeInMillis"`
}

// Tuning holds the constants that shape the storefront's behavior
type Tuning struct {
	Flyout  FlyoutTuning  `yaml:"flyout"`
	Catalog CatalogTuning `yaml:"catalog"`
	Locale  LocaleTuning  `yaml:"locale"`
	UI      UITuning      `yaml:"ui"`
}

// DefaultTuning returns the embedded defaults
func DefaultTuning() Tuning {
	var t Tuning
	if err := yaml.Unmarshal(defaultTuningYAML, &t); err != nil {
		panic(errors.Wrap(err, "embedded tuning"))
	}
	return t
}

// LoadTuning returns the defaults overlaid with the YAML file at path.
// An empty path returns the defaults.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return t, errors.Wrapf(err, "read tuning %s", path)
	}
	if err := ParseTuning(data, &t); err != nil {
		return DefaultTuning(), errors.Wrapf(err, "tuning %s", path)
	}
	return t, nil
}

// ParseTuning overlays YAML data onto t and validates the result. Keys
// missing from data keep their values in t.
func ParseTuning(data []byte, t *Tuning) error {
	if err := yaml.Unmarshal(data, t); err != nil {
		return errors.Wrap(err, "parse")
	}
	return t.Validate()
}

// Validate rejects values the flyout and pager cannot work with
func (t Tuning) Validate() error {
	switch {
	case t.Flyout.ShrinkMillis <= 0:
		return errors.New("flyout.shrinkMillis must be positive")
	case t.Flyout.FlyMillis <= 0:
		return errors.New("flyout.flyMillis must be positive")
	case t.Flyout.ShrinkScale < 0:
		return errors.New("flyout.shrinkScale must not be negative")
	case t.Catalog.PageSize < 1:
		return errors.New("catalog.pageSize must be at least 1")
	case t.Catalog.MaxItems < t.Catalog.PageSize:
		return errors.New("catalog.maxItems must be at least catalog.pageSize")
	case t.Locale.RestartDelayMillis < 0:
		return errors.New("locale.restartDelayMillis must not be negative")
	case t.UI.FadeInMillis < 0:
		return errors.New("ui.fadeInMillis must not be negative")
	}
	return nil
}

// FlyoutTiming converts the flyout section to coordinator timing
func (t Tuning) FlyoutTiming() flyout.Timing {
	timing := flyout.DefaultTiming()
	timing.CartAnchorX = t.Flyout.CartAnchorX
	timing.VerticalBias = t.Flyout.VerticalBias
	timing.ShrinkScale = t.Flyout.ShrinkScale
	timing.Shrink = millis(t.Flyout.ShrinkMillis)
	timing.Fly = millis(t.Flyout.FlyMillis)
	return timing
}

// RestartDelay returns how long the UI waits before rebuilding for a new direction
func (t Tuning) RestartDelay() time.Duration {
	return millis(t.Locale.RestartDelayMillis)
}

// FadeIn returns the product card fade-in duration
func (t Tuning) FadeIn() time.Duration {
	return millis(t.UI.FadeInMillis)
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
