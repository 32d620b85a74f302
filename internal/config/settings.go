package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/storefront/internal/storage"
)

// Settings keys for Fyne preferences
const (
	KeyCatalogBaseURL = "catalog_base_url"
	KeyStorageBackend = "storage_backend"
	KeyTuningFile     = "tuning_file"
)

// Default values
const (
	DefaultCatalogBaseURL = "https://catalog.storefront.local/api/"
	DefaultStorageBackend = storage.BackendPreferences
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetCatalogBaseURL returns the product feed base URL
func (s *Settings) GetCatalogBaseURL() string {
	url := s.app.Preferences().String(KeyCatalogBaseURL)
	if url == "" {
		s.SetCatalogBaseURL(DefaultCatalogBaseURL)
		return DefaultCatalogBaseURL
	}
	return url
}

// SetCatalogBaseURL sets the product feed base URL
func (s *Settings) SetCatalogBaseURL(url string) {
	if url == "" {
		url = DefaultCatalogBaseURL
	}
	s.app.Preferences().SetString(KeyCatalogBaseURL, url)
}

// GetStorageBackend returns the durable storage backend name
func (s *Settings) GetStorageBackend() string {
	backend := s.app.Preferences().String(KeyStorageBackend)
	if backend == "" {
		s.SetStorageBackend(DefaultStorageBackend)
		return DefaultStorageBackend
	}
	return backend
}

// SetStorageBackend sets the storage backend, ignoring unknown names
func (s *Settings) SetStorageBackend(backend string) {
	valid := false
	for _, option := range s.GetStorageBackendOptions() {
		if option == backend {
			valid = true
			break
		}
	}
	if !valid {
		backend = DefaultStorageBackend
	}
	s.app.Preferences().SetString(KeyStorageBackend, backend)
}

// GetStorageBackendOptions returns the selectable storage backends
func (s *Settings) GetStorageBackendOptions() []string {
	return []string{storage.BackendPreferences, storage.BackendGdata}
}

// GetTuningFile returns the optional YAML tuning override path
func (s *Settings) GetTuningFile() string {
	return s.app.Preferences().String(KeyTuningFile)
}

// SetTuningFile sets the YAML tuning override path; empty clears it
func (s *Settings) SetTuningFile(path string) {
	s.app.Preferences().SetString(KeyTuningFile, path)
}
