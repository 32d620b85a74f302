package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/storefront/internal/storage"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestCatalogBaseURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	url := settings.GetCatalogBaseURL()
	if url != DefaultCatalogBaseURL {
		t.Errorf("Expected default base URL %s, got %s", DefaultCatalogBaseURL, url)
	}

	// Test setting custom value
	custom := "https://shop.example.com/api/"
	settings.SetCatalogBaseURL(custom)

	if got := settings.GetCatalogBaseURL(); got != custom {
		t.Errorf("Expected base URL %s, got %s", custom, got)
	}

	// Test empty value defaults back
	settings.SetCatalogBaseURL("")
	if got := settings.GetCatalogBaseURL(); got != DefaultCatalogBaseURL {
		t.Errorf("Empty base URL should default to %s, got %s", DefaultCatalogBaseURL, got)
	}
}

func TestStorageBackend(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if backend := settings.GetStorageBackend(); backend != DefaultStorageBackend {
		t.Errorf("Expected default backend %s, got %s", DefaultStorageBackend, backend)
	}

	settings.SetStorageBackend(storage.BackendGdata)
	if backend := settings.GetStorageBackend(); backend != storage.BackendGdata {
		t.Errorf("Expected backend %s, got %s", storage.BackendGdata, backend)
	}

	// Unknown names fall back to the default
	settings.SetStorageBackend("floppy")
	if backend := settings.GetStorageBackend(); backend != DefaultStorageBackend {
		t.Errorf("Unknown backend should fall back to %s, got %s", DefaultStorageBackend, backend)
	}
}

func TestTuningFile(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if path := settings.GetTuningFile(); path != "" {
		t.Errorf("Expected no tuning file by default, got %s", path)
	}

	settings.SetTuningFile("/etc/storefront/tuning.yaml")
	if path := settings.GetTuningFile(); path != "/etc/storefront/tuning.yaml" {
		t.Errorf("Expected tuning file to round-trip, got %s", path)
	}
}

func TestGetStorageBackendOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetStorageBackendOptions()
	expected := []string{storage.BackendPreferences, storage.BackendGdata}

	if len(options) != len(expected) {
		t.Fatalf("Expected %d backend options, got %d", len(expected), len(options))
	}
	for i := range expected {
		if options[i] != expected[i] {
			t.Errorf("Backend option %d: expected %s, got %s", i, expected[i], options[i])
		}
	}
}
