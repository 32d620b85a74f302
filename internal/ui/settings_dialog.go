package ui

import (
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/go-faster/errors"

	"github.com/ytget/storefront/internal/config"
)

// SettingsDialog edits the settings read at startup
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	catalogURLEntry *widget.Entry
	backendSelect   *widget.Select
	tuningEntry     *widget.Entry
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows a settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.catalogURLEntry = widget.NewEntry()
	sd.catalogURLEntry.SetPlaceHolder(config.DefaultCatalogBaseURL)
	sd.catalogURLEntry.Validator = validateURL

	sd.backendSelect = widget.NewSelect(sd.settings.GetStorageBackendOptions(), nil)

	sd.tuningEntry = widget.NewEntry()
	sd.tuningEntry.SetPlaceHolder("tuning.yaml")
	browseBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseTuning)
	tuningRow := container.NewBorder(nil, nil, nil, browseBtn, sd.tuningEntry)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyCatalogURL)),
		sd.catalogURLEntry,

		widget.NewLabel(l.GetText(KeyStorageBackend)),
		sd.backendSelect,

		widget.NewLabel(l.GetText(KeyTuningFile)),
		tuningRow,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyRestartToApply)),
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(ProductDialogWidth, 360))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.catalogURLEntry.SetText(sd.settings.GetCatalogBaseURL())
	sd.backendSelect.SetSelected(sd.settings.GetStorageBackend())
	sd.tuningEntry.SetText(sd.settings.GetTuningFile())
}

// onBrowseTuning picks a tuning file
func (sd *SettingsDialog) onBrowseTuning() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.tuningEntry.SetText(reader.URI().Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if raw := strings.TrimSpace(sd.catalogURLEntry.Text); raw != "" && validateURL(raw) == nil {
		sd.settings.SetCatalogBaseURL(raw)
	}
	if sd.backendSelect.Selected != "" {
		sd.settings.SetStorageBackend(sd.backendSelect.Selected)
	}
	sd.settings.SetTuningFile(strings.TrimSpace(sd.tuningEntry.Text))

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// validateURL accepts empty input and absolute http(s) URLs
func validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return errors.New("URL must start with http:// or https://")
	}

	return nil
}
