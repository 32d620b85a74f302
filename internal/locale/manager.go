package locale

import (
	"log/slog"
	"sync"

	"github.com/ytget/storefront/internal/storage"
)

// StorageKey is the durable key holding the language code
const StorageKey = "language"

// ToggleResult reports the outcome of a language switch
type ToggleResult struct {
	Language Language
	// RestartRequired is set when the new language needs a different layout
	// direction than the one the UI was built with.
	RestartRequired bool
}

// Manager owns the selected language and the direction the UI was built with.
// The applied direction only changes through Apply, which the UI calls when
// it rebuilds itself.
type Manager struct {
	mu      sync.RWMutex
	kv      storage.KV
	current Language
	applied Direction
	logger  *slog.Logger
}

// NewManager creates a manager starting at Default
func NewManager(kv storage.KV, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		kv:      kv,
		current: Default,
		applied: Default.Direction(),
		logger:  logger.With("component", "locale"),
	}
}

// Load reads the stored language and applies its direction. Missing or
// malformed values yield Default.
func (m *Manager) Load() Language {
	lang := Default
	data, ok, err := m.kv.Load(StorageKey)
	switch {
	case err != nil:
		m.logger.Warn("language read failed, using default", "error", err)
	case ok:
		lang = Parse(string(data))
	}

	m.mu.Lock()
	m.current = lang
	m.applied = lang.Direction()
	m.mu.Unlock()

	m.logger.Info("language loaded", "language", lang, "direction", lang.Direction())
	return lang
}

// Current returns the selected language
func (m *Manager) Current() Language {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Applied returns the direction the UI is currently laid out in
func (m *Manager) Applied() Direction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.applied
}

// Apply marks the current language's direction as laid out
func (m *Manager) Apply() Direction {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.applied = m.current.Direction()
	return m.applied
}

// Toggle switches to the other language and persists it. A write failure is
// logged; the switch still takes effect for this session.
func (m *Manager) Toggle() ToggleResult {
	m.mu.Lock()
	next := m.current.Toggle()
	m.current = next
	restart := next.Direction() != m.applied
	m.mu.Unlock()

	if err := m.kv.Save(StorageKey, []byte(next)); err != nil {
		m.logger.Warn("language write failed", "language", next, "error", err)
	}
	m.logger.Info("language toggled", "language", next, "restart_required", restart)

	return ToggleResult{Language: next, RestartRequired: restart}
}
