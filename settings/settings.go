package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the user preferences kept between runs.
type Settings struct {
	Fullscreen bool `yaml:"fullscreen"`
	Inspector  bool `yaml:"inspector"`
}

func Default() Settings {
	return Settings{}
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Manager loads and saves Settings through gdata. A nil gdata manager keeps
// settings in memory only.
type Manager struct {
	store    *gdata.Manager
	settings Settings
}

// Open creates the platform data store for appName. When the store cannot be
// opened the manager still works, without persistence.
func Open(appName string) *Manager {
	store, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("settings: no persistent store: %v", err)
		store = nil
	}
	return New(store)
}

func New(store *gdata.Manager) *Manager {
	m := &Manager{store: store, settings: Default()}
	if err := m.Load(); err != nil {
		log.Printf("settings: %v (using defaults)", err)
	}
	return m
}

func (m *Manager) Load() error {
	m.settings = Default()
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	m.settings = loaded
	return nil
}

func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}
	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	return nil
}

func (m *Manager) Get() Settings {
	return m.settings
}

func (m *Manager) SetFullscreen(on bool) {
	m.settings.Fullscreen = on
}

func (m *Manager) SetInspector(on bool) {
	m.settings.Inspector = on
}
