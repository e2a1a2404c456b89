package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Document is the full on-disk settings file: engine constants plus any
// racial-baseline presets a user has defined.
type Document struct {
	Settings EngineSettings `yaml:"settings"`
	Presets  PresetSet      `yaml:",inline"`
}

// DefaultDocument constructs a document with the compiled-in defaults and
// no presets.
func DefaultDocument() Document {
	return Document{Settings: DefaultEngineSettings()}
}

// Validate validates both the settings and every racial preset.
func (d Document) Validate() error {
	if err := d.Settings.Validate(); err != nil {
		return errors.Wrapf(err, "invalid engine settings")
	}
	if err := d.Presets.Validate(); err != nil {
		return err
	}
	return nil
}

// ConfigPath returns the path to the engine settings file.
func ConfigPath() (string, error) {
	path := filepath.Join("deep", "settings.yaml")
	return xdg.ConfigFile(path)
}

// LoadRuleSet loads a settings document from path.
func LoadRuleSet(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return the error directly so callers can use os.IsNotExist(err).
		return Document{}, err
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, errors.Wrapf(err, "yaml.Unmarshal")
	}
	return doc, nil
}

// SaveRuleSet saves a settings document to path, creating parent
// directories as needed.
func SaveRuleSet(path string, doc Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return errors.Wrapf(err, "yaml.Marshal")
	}

	dirPath := filepath.Dir(path)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return errors.Wrapf(err, "os.MkdirAll")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "os.WriteFile")
	}
	return nil
}

// LoadOrCreateSettings loads the settings document if it exists and writes
// a default one otherwise, following the same load-or-create-then-validate
// shape used to load the editor's own config file.
func LoadOrCreateSettings(forceDefault bool) (Document, error) {
	if forceDefault {
		return DefaultDocument(), nil
	}

	path, err := ConfigPath()
	if err != nil {
		return Document{}, err
	}

	doc, err := LoadRuleSet(path)
	if os.IsNotExist(err) {
		def := DefaultDocument()
		if err := SaveRuleSet(path, def); err != nil {
			return Document{}, errors.Wrapf(err, "writing default settings to %q", path)
		}
		return def, nil
	} else if err != nil {
		return Document{}, errors.Wrapf(err, "loading settings from %q", path)
	}

	if err := doc.Validate(); err != nil {
		return Document{}, errors.Wrapf(err, "invalid settings at %q", path)
	}

	return doc, nil
}
