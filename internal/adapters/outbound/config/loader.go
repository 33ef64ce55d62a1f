package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/comanda/comanda/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".comanda.yaml"

// Loader reads demonstration scenarios from YAML.
type Loader struct{}

// New creates a Loader.
func New() *Loader { return &Loader{} }

// Load reads .comanda.yaml from dir. Returns the built-in scenario if
// the file does not exist.
func (l *Loader) Load(dir string) (domain.Scenario, error) {
	sc, err := l.LoadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultScenario(), nil
		}
		return domain.Scenario{}, err
	}
	return sc, nil
}

// LoadFile reads an explicit scenario file. The scenario is validated
// before it is returned, so bad tags fail here rather than mid-run.
func (l *Loader) LoadFile(path string) (domain.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Scenario{}, err
	}

	var sc domain.Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return domain.Scenario{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	if err := sc.Validate(); err != nil {
		return domain.Scenario{}, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}

	return sc, nil
}
