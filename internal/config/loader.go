package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultScenarioFile = "default.yaml"

// LoadScenario loads the scenario to run.
// Search order: customPath -> ~/.rover/scenarios/default.yaml -> ./configs/default.yaml -> embedded default
func LoadScenario(customPath string) (Scenario, error) {
	// Try custom path first
	if customPath != "" {
		return LoadFile(customPath)
	}

	// Try user config directory
	if userPath := userScenarioPath(defaultScenarioFile); userPath != "" {
		if s, err := LoadFile(userPath); err == nil {
			return s, nil
		}
	}

	// Try local configs directory
	if s, err := LoadFile(filepath.Join("configs", defaultScenarioFile)); err == nil {
		return s, nil
	}

	// Use embedded default YAML
	s, err := ParseYAML(defaultScenarioYAML)
	if err != nil {
		return DefaultScenario(), nil // Fallback to hardcoded if embed fails
	}
	return s, nil
}

// LoadFile reads and parses a single scenario file.
// A scenario without a name takes the file's base name.
func LoadFile(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("config: failed to read scenario %s: %w", path, err)
	}
	s, err := ParseYAML(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("config: failed to parse scenario %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// ParseYAML parses scenario YAML.
func ParseYAML(data []byte) (Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return s, nil
}

// userScenarioPath returns the path to a user scenario file, or empty if home is unavailable.
func userScenarioPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rover", "scenarios", filename)
}

// Loader finds scenario files in a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a new scenario loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all scenario files.
// Files that fail to parse are skipped. Returns scenarios sorted by name.
func (l *Loader) LoadAll() ([]Scenario, error) {
	var scenarios []Scenario

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isScenarioFile(path) {
			return nil
		}

		s, err := LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		scenarios = append(scenarios, s)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("config: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(scenarios, func(i, j int) bool {
		return scenarios[i].Name < scenarios[j].Name
	})
	return scenarios, nil
}

// LoadByName loads a specific scenario by name.
func (l *Loader) LoadByName(name string) (Scenario, error) {
	scenarios, err := l.LoadAll()
	if err != nil {
		return Scenario{}, err
	}

	for _, s := range scenarios {
		if s.Name == name {
			return s, nil
		}
	}
	return Scenario{}, fmt.Errorf("config: scenario not found: %s", name)
}

func isScenarioFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
