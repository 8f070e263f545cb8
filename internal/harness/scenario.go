package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Expected failure kinds, as written in scenario files.
const (
	ExpectPrefixConflict   = "prefix_conflict"
	ExpectCyclicConstraint = "cyclic_constraint"
)

// Scenario defines a conformance test scenario for the engine.
type Scenario struct {
	// Name uniquely identifies this scenario; golden files are keyed by it.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Words is the input word list, in sorted order per the unknown
	// alphabet. Normalized before the engine sees it, exactly like CLI
	// input.
	Words []string `yaml:"words"`

	// CaseSensitive skips case folding during normalization.
	CaseSensitive bool `yaml:"case_sensitive,omitempty"`

	// Expect specifies the expected terminal outcome.
	Expect ExpectClause `yaml:"expect"`
}

// ExpectClause is the expected engine outcome. Exactly one field must be
// set.
type ExpectClause struct {
	// Order is the expected inferred character order.
	Order string `yaml:"order,omitempty"`

	// Error is the expected failure kind: prefix_conflict or
	// cyclic_constraint.
	Error string `yaml:"error,omitempty"`
}

// Validate checks scenario well-formedness before execution.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario has no name")
	}
	if len(s.Words) == 0 {
		return fmt.Errorf("scenario %q has no words", s.Name)
	}

	hasOrder := s.Expect.Order != ""
	hasError := s.Expect.Error != ""
	if hasOrder == hasError {
		return fmt.Errorf("scenario %q must expect exactly one of order or error", s.Name)
	}
	if hasError && s.Expect.Error != ExpectPrefixConflict && s.Expect.Error != ExpectCyclicConstraint {
		return fmt.Errorf("scenario %q has unknown error kind %q", s.Name, s.Expect.Error)
	}
	return nil
}

// LoadScenario reads and validates a single scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &scenario, nil
}

// LoadScenarioDir loads every .yaml/.yml scenario under dir, sorted by
// path for deterministic execution order.
func LoadScenarioDir(dir string) ([]*Scenario, error) {
	var paths []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".yaml", ".yml":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan scenarios: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no scenario files found in %s", dir)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		scenario, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, scenario)
	}
	return scenarios, nil
}
