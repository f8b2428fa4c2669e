package scenario

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML scenario and validates it.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Load reads a scenario file. Files ending in .json are decoded as JSON, anything else as YAML.
// A scenario without a name takes the file's base name.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	ext := filepath.Ext(path)
	var sc Scenario
	if strings.EqualFold(ext, ".json") {
		if err := json.Unmarshal(data, &sc); err != nil {
			return nil, fmt.Errorf("%s: json unmarshal: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &sc); err != nil {
			return nil, fmt.Errorf("%s: yaml unmarshal: %w", path, err)
		}
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), ext)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &sc, nil
}

// LoadDir loads every .yaml, .yml and .json file in dir, sorted by file name.
func LoadDir(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml", ".json":
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("dir %s: %w", dir, os.ErrNotExist)
	}
	sort.Strings(names)

	out := make([]*Scenario, 0, len(names))
	var errs []error
	for _, name := range names {
		sc, err := Load(filepath.Join(dir, name))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, sc)
	}
	return out, errors.Join(errs...)
}

// Save writes sc as YAML, creating the parent directory when needed.
func Save(path string, sc *Scenario) error {
	if err := sc.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(sc)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
