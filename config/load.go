package config

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for files whose extension is not .yaml, .yml or .toml.
var ErrUnknownFormat = errors.New("config: unsupported file format")

// decodeFile reads path from fsys and strictly decodes it into v.
func decodeFile(fsys afero.Fs, path string, v any) error {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("config: parsing %s: %w", path, err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), v)
		if err != nil {
			return fmt.Errorf("config: parsing %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return fmt.Errorf("config: parsing %s: unknown keys %v", path, keys)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	return nil
}

// LoadLayout reads and validates a facility layout.
func LoadLayout(fsys afero.Fs, path string) (*Layout, error) {
	var l Layout
	if err := decodeFile(fsys, path, &l); err != nil {
		return nil, err
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}

	return &l, nil
}

// LoadScenario reads and validates a triage scenario.
func LoadScenario(fsys afero.Fs, path string) (*Scenario, error) {
	var s Scenario
	if err := decodeFile(fsys, path, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}
