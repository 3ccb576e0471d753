package config

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

//go:embed presets.yaml
var presetsYAML []byte

// Presets maps a preset name to its raw YAML node. Each lookup decodes
// the node over fresh defaults so callers may modify the result.
var Presets = mustLoadPresets(presetsYAML)

func mustLoadPresets(data []byte) map[string]yaml.Node {
	var presets map[string]yaml.Node
	if err := yaml.Unmarshal(data, &presets); err != nil {
		panic(fmt.Sprintf("config: embedded presets: %v", err))
	}
	return presets
}

func GetPreset(name string) *Config {
	node, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	if err := node.Decode(cfg); err != nil {
		return nil
	}
	return cfg
}

// LoadPreset is GetPreset with an error naming the available presets.
func LoadPreset(name string) (*Config, error) {
	cfg := GetPreset(name)
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
