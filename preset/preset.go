// Package preset loads named tween settings from configuration files.
//
// A preset file holds an optional [defaults] table, applied under every
// preset, and one table per preset under [presets]:
//
//	[defaults]
//	duration = 0.5
//
//	[presets.fade_in]
//	easing = "OutQuad"
//
//	[presets.pulse]
//	wrap_mode = "pingpong"
//	easing = "InOutSine"
//	duration = 1.2
//
// TOML (.toml) and YAML (.yaml, .yml) files are accepted. Keys are those of
// tween.SettingsText.
package preset

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/phanxgames/tween"
)

// ErrUnsupportedFormat is returned by Load for file extensions other than
// .toml, .yaml and .yml.
var ErrUnsupportedFormat = errors.New("preset: unsupported file format")

// ErrUnknownPreset is returned by Set.Apply for a name the set lacks.
var ErrUnknownPreset = errors.New("preset: unknown preset")

// Set maps preset names to validated settings.
type Set map[string]tween.Settings

// Load reads and validates every preset in the file at path. A preset that
// fails validation fails the whole load with an error wrapping
// tween.ErrInvalidArgument.
func Load(path string) (Set, error) {
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("preset: failed to load %s: %w", path, err)
	}
	return decode(k)
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yamlParser{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func decode(k *koanf.Koanf) (Set, error) {
	base := tween.DefaultSettingsText()
	if k.Exists("defaults") {
		if err := k.Unmarshal("defaults", &base); err != nil {
			return nil, fmt.Errorf("preset: failed to decode defaults: %w", err)
		}
	}

	set := make(Set)
	for _, name := range k.MapKeys("presets") {
		text := base
		if err := k.Unmarshal("presets."+name, &text); err != nil {
			return nil, fmt.Errorf("preset %q: failed to decode: %w", name, err)
		}
		s, err := text.Settings()
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		set[name] = s
	}
	return set, nil
}

// Names returns the preset names in sorted order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply configures e with the named preset.
func (s Set) Apply(name string, e *tween.Engine) error {
	settings, ok := s[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return e.ApplySettings(settings)
}
