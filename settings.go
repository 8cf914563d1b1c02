package tween

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Settings is the caller-set configuration of an Engine.
type Settings struct {
	Delay    float64
	Duration float64
	PlayMode PlayMode
	WrapMode WrapMode
	Easing   EasingMode
}

// DefaultSettings returns the configuration of a new Engine.
func DefaultSettings() Settings {
	return Settings{Duration: DefaultDuration}
}

// Validate checks every field against the same rules as the Engine setters.
func (s Settings) Validate() error {
	if err := validateDelay(s.Delay); err != nil {
		return err
	}
	if err := validateDuration(s.Duration); err != nil {
		return err
	}
	if !s.PlayMode.valid() {
		return fmt.Errorf("tween: play mode %d: %w", uint8(s.PlayMode), ErrInvalidArgument)
	}
	if !s.WrapMode.valid() {
		return fmt.Errorf("tween: wrap mode %d: %w", uint8(s.WrapMode), ErrInvalidArgument)
	}
	if !s.Easing.valid() {
		return fmt.Errorf("tween: easing mode %d: %w", uint8(s.Easing), ErrInvalidArgument)
	}
	return nil
}

// SettingsText is the file form of Settings, with modes spelled by name.
//
//	delay: 0.25
//	duration: 2
//	play_mode: onenable
//	wrap_mode: pingpong
//	easing: InOutBack
type SettingsText struct {
	Delay    float64 `yaml:"delay" koanf:"delay"`
	Duration float64 `yaml:"duration" koanf:"duration"`
	PlayMode string  `yaml:"play_mode" koanf:"play_mode"`
	WrapMode string  `yaml:"wrap_mode" koanf:"wrap_mode"`
	Easing   string  `yaml:"easing" koanf:"easing"`
}

// DefaultSettingsText returns the text form of DefaultSettings. Decode files
// on top of it so that omitted keys keep their defaults.
func DefaultSettingsText() SettingsText {
	return SettingsText{Duration: DefaultDuration}
}

// Settings parses the mode names and validates the result.
func (t SettingsText) Settings() (Settings, error) {
	play, err := ParsePlayMode(t.PlayMode)
	if err != nil {
		return Settings{}, err
	}
	wrap, err := ParseWrapMode(t.WrapMode)
	if err != nil {
		return Settings{}, err
	}
	easing, err := ParseEasingMode(t.Easing)
	if err != nil {
		return Settings{}, err
	}
	s := Settings{
		Delay:    t.Delay,
		Duration: t.Duration,
		PlayMode: play,
		WrapMode: wrap,
		Easing:   easing,
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Text returns the file form of s.
func (s Settings) Text() SettingsText {
	return SettingsText{
		Delay:    s.Delay,
		Duration: s.Duration,
		PlayMode: s.PlayMode.String(),
		WrapMode: s.WrapMode.String(),
		Easing:   s.Easing.String(),
	}
}

// ParseSettings decodes a single YAML document into Settings. Omitted keys
// keep their defaults.
func ParseSettings(data []byte) (Settings, error) {
	text := DefaultSettingsText()
	if err := yaml.Unmarshal(data, &text); err != nil {
		return Settings{}, fmt.Errorf("tween: failed to parse settings YAML: %w", err)
	}
	return text.Settings()
}
