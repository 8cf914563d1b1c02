package tween

import (
	"fmt"

	"github.com/phanxgames/tween/ease"
)

// EasingMode selects the function that turns progress into the smoothed
// factor handed to the Target.
type EasingMode uint8

const (
	EaseLinear EasingMode = iota
	EaseInQuad
	EaseOutQuad
	EaseInOutQuad
	EaseInCubic
	EaseOutCubic
	EaseInOutCubic
	EaseInQuart
	EaseOutQuart
	EaseInOutQuart
	EaseInQuint
	EaseOutQuint
	EaseInOutQuint
	EaseInBounce
	EaseOutBounce
	EaseInOutBounce
	EaseInBack
	EaseOutBack
	EaseInOutBack
	EaseInSine
	EaseOutSine
	EaseInOutSine
	EaseInExpo
	EaseOutExpo
	EaseInOutExpo
	EaseInCirc
	EaseOutCirc
	EaseInOutCirc
	EaseInElastic
	EaseOutElastic
	EaseInOutElastic
	EaseCustomCurve // delegate to the Engine's Curve
)

type easing struct {
	name string
	fn   ease.Func
}

var easings = [...]easing{
	EaseLinear:       {"Linear", ease.Linear},
	EaseInQuad:       {"InQuad", ease.InQuad},
	EaseOutQuad:      {"OutQuad", ease.OutQuad},
	EaseInOutQuad:    {"InOutQuad", ease.InOutQuad},
	EaseInCubic:      {"InCubic", ease.InCubic},
	EaseOutCubic:     {"OutCubic", ease.OutCubic},
	EaseInOutCubic:   {"InOutCubic", ease.InOutCubic},
	EaseInQuart:      {"InQuart", ease.InQuart},
	EaseOutQuart:     {"OutQuart", ease.OutQuart},
	EaseInOutQuart:   {"InOutQuart", ease.InOutQuart},
	EaseInQuint:      {"InQuint", ease.InQuint},
	EaseOutQuint:     {"OutQuint", ease.OutQuint},
	EaseInOutQuint:   {"InOutQuint", ease.InOutQuint},
	EaseInBounce:     {"InBounce", ease.InBounce},
	EaseOutBounce:    {"OutBounce", ease.OutBounce},
	EaseInOutBounce:  {"InOutBounce", ease.InOutBounce},
	EaseInBack:       {"InBack", ease.InBack},
	EaseOutBack:      {"OutBack", ease.OutBack},
	EaseInOutBack:    {"InOutBack", ease.InOutBack},
	EaseInSine:       {"InSine", ease.InSine},
	EaseOutSine:      {"OutSine", ease.OutSine},
	EaseInOutSine:    {"InOutSine", ease.InOutSine},
	EaseInExpo:       {"InExpo", ease.InExpo},
	EaseOutExpo:      {"OutExpo", ease.OutExpo},
	EaseInOutExpo:    {"InOutExpo", ease.InOutExpo},
	EaseInCirc:       {"InCirc", ease.InCirc},
	EaseOutCirc:      {"OutCirc", ease.OutCirc},
	EaseInOutCirc:    {"InOutCirc", ease.InOutCirc},
	EaseInElastic:    {"InElastic", ease.InElastic},
	EaseOutElastic:   {"OutElastic", ease.OutElastic},
	EaseInOutElastic: {"InOutElastic", ease.InOutElastic},
	EaseCustomCurve:  {"CustomCurve", nil},
}

func (m EasingMode) valid() bool { return int(m) < len(easings) }

func (m EasingMode) String() string {
	if !m.valid() {
		return fmt.Sprintf("EasingMode(%d)", uint8(m))
	}
	return easings[m].name
}

// Func returns the easing function for m. It returns nil for EaseCustomCurve
// and for unknown modes.
func (m EasingMode) Func() ease.Func {
	if !m.valid() {
		return nil
	}
	return easings[m].fn
}

// EasingModes returns every easing mode in declaration order.
func EasingModes() []EasingMode {
	modes := make([]EasingMode, len(easings))
	for i := range easings {
		modes[i] = EasingMode(i)
	}
	return modes
}

// ParseEasingMode parses an easing name such as "InOutCubic" or
// "out-bounce". Matching ignores case, dashes and underscores; the empty
// string is EaseLinear.
func ParseEasingMode(s string) (EasingMode, error) {
	key := normalizeName(s)
	if key == "" {
		return EaseLinear, nil
	}
	for i, e := range easings {
		if key == normalizeName(e.name) {
			return EasingMode(i), nil
		}
	}
	return 0, fmt.Errorf("tween: unknown easing %q: %w", s, ErrInvalidArgument)
}
