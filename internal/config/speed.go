package config

import "fmt"

// SpeedPreset represents a named simulation speed.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// ParseSpeedPreset validates a preset name. The empty string means no
// preset and leaves the configured tick rate alone.
func ParseSpeedPreset(name string) (SpeedPreset, error) {
	switch p := SpeedPreset(name); p {
	case "", SpeedSlow, SpeedNormal, SpeedFast:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown speed %q (want slow, normal or fast)", name)
	}
}

// TickRateForPreset returns the ticks per second of a preset, or 0 for none.
func TickRateForPreset(preset SpeedPreset) int {
	switch preset {
	case SpeedSlow:
		return 15
	case SpeedNormal:
		return 30
	case SpeedFast:
		return 60
	default:
		return 0
	}
}

// ApplySpeedPreset overrides the engine tick rate with the preset's.
func ApplySpeedPreset(cfg *KeyfallConfig, preset SpeedPreset) {
	if rate := TickRateForPreset(preset); rate > 0 {
		cfg.Engine.TickRate = rate
	}
}
