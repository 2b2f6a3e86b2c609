// Package config holds the tunable layout and timing values.
//
// The tab-bar increment, title-bar padding, and friends are empirical
// visual constants, not hard invariants. Defaults come from the constant
// package; an optional TOML file overrides individual fields.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/gridframe/constant"
	"github.com/lixenwraith/gridframe/geometry"
)

// DefaultConfigFile is the tuning file looked up in the working directory
const DefaultConfigFile = "gridframe.toml"

// Tuning holds every empirical constant of the viewport subsystem
// Durations are stored as milliseconds for TOML friendliness
type Tuning struct {
	// Content padding (pixels)
	ContentPaddingLeft   float64 `toml:"content_padding_left"`
	ContentPaddingRight  float64 `toml:"content_padding_right"`
	ContentPaddingBottom float64 `toml:"content_padding_bottom"`

	// Chrome (pixels)
	TitleBarPadding       float64 `toml:"title_bar_padding"`
	TabBarIncrement       float64 `toml:"tab_bar_increment"`
	DefaultTitleBarHeight float64 `toml:"default_title_bar_height"`

	// Scroll indicator (pixels)
	IndicatorWidth float64 `toml:"indicator_width"`
	IndicatorInset float64 `toml:"indicator_inset"`
	MinKnobHeight  float64 `toml:"min_knob_height"`

	// Timing (milliseconds)
	HideDelayMs      int64 `toml:"hide_delay_ms"`
	ShowFadeMs       int64 `toml:"show_fade_ms"`
	HideFadeMs       int64 `toml:"hide_fade_ms"`
	ChromeSettleMs   int64 `toml:"chrome_settle_ms"`
	OscillatorTickMs int64 `toml:"oscillator_tick_ms"`

	// Oscillator grid bounds (cells)
	OscillatorMinCols int `toml:"oscillator_min_cols"`
	OscillatorMinRows int `toml:"oscillator_min_rows"`
	OscillatorMaxCols int `toml:"oscillator_max_cols"`
	OscillatorMaxRows int `toml:"oscillator_max_rows"`
}

// Default returns the built-in tuning values
func Default() Tuning {
	return Tuning{
		ContentPaddingLeft:   constant.ContentPaddingLeft,
		ContentPaddingRight:  constant.ContentPaddingRight,
		ContentPaddingBottom: constant.ContentPaddingBottom,

		TitleBarPadding:       constant.TitleBarPadding,
		TabBarIncrement:       constant.TabBarIncrement,
		DefaultTitleBarHeight: constant.DefaultTitleBarHeight,

		IndicatorWidth: constant.ScrollIndicatorWidth,
		IndicatorInset: constant.ScrollIndicatorInset,
		MinKnobHeight:  constant.MinScrollKnobHeight,

		HideDelayMs:      constant.IndicatorHideDelayMs,
		ShowFadeMs:       constant.IndicatorShowFadeMs,
		HideFadeMs:       constant.IndicatorHideFadeMs,
		ChromeSettleMs:   constant.ChromeSettleDelayMs,
		OscillatorTickMs: constant.OscillatorCadenceMs,

		OscillatorMinCols: constant.OscillatorMinCols,
		OscillatorMinRows: constant.OscillatorMinRows,
		OscillatorMaxCols: constant.OscillatorMaxCols,
		OscillatorMaxRows: constant.OscillatorMaxRows,
	}
}

// Load reads a TOML tuning file layered over defaults
func Load(path string) (Tuning, error) {
	t := Default()
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return Tuning{}, fmt.Errorf("failed to decode tuning file %s: %w", path, err)
	}
	t.sanitize()
	return t, nil
}

// sanitize clamps loaded values that would stall the UI loop. A zero
// oscillator cadence would re-arm an already-due tick inside the same
// RunDue pass and never return
func (t *Tuning) sanitize() {
	if t.OscillatorTickMs < 1 {
		t.OscillatorTickMs = 1
	}
}

// LoadAuto loads tuning with priority: customPath > ./gridframe.toml > defaults
func LoadAuto(customPath string) (Tuning, error) {
	if customPath != "" {
		return Load(customPath)
	}
	if fileExists(DefaultConfigFile) {
		return Load(DefaultConfigFile)
	}
	return Default(), nil
}

// HideDelay is the duration form of HideDelayMs
func (t Tuning) HideDelay() time.Duration {
	return time.Duration(t.HideDelayMs) * time.Millisecond
}

// ShowFade is the duration form of ShowFadeMs
func (t Tuning) ShowFade() time.Duration {
	return time.Duration(t.ShowFadeMs) * time.Millisecond
}

// HideFade is the duration form of HideFadeMs
func (t Tuning) HideFade() time.Duration {
	return time.Duration(t.HideFadeMs) * time.Millisecond
}

// ChromeSettle is the duration form of ChromeSettleMs
func (t Tuning) ChromeSettle() time.Duration {
	return time.Duration(t.ChromeSettleMs) * time.Millisecond
}

// OscillatorTick is the duration form of OscillatorTickMs
func (t Tuning) OscillatorTick() time.Duration {
	return time.Duration(t.OscillatorTickMs) * time.Millisecond
}

// OscillatorLower returns the lower grid bound
func (t Tuning) OscillatorLower() geometry.GridSize {
	return geometry.GridSize{Cols: t.OscillatorMinCols, Rows: t.OscillatorMinRows}
}

// OscillatorUpper returns the upper grid bound
func (t Tuning) OscillatorUpper() geometry.GridSize {
	return geometry.GridSize{Cols: t.OscillatorMaxCols, Rows: t.OscillatorMaxRows}
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
