package constant

import "time"

// Indicator Timing Constants (in milliseconds)
const (
	// IndicatorHideDelayMs is how long the indicator stays after the last scroll
	IndicatorHideDelayMs = 1500

	// IndicatorShowFadeMs is the fade-in duration on scroll input
	IndicatorShowFadeMs = 120

	// IndicatorHideFadeMs is the fade-out duration after the hide deadline
	IndicatorHideFadeMs = 450

	// IndicatorHideDelay is the duration form of IndicatorHideDelayMs
	IndicatorHideDelay = IndicatorHideDelayMs * time.Millisecond

	// IndicatorShowFade is the duration form of IndicatorShowFadeMs
	IndicatorShowFade = IndicatorShowFadeMs * time.Millisecond

	// IndicatorHideFade is the duration form of IndicatorHideFadeMs
	IndicatorHideFade = IndicatorHideFadeMs * time.Millisecond
)

// Chrome Timing Constants
const (
	// ChromeSettleDelayMs batches bursts of chrome notifications while the
	// toolkit settles tab-bar and title-bar geometry
	ChromeSettleDelayMs = 75

	// ChromeSettleDelay is the duration form of ChromeSettleDelayMs
	ChromeSettleDelay = ChromeSettleDelayMs * time.Millisecond
)

// Oscillator Timing Constants
const (
	// OscillatorCadenceMs is the interval between oscillator resize requests
	OscillatorCadenceMs = 30

	// OscillatorCadence is the duration form of OscillatorCadenceMs
	OscillatorCadence = OscillatorCadenceMs * time.Millisecond
)
