package perf

import (
	"math"
	"testing"
)

func TestSliderEndpoints(t *testing.T) {
	// every registered calibration must hit the ends of the range exactly
	for key, cfg := range registry {
		if got := cfg.Slider.SliderPercent(cfg.Slider.N1AtZero); got != 0 {
			t.Errorf("%s: slider at N1AtZero = %v, want 0", key, got)
		}
		if got := cfg.Slider.SliderPercent(cfg.Slider.N1AtFull); got != 100 {
			t.Errorf("%s: slider at N1AtFull = %v, want 100", key, got)
		}
	}
}

func TestSliderClamping(t *testing.T) {
	cal := SliderCalibration{N1AtZero: 20, N1AtFull: 101}
	if got := cal.SliderPercent(5); got != 0 {
		t.Errorf("below span: got %v, want 0", got)
	}
	if got := cal.SliderPercent(150); got != 100 {
		t.Errorf("above span: got %v, want 100", got)
	}
}

func TestSliderConcrete(t *testing.T) {
	// (60.5 - 20) / 81 * 100 is exactly 50 in float64
	cal := SliderCalibration{N1AtZero: 20, N1AtFull: 101}
	if got := cal.SliderPercent(60.5); got != 50.0 {
		t.Errorf("SliderPercent(60.5) = %v, want 50.0", got)
	}
}

func TestSliderUndefinedPassesThrough(t *testing.T) {
	cal := SliderCalibration{N1AtZero: 20, N1AtFull: 101}
	if got := cal.SliderPercent(nan); !math.IsNaN(got) {
		t.Errorf("SliderPercent(NaN) = %v, want NaN", got)
	}
}
