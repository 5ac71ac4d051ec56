package perf

import (
	"errors"
	"math"
	"testing"
)

func TestComputeUnknownAircraft(t *testing.T) {
	_, err := Compute(Request{Aircraft: "B744", PressureAltFt: 0, OATC: 15, Mode: FullRated})
	if err == nil {
		t.Fatal("expected an error for an unregistered aircraft")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T (%v)", err, err)
	}
}

func TestComputeReturnsBothValues(t *testing.T) {
	res, err := Compute(Request{Aircraft: KeyB772, PressureAltFt: 0, OATC: 15, Mode: FullRated})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.N1Percent != 101.0 {
		t.Errorf("N1 at (0ft, 15°C) = %v, want grid value 101.0", res.N1Percent)
	}
	if IsUndefined(res.SliderPercent) {
		t.Error("slider undefined for a defined N1")
	}
}

// Derates must never produce more thrust than the rating above them.
func TestDerateOrdering(t *testing.T) {
	for _, key := range []string{KeyB772, KeyB38M} {
		cfg, err := Aircraft(key)
		if err != nil {
			t.Fatal(err)
		}
		scaling, ok := cfg.Derates.(ScalingFromFullRated)
		if !ok {
			t.Fatalf("%s: expected scaling derates", key)
		}

		for _, alt := range []float64{-2000, 0, 2500, 8000} {
			// sweep the whole temperature axis, including clamped ends
			lo := scaling.Full.TempC[0] - 10
			hi := scaling.Full.TempC[len(scaling.Full.TempC)-1] + 10
			for temp := lo; temp <= hi; temp += 2.5 {
				max, _ := Compute(Request{Aircraft: key, PressureAltFt: alt, OATC: temp, Mode: FullRated})
				to1, _ := Compute(Request{Aircraft: key, PressureAltFt: alt, OATC: temp, Mode: Derate1})
				to2, _ := Compute(Request{Aircraft: key, PressureAltFt: alt, OATC: temp, Mode: Derate2})

				if IsUndefined(max.N1Percent) {
					if !IsUndefined(to1.N1Percent) || !IsUndefined(to2.N1Percent) {
						t.Errorf("%s (%vft, %v°C): derate defined where full rated is not", key, alt, temp)
					}
					continue
				}
				if max.N1Percent < to1.N1Percent || to1.N1Percent < to2.N1Percent {
					t.Errorf("%s (%vft, %v°C): ordering violated: MAX=%v TO1=%v TO2=%v",
						key, alt, temp, max.N1Percent, to1.N1Percent, to2.N1Percent)
				}
			}
		}
	}
}

func TestFlexSubstitution(t *testing.T) {
	assumed := 45.0

	t.Run("FLEX equals full rated at the selected temperature", func(t *testing.T) {
		flex, err := Compute(Request{
			Aircraft: KeyB772, PressureAltFt: 1000, OATC: 18,
			Mode: AssumedTemp, AssumedTempC: &assumed,
		})
		if err != nil {
			t.Fatal(err)
		}
		ref, err := Compute(Request{Aircraft: KeyB772, PressureAltFt: 1000, OATC: assumed, Mode: FullRated})
		if err != nil {
			t.Fatal(err)
		}
		if flex.N1Percent != ref.N1Percent {
			t.Errorf("FLEX at 45°C = %v, full rated at 45°C = %v", flex.N1Percent, ref.N1Percent)
		}
	})

	t.Run("missing selected temperature falls back to OAT", func(t *testing.T) {
		flex, err := Compute(Request{Aircraft: KeyB772, PressureAltFt: 1000, OATC: 18, Mode: AssumedTemp})
		if err != nil {
			t.Fatal(err)
		}
		ref, _ := Compute(Request{Aircraft: KeyB772, PressureAltFt: 1000, OATC: 18, Mode: FullRated})
		if flex.N1Percent != ref.N1Percent {
			t.Errorf("FLEX without SEL TEMP = %v, want full rated at OAT = %v", flex.N1Percent, ref.N1Percent)
		}
	})
}

// The A380 config pins every request to the full-rated table.
func TestAlwaysFullRatedOverride(t *testing.T) {
	assumed := 55.0
	ref, err := Compute(Request{Aircraft: KeyA388, PressureAltFt: 2000, OATC: 20, Mode: FullRated})
	if err != nil {
		t.Fatal(err)
	}

	for _, mode := range []ThrustMode{Derate1, Derate2, AssumedTemp} {
		res, err := Compute(Request{
			Aircraft: KeyA388, PressureAltFt: 2000, OATC: 20,
			Mode: mode, AssumedTempC: &assumed,
		})
		if err != nil {
			t.Fatalf("%s: %v", mode, err)
		}
		if res.N1Percent != ref.N1Percent {
			t.Errorf("%s: got %v, want full rated %v", mode, res.N1Percent, ref.N1Percent)
		}
	}
}

func TestA223UsesDistinctDerateTables(t *testing.T) {
	max, _ := Compute(Request{Aircraft: KeyA223, PressureAltFt: 0, OATC: 0, Mode: FullRated})
	to1, _ := Compute(Request{Aircraft: KeyA223, PressureAltFt: 0, OATC: 0, Mode: Derate1})
	to2, _ := Compute(Request{Aircraft: KeyA223, PressureAltFt: 0, OATC: 0, Mode: Derate2})

	if max.N1Percent != 84.6 || to1.N1Percent != 82.7 || to2.N1Percent != 78.4 {
		t.Errorf("grid lookups (0ft, 0°C): MAX=%v TO1=%v TO2=%v, want 84.6 / 82.7 / 78.4",
			max.N1Percent, to1.N1Percent, to2.N1Percent)
	}
}

func TestUndefinedPropagates(t *testing.T) {
	// hot and high on the 777: the 60°C row is blank from 4000 ft up, so a
	// query beyond both axis ends lands entirely on uncertified cells
	res, err := Compute(Request{Aircraft: KeyB772, PressureAltFt: 9000, OATC: 65, Mode: Derate2})
	if err != nil {
		t.Fatalf("uncertified point must not be an error: %v", err)
	}
	if !math.IsNaN(res.N1Percent) {
		t.Errorf("N1 = %v, want NaN", res.N1Percent)
	}
	if !math.IsNaN(res.SliderPercent) {
		t.Errorf("slider = %v, want NaN", res.SliderPercent)
	}
}
