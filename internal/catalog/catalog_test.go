package catalog

import (
	"testing"

	"github.com/lunamik/go-mood-playlist/internal/emotion"
)

func TestForEmotionCoversAllEmotions(t *testing.T) {
	for _, name := range emotion.Names {
		t.Run(string(name), func(t *testing.T) {
			profile := ForEmotion(name)

			if n := len(profile.Genres); n < 4 || n > 6 {
				t.Errorf("genre count = %d, want 4-6", n)
			}
			if len(profile.Ranges) != len(Features) {
				t.Errorf("range count = %d, want %d", len(profile.Ranges), len(Features))
			}
			for _, f := range Features {
				r, ok := profile.Ranges[f]
				if !ok {
					t.Errorf("missing range for %s", f)
					continue
				}
				if r.Min > r.Max {
					t.Errorf("%s range inverted: [%v,%v]", f, r.Min, r.Max)
				}
				if !Bounds[f].Contains(r.Min) || !Bounds[f].Contains(r.Max) {
					t.Errorf("%s range [%v,%v] outside bounds [%v,%v]",
						f, r.Min, r.Max, Bounds[f].Min, Bounds[f].Max)
				}
			}
		})
	}
}

func TestUnknownKeysReturnZeroValues(t *testing.T) {
	if p := ForEmotion("boredom"); len(p.Genres) != 0 || len(p.Ranges) != 0 {
		t.Errorf("unknown emotion returned non-empty profile: %+v", p)
	}
	if m := ForTimeOfDay("midnight"); len(m.Genres) != 0 || len(m.Ranges) != 0 {
		t.Errorf("unknown daypart returned non-empty modifier: %+v", m)
	}
	if m := ForWeather("hail"); len(m.Genres) != 0 || len(m.Ranges) != 0 {
		t.Errorf("unknown weather returned non-empty modifier: %+v", m)
	}
}

func TestModifierRangesWithinBounds(t *testing.T) {
	for _, daypart := range []TimeOfDay{Morning, Afternoon, Evening, Night} {
		for f, r := range ForTimeOfDay(daypart).Ranges {
			if !Bounds[f].Contains(r.Min) || !Bounds[f].Contains(r.Max) {
				t.Errorf("%s %s range [%v,%v] outside bounds", daypart, f, r.Min, r.Max)
			}
		}
	}
	for _, condition := range []Weather{Sunny, Rainy, Cloudy, Stormy} {
		for f, r := range ForWeather(condition).Ranges {
			if !Bounds[f].Contains(r.Min) || !Bounds[f].Contains(r.Max) {
				t.Errorf("%s %s range [%v,%v] outside bounds", condition, f, r.Min, r.Max)
			}
		}
	}
}

func TestRangeClamp(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		v    float64
		want float64
	}{
		{"below min", Range{Min: 0.2, Max: 0.8}, 0.1, 0.2},
		{"above max", Range{Min: 0.2, Max: 0.8}, 0.9, 0.8},
		{"inside passes through", Range{Min: 0.2, Max: 0.8}, 0.5, 0.5},
		{"at min", Range{Min: 0.2, Max: 0.8}, 0.2, 0.2},
		{"at max", Range{Min: 0.2, Max: 0.8}, 0.8, 0.8},
		{"negative range", Range{Min: -20, Max: -5}, -30, -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Clamp(tt.v); got != tt.want {
				t.Errorf("Clamp(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestClampToBounds(t *testing.T) {
	v := Vector{
		Energy:   1.5,
		Valence:  -0.2,
		Tempo:    300,
		Loudness: -90,
	}

	got := ClampToBounds(v)

	if got[Energy] != 1 {
		t.Errorf("Energy = %v, want 1", got[Energy])
	}
	if got[Valence] != 0 {
		t.Errorf("Valence = %v, want 0", got[Valence])
	}
	if got[Tempo] != 220 {
		t.Errorf("Tempo = %v, want 220", got[Tempo])
	}
	if got[Loudness] != -60 {
		t.Errorf("Loudness = %v, want -60", got[Loudness])
	}

	// Input untouched.
	if v[Energy] != 1.5 {
		t.Errorf("ClampToBounds mutated its input: %v", v)
	}
}
