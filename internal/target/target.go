// Package target derives a concrete sound-feature target from an emotion
// profile and optional listening context. Compute is pure: identical inputs
// always produce identical output.
package target

import (
	"github.com/lunamik/go-mood-playlist/internal/catalog"
	"github.com/lunamik/go-mood-playlist/internal/emotion"
)

// EnergyPreference lets the caller pin the energy level instead of deriving
// it from the mood.
type EnergyPreference string

// Recognized energy preferences. Adaptive (the default, and the zero-ish
// behavior for unknown values) keeps the mood-derived energy.
const (
	EnergyAdaptive EnergyPreference = "adaptive"
	EnergyLow      EnergyPreference = "low"
	EnergyMedium   EnergyPreference = "medium"
	EnergyHigh     EnergyPreference = "high"
)

// energyTiers are the fixed sub-ranges a non-adaptive preference forces
// energy into. The target lands on the tier midpoint.
var energyTiers = map[EnergyPreference]catalog.Range{
	EnergyLow:    {Min: 0.10, Max: 0.40},
	EnergyMedium: {Min: 0.40, Max: 0.70},
	EnergyHigh:   {Min: 0.70, Max: 1.00},
}

// Context carries the optional listening context for target computation.
// Zero values mean "no contribution".
type Context struct {
	TimeOfDay        catalog.TimeOfDay
	Weather          catalog.Weather
	EnergyPreference EnergyPreference
	PreferredGenres  []string
}

// dominantCount is how many top emotions shape the target.
const dominantCount = 3

// maxGenres caps the genre tag list; seed lists beyond 5 are rejected by
// the upstream recommendation API.
const maxGenres = 5

// Thresholds and deltas for the sentiment and intensity adjustments.
const (
	sentimentThreshold = 0.3
	sentimentValence   = 0.2
	sentimentEnergy    = 0.1

	highIntensity      = 0.7
	lowIntensity       = 0.3
	intensityEnergy    = 0.15
	intensityTempoBPM  = 20
	intensityAcoustic  = 0.2
	dominantTagMinimum = 0.3
)

// Compute turns an emotion profile and optional context into a target
// feature vector and a genre tag list.
func Compute(profile emotion.Profile, ctx Context) (catalog.Vector, []string) {
	dominant := profile.Dominant(dominantCount)

	vector := weightedBase(dominant)
	vector = applySentiment(vector, profile.Sentiment)
	vector = applyIntensity(vector, profile.Intensity)
	vector = applyContext(vector, ctx)
	vector = applyEnergyPreference(vector, ctx.EnergyPreference)

	return catalog.ClampToBounds(vector), genreTags(dominant, ctx)
}

// weightedBase accumulates, per feature, a weighted point estimate inside
// each dominant emotion's catalog range. A zero total weight is treated as
// 1 so the result is a zero vector rather than a division fault.
func weightedBase(dominant []emotion.Weighted) catalog.Vector {
	sums := make(catalog.Vector, len(catalog.Features))
	var totalWeight float64

	for _, d := range dominant {
		ranges := catalog.ForEmotion(d.Name).Ranges
		for _, f := range catalog.Features {
			r := ranges[f]
			point := r.Min + (r.Max-r.Min)*d.Weight
			sums[f] += point * d.Weight
		}
		totalWeight += d.Weight
	}

	if totalWeight == 0 {
		totalWeight = 1
	}

	vector := make(catalog.Vector, len(sums))
	for f, sum := range sums {
		vector[f] = sum / totalWeight
	}
	return vector
}

func applySentiment(v catalog.Vector, sentiment float64) catalog.Vector {
	switch {
	case sentiment > sentimentThreshold:
		v = adjust(v, catalog.Valence, sentimentValence)
		v = adjust(v, catalog.Energy, sentimentEnergy)
	case sentiment < -sentimentThreshold:
		v = adjust(v, catalog.Valence, -sentimentValence)
		v = adjust(v, catalog.Energy, -sentimentEnergy)
	}
	return v
}

func applyIntensity(v catalog.Vector, intensity float64) catalog.Vector {
	switch {
	case intensity > highIntensity:
		v = adjust(v, catalog.Energy, intensityEnergy)
		v = adjust(v, catalog.Tempo, intensityTempoBPM)
	case intensity < lowIntensity:
		v = adjust(v, catalog.Energy, -intensityEnergy)
		v = adjust(v, catalog.Acousticness, intensityAcoustic)
	}
	return v
}

// adjust shifts one feature and clamps it to the feature's global bounds.
func adjust(v catalog.Vector, f catalog.Feature, delta float64) catalog.Vector {
	v[f] = catalog.Bounds[f].Clamp(v[f] + delta)
	return v
}

// applyContext clamps the vector into any override ranges supplied by the
// daypart and weather tables. Overrides narrow the result; features a
// modifier does not list pass through unchanged.
func applyContext(v catalog.Vector, ctx Context) catalog.Vector {
	for _, mod := range []catalog.Modifier{
		catalog.ForTimeOfDay(ctx.TimeOfDay),
		catalog.ForWeather(ctx.Weather),
	} {
		for f, r := range mod.Ranges {
			v[f] = r.Clamp(v[f])
		}
	}
	return v
}

// applyEnergyPreference pins energy to the preference tier midpoint,
// replacing whatever the mood computed. Adaptive and unknown preferences
// leave the vector alone.
func applyEnergyPreference(v catalog.Vector, pref EnergyPreference) catalog.Vector {
	tier, ok := energyTiers[pref]
	if !ok {
		return v
	}
	v[catalog.Energy] = tier.Mid()
	return v
}

// genreTags unions caller preferences, dominant-emotion tags, and context
// tags, deduplicated in that priority order and capped at maxGenres.
// Caller preferences are always retained first.
func genreTags(dominant []emotion.Weighted, ctx Context) []string {
	var ordered []string
	ordered = append(ordered, ctx.PreferredGenres...)

	for _, d := range dominant {
		if d.Weight > dominantTagMinimum {
			ordered = append(ordered, catalog.ForEmotion(d.Name).Genres...)
		}
	}
	ordered = append(ordered, catalog.ForTimeOfDay(ctx.TimeOfDay).Genres...)
	ordered = append(ordered, catalog.ForWeather(ctx.Weather).Genres...)

	seen := make(map[string]struct{}, len(ordered))
	tags := make([]string, 0, maxGenres)
	for _, g := range ordered {
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		tags = append(tags, g)
		if len(tags) == maxGenres {
			break
		}
	}
	return tags
}
