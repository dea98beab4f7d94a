// Package catalog holds the static sound-domain knowledge of the engine:
// the nine audio features with their valid ranges, the per-emotion sound
// profiles, and the time-of-day and weather modifier tables. Everything in
// this package is immutable lookup data.
package catalog

// Feature identifies one of the nine audio features describing a track.
type Feature string

// The nine audio features. Features holds them in canonical order; vectors
// are compared and serialized in this order.
const (
	Acousticness     Feature = "acousticness"
	Danceability     Feature = "danceability"
	Energy           Feature = "energy"
	Instrumentalness Feature = "instrumentalness"
	Liveness         Feature = "liveness"
	Loudness         Feature = "loudness"
	Speechiness      Feature = "speechiness"
	Tempo            Feature = "tempo"
	Valence          Feature = "valence"
)

// Features lists the audio features in canonical order.
var Features = []Feature{
	Acousticness,
	Danceability,
	Energy,
	Instrumentalness,
	Liveness,
	Loudness,
	Speechiness,
	Tempo,
	Valence,
}

// Range is an inclusive [Min, Max] interval for a feature value.
type Range struct {
	Min float64
	Max float64
}

// Clamp returns v limited to the range.
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Mid returns the midpoint of the range.
func (r Range) Mid() float64 {
	return (r.Min + r.Max) / 2
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Vector is a point estimate: one concrete value per feature.
type Vector map[Feature]float64

// RangeSet maps features to target ranges. A partial RangeSet (as in the
// context modifier tables) only constrains the features it lists.
type RangeSet map[Feature]Range

// Bounds defines the globally valid range for each feature. Most features
// are normalized to [0,1]; loudness is in dB and tempo in BPM.
var Bounds = RangeSet{
	Acousticness:     {Min: 0, Max: 1},
	Danceability:     {Min: 0, Max: 1},
	Energy:           {Min: 0, Max: 1},
	Instrumentalness: {Min: 0, Max: 1},
	Liveness:         {Min: 0, Max: 1},
	Loudness:         {Min: -60, Max: 0},
	Speechiness:      {Min: 0, Max: 1},
	Tempo:            {Min: 40, Max: 220},
	Valence:          {Min: 0, Max: 1},
}

// ClampToBounds returns a copy of v with every feature limited to its
// global valid range.
func ClampToBounds(v Vector) Vector {
	out := make(Vector, len(v))
	for f, val := range v {
		out[f] = Bounds[f].Clamp(val)
	}
	return out
}
