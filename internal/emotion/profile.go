// Package emotion defines the emotional-state model the playlist engine
// consumes: a profile of intensities across eight fixed emotions plus
// overall sentiment and intensity scalars.
package emotion

import (
	"sort"
	"time"
)

// Name identifies one of the eight recognized emotions.
type Name string

// The eight recognized emotions. Names holds them in canonical order,
// which is also the tie-break order when ranking by intensity.
const (
	Joy          Name = "joy"
	Sadness      Name = "sadness"
	Anger        Name = "anger"
	Fear         Name = "fear"
	Surprise     Name = "surprise"
	Disgust      Name = "disgust"
	Trust        Name = "trust"
	Anticipation Name = "anticipation"
)

// Names lists the recognized emotions in canonical order.
var Names = []Name{Joy, Sadness, Anger, Fear, Surprise, Disgust, Trust, Anticipation}

// Profile is a snapshot of someone's emotional state. Emotion values are
// independent intensities in [0,1] and need not sum to 1. Profiles are
// treated as immutable: every derived profile is a new value.
type Profile struct {
	Emotions   map[Name]float64 // intensity per emotion, [0,1]
	Sentiment  float64          // overall polarity, [-1,1]
	Intensity  float64          // overall strength, [0,1]
	CapturedAt time.Time
}

// Weighted pairs an emotion with its intensity in a ranking.
type Weighted struct {
	Name   Name
	Weight float64
}

// Dominant returns the top n emotions by intensity, descending. Ties break
// by the canonical order of Names. Keys outside the recognized set are
// ignored. Returns fewer than n entries only if n exceeds the emotion count.
func (p Profile) Dominant(n int) []Weighted {
	ranked := make([]Weighted, 0, len(Names))
	for _, name := range Names {
		ranked = append(ranked, Weighted{Name: name, Weight: p.Emotions[name]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Weight > ranked[j].Weight
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// DominantEmotion returns the single highest-intensity emotion.
func (p Profile) DominantEmotion() Name {
	return p.Dominant(1)[0].Name
}
