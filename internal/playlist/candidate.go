// Package playlist scores candidate tracks against a target sound profile
// and assembles the ranked result into a describable playlist.
package playlist

import (
	"time"

	"github.com/lunamik/go-mood-playlist/internal/catalog"
	"github.com/lunamik/go-mood-playlist/internal/emotion"
)

// Candidate is a track supplied by an external candidate source. Features
// may be nil when the source could not provide audio features; scoring then
// falls back to a deterministic estimate.
type Candidate struct {
	ID         string
	Title      string
	Artists    []string
	Album      string
	Duration   time.Duration
	Explicit   bool
	Popularity int // 0-100
	Features   catalog.Vector
}

// ScoredTrack is a candidate with its computed fitness against the target
// and a human-readable justification. Scored tracks live for a single
// engine invocation and are never persisted.
type ScoredTrack struct {
	Candidate
	MatchScore    float64 // [0,1]
	Justification string
}

// Summary holds the mean of selected tracks' own feature values.
type Summary struct {
	AvgEnergy       float64
	AvgValence      float64
	AvgDanceability float64
	AvgAcousticness float64
	AvgTempo        float64
}

// Playlist is the engine's sole output artifact. Immutable once returned.
type Playlist struct {
	ID             string
	Name           string
	Description    string
	Tracks         []ScoredTrack
	MoodContext    emotion.Profile
	FeatureSummary Summary
	TotalDuration  time.Duration
	CreatedAt      time.Time
}
