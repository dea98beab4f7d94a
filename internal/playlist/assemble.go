package playlist

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lunamik/go-mood-playlist/internal/catalog"
	"github.com/lunamik/go-mood-playlist/internal/emotion"
)

const dateFormat = "Jan 2, 2006"

// Options controls playlist assembly.
type Options struct {
	Length          int
	ExcludeExplicit bool
	TimeOfDay       catalog.TimeOfDay // optional name prefix
	ListenerNames   []string          // couple mode: both listeners' names
	Now             time.Time         // zero means time.Now()
}

// Assemble filters, ranks, and truncates scored tracks into a playlist.
// An empty pool after filtering is not an error: the result has zero
// tracks and a description saying no matches were found.
func Assemble(scored []ScoredTrack, mood emotion.Profile, opts Options) Playlist {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	selected := make([]ScoredTrack, 0, len(scored))
	for _, t := range scored {
		if opts.ExcludeExplicit && t.Explicit {
			continue
		}
		selected = append(selected, t)
	}

	// Stable: equal scores keep their candidate order.
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].MatchScore > selected[j].MatchScore
	})

	if opts.Length > 0 && len(selected) > opts.Length {
		selected = selected[:opts.Length]
	}

	var total time.Duration
	for _, t := range selected {
		total += t.Duration
	}

	dominant := mood.DominantEmotion()

	return Playlist{
		ID:             uuid.NewString(),
		Name:           synthesizeName(dominant, opts, now),
		Description:    synthesizeDescription(dominant, mood.Sentiment, len(selected), opts.ListenerNames),
		Tracks:         selected,
		MoodContext:    mood,
		FeatureSummary: summarize(selected),
		TotalDuration:  total,
		CreatedAt:      now,
	}
}

// summarize averages the selected tracks' own feature values, not the
// target vector.
func summarize(tracks []ScoredTrack) Summary {
	if len(tracks) == 0 {
		return Summary{}
	}

	var s Summary
	for _, t := range tracks {
		s.AvgEnergy += t.Features[catalog.Energy]
		s.AvgValence += t.Features[catalog.Valence]
		s.AvgDanceability += t.Features[catalog.Danceability]
		s.AvgAcousticness += t.Features[catalog.Acousticness]
		s.AvgTempo += t.Features[catalog.Tempo]
	}

	n := float64(len(tracks))
	s.AvgEnergy /= n
	s.AvgValence /= n
	s.AvgDanceability /= n
	s.AvgAcousticness /= n
	s.AvgTempo /= n
	return s
}

var timeOfDayPrefixes = map[catalog.TimeOfDay]string{
	catalog.Morning:   "Morning",
	catalog.Afternoon: "Afternoon",
	catalog.Evening:   "Evening",
	catalog.Night:     "Late Night",
}

var moodAdjectives = map[emotion.Name]string{
	emotion.Joy:          "Radiant",
	emotion.Sadness:      "Wistful",
	emotion.Anger:        "Fierce",
	emotion.Fear:         "Shadowed",
	emotion.Surprise:     "Electric",
	emotion.Disgust:      "Gritty",
	emotion.Trust:        "Warm",
	emotion.Anticipation: "Rising",
}

// suffixNouns is the fixed vocabulary the name suffix is drawn from.
var suffixNouns = []string{"Mix", "Session", "Rotation", "Frequencies", "Waves"}

// synthesizeName builds a playlist name from an optional daypart prefix, an
// adjective for the dominant emotion, a hash-picked suffix noun, and the
// date. The noun choice depends only on the emotion and the date, so the
// same mood on the same day names the same playlist.
func synthesizeName(dominant emotion.Name, opts Options, now time.Time) string {
	adjective, ok := moodAdjectives[dominant]
	if !ok {
		adjective = "Mood"
	}

	date := now.Format(dateFormat)

	hasher := fnv.New32a()
	_, _ = hasher.Write([]byte(string(dominant) + date))
	noun := suffixNouns[int(hasher.Sum32())%len(suffixNouns)]

	var parts []string
	if len(opts.ListenerNames) == 2 {
		parts = append(parts, fmt.Sprintf("%s & %s's", opts.ListenerNames[0], opts.ListenerNames[1]))
	} else if prefix, ok := timeOfDayPrefixes[opts.TimeOfDay]; ok {
		parts = append(parts, prefix)
	}
	parts = append(parts, adjective, noun)

	return fmt.Sprintf("%s: %s", strings.Join(parts, " "), date)
}

func synthesizeDescription(dominant emotion.Name, sentiment float64, count int, names []string) string {
	if count == 0 {
		return "No matching tracks were found for this mood. Try widening the genre preferences or relaxing the filters."
	}

	polarity := "balanced"
	switch {
	case sentiment > 0.3:
		polarity = "positive"
	case sentiment < -0.3:
		polarity = "low"
	}

	trackWord := "tracks"
	if count == 1 {
		trackWord = "track"
	}

	if len(names) == 2 {
		return fmt.Sprintf("%d %s tuned to the %s, %s mood %s and %s share right now.",
			count, trackWord, polarity, dominant, names[0], names[1])
	}
	return fmt.Sprintf("%d %s tuned to a %s, %s-leaning mood.", count, trackWord, polarity, dominant)
}
