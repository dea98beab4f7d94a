package playlist

import (
	"hash/fnv"
	"math"

	"github.com/muesli/clusters"

	"github.com/lunamik/go-mood-playlist/internal/catalog"
	"github.com/lunamik/go-mood-playlist/internal/emotion"
)

// Score weighting: feature similarity dominates, popularity nudges.
const (
	similarityWeight = 0.85
	popularityWeight = 0.15
)

// Scorer rates candidates against one target feature vector. Scoring is
// pure and deterministic, so a scorer is safe for concurrent use.
type Scorer struct {
	target   clusters.Coordinates
	dominant emotion.Name
}

// NewScorer creates a scorer for a target vector. The dominant emotion
// drives the justification phrasing.
func NewScorer(target catalog.Vector, dominant emotion.Name) *Scorer {
	return &Scorer{
		target:   normalizedCoordinates(target),
		dominant: dominant,
	}
}

// Score computes the candidate's match score and justification. Candidates
// without features are scored against a deterministic estimate, which is
// also attached to the returned track so downstream aggregation sees a
// complete vector.
func (s *Scorer) Score(c Candidate) ScoredTrack {
	if len(c.Features) == 0 {
		c.Features = estimateFeatures(c.ID)
	}

	similarity := s.similarity(c.Features)
	popularity := float64(c.Popularity) / 100

	score := similarityWeight*similarity + popularityWeight*popularity
	score = math.Max(0, math.Min(1, score))

	return ScoredTrack{
		Candidate:     c,
		MatchScore:    score,
		Justification: justification(s.dominant, c.ID),
	}
}

// ScoreAll scores every candidate in input order.
func (s *Scorer) ScoreAll(candidates []Candidate) []ScoredTrack {
	scored := make([]ScoredTrack, len(candidates))
	for i, c := range candidates {
		scored[i] = s.Score(c)
	}
	return scored
}

// similarity is 1 at zero distance and 0 at the maximum possible distance
// across the normalized feature space.
func (s *Scorer) similarity(features catalog.Vector) float64 {
	coords := normalizedCoordinates(features)
	distance := math.Sqrt(coords.Distance(s.target))
	maxDistance := math.Sqrt(float64(len(catalog.Features)))
	return 1 - distance/maxDistance
}

// normalizedCoordinates maps a vector into [0,1] per feature, in canonical
// feature order, so dB and BPM features weigh the same as normalized ones.
func normalizedCoordinates(v catalog.Vector) clusters.Coordinates {
	coords := make(clusters.Coordinates, len(catalog.Features))
	for i, f := range catalog.Features {
		b := catalog.Bounds[f]
		coords[i] = (b.Clamp(v[f]) - b.Min) / (b.Max - b.Min)
	}
	return coords
}

// justificationPhrases map each emotion to a small fixed vocabulary. The
// track ID hash picks the phrase, so repeated runs agree.
var justificationPhrases = map[emotion.Name][]string{
	emotion.Joy: {
		"Bright and upbeat, a natural fit for a joyful mood",
		"Carries the kind of lift this mood is asking for",
		"High-spirited pick to keep the good mood rolling",
	},
	emotion.Sadness: {
		"Gentle and reflective, matching the quieter mood",
		"Soft textures that sit well with a melancholy moment",
		"A slow burner that gives the feeling room to breathe",
	},
	emotion.Anger: {
		"Drives hard enough to meet the mood head on",
		"Raw energy that channels the tension",
		"Heavy and insistent, built for letting off steam",
	},
	emotion.Fear: {
		"Atmospheric and steady, grounding an uneasy mood",
		"Sparse arrangement that keeps things calm",
		"A measured pick for an unsettled moment",
	},
	emotion.Surprise: {
		"Unexpected turns that suit the mood's spark",
		"Playful shifts to match a curious moment",
		"Keeps you guessing, just like the mood",
	},
	emotion.Disgust: {
		"Rough edges that fit the mood's bite",
		"Unpolished in the right way for this moment",
		"Gritty enough to match the feeling",
	},
	emotion.Trust: {
		"Warm and familiar, easy to settle into",
		"Steady groove for a comfortable mood",
		"Mellow pick that feels like good company",
	},
	emotion.Anticipation: {
		"Builds momentum for what's coming next",
		"Forward motion to match the mood's pull",
		"A rising arc that keeps the excitement up",
	},
}

var fallbackPhrases = []string{
	"A close match for the target sound",
	"Lines up well with the mood's sound profile",
}

func justification(dominant emotion.Name, trackID string) string {
	phrases, ok := justificationPhrases[dominant]
	if !ok || len(phrases) == 0 {
		phrases = fallbackPhrases
	}

	hasher := fnv.New32a()
	_, _ = hasher.Write([]byte(trackID))
	return phrases[int(hasher.Sum32())%len(phrases)]
}
