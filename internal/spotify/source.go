package spotify

import (
	"context"
	"fmt"
	"time"

	"github.com/zmb3/spotify/v2"

	"github.com/lunamik/go-mood-playlist/internal/catalog"
	"github.com/lunamik/go-mood-playlist/internal/engine"
	"github.com/lunamik/go-mood-playlist/internal/playlist"
)

// Spotify API batch limits.
const (
	maxTracksPerRequest   = 50  // GetTracks
	maxFeaturesPerRequest = 100 // GetAudioFeatures
)

// Popularity bounds applied when the caller passes bias hints.
const (
	popularBiasMin   = 50
	discoveryBiasMax = 60
)

// defaultSeedGenre keeps the recommendation request valid when the target
// produced no genre tags; the endpoint requires at least one seed.
const defaultSeedGenre = "pop"

// api is the slice of the Spotify client the source needs. Narrowed for
// testing.
type api interface {
	GetRecommendations(ctx context.Context, seeds spotify.Seeds, trackAttributes *spotify.TrackAttributes, opts ...spotify.RequestOption) (*spotify.Recommendations, error)
	GetTracks(ctx context.Context, ids []spotify.ID, opts ...spotify.RequestOption) ([]*spotify.FullTrack, error)
	GetAudioFeatures(ctx context.Context, ids ...spotify.ID) ([]*spotify.AudioFeatures, error)
}

// Source adapts the Spotify recommendation endpoint to the engine's
// CandidateSource contract.
type Source struct {
	api api
}

// NewSource creates a candidate source backed by an authenticated client.
func NewSource(client *spotify.Client) *Source {
	return &Source{api: client}
}

// Candidates fetches recommendations seeded by the request's genres and
// target vector, then hydrates popularity and audio features in batches.
// Failures surface to the caller; retry policy belongs to the transport.
func (s *Source) Candidates(ctx context.Context, req engine.CandidateRequest) ([]playlist.Candidate, error) {
	genres := req.Genres
	if len(genres) == 0 {
		genres = []string{defaultSeedGenre}
	}

	recs, err := s.api.GetRecommendations(ctx,
		spotify.Seeds{Genres: genres},
		trackAttributes(req),
		spotify.Limit(req.Limit),
	)
	if err != nil {
		return nil, fmt.Errorf("getting recommendations: %w", err)
	}
	if len(recs.Tracks) == 0 {
		return nil, nil
	}

	ids := make([]spotify.ID, len(recs.Tracks))
	for i, t := range recs.Tracks {
		ids[i] = t.ID
	}

	full, err := s.fullTracks(ctx, ids)
	if err != nil {
		return nil, err
	}

	features, err := s.audioFeatures(ctx, ids)
	if err != nil {
		return nil, err
	}

	candidates := make([]playlist.Candidate, 0, len(recs.Tracks))
	for _, rec := range recs.Tracks {
		track, ok := full[rec.ID]
		if !ok {
			continue
		}
		candidates = append(candidates, convertTrack(track, features[rec.ID]))
	}
	return candidates, nil
}

// trackAttributes maps the target vector and bias hints onto the
// recommendation endpoint's tunable attributes.
func trackAttributes(req engine.CandidateRequest) *spotify.TrackAttributes {
	t := req.Target
	attrs := spotify.NewTrackAttributes().
		TargetAcousticness(t[catalog.Acousticness]).
		TargetDanceability(t[catalog.Danceability]).
		TargetEnergy(t[catalog.Energy]).
		TargetInstrumentalness(t[catalog.Instrumentalness]).
		TargetLiveness(t[catalog.Liveness]).
		TargetLoudness(t[catalog.Loudness]).
		TargetSpeechiness(t[catalog.Speechiness]).
		TargetTempo(t[catalog.Tempo]).
		TargetValence(t[catalog.Valence])

	if req.IncludePopular {
		attrs = attrs.MinPopularity(popularBiasMin)
	}
	if req.IncludeDiscovery {
		attrs = attrs.MaxPopularity(discoveryBiasMax)
	}
	return attrs
}

// fullTracks fetches full track objects in batches of maxTracksPerRequest.
func (s *Source) fullTracks(ctx context.Context, ids []spotify.ID) (map[spotify.ID]*spotify.FullTrack, error) {
	tracks := make(map[spotify.ID]*spotify.FullTrack, len(ids))

	for i := 0; i < len(ids); i += maxTracksPerRequest {
		end := min(i+maxTracksPerRequest, len(ids))

		batch, err := s.api.GetTracks(ctx, ids[i:end])
		if err != nil {
			return nil, fmt.Errorf("getting tracks (batch %d-%d): %w", i+1, end, err)
		}
		for _, t := range batch {
			if t != nil {
				tracks[t.ID] = t
			}
		}
	}
	return tracks, nil
}

// audioFeatures fetches audio features in batches of maxFeaturesPerRequest.
// Tracks Spotify has no features for are simply absent from the result.
func (s *Source) audioFeatures(ctx context.Context, ids []spotify.ID) (map[spotify.ID]catalog.Vector, error) {
	features := make(map[spotify.ID]catalog.Vector, len(ids))

	for i := 0; i < len(ids); i += maxFeaturesPerRequest {
		end := min(i+maxFeaturesPerRequest, len(ids))

		batch, err := s.api.GetAudioFeatures(ctx, ids[i:end]...)
		if err != nil {
			return nil, fmt.Errorf("getting audio features (batch %d-%d): %w", i+1, end, err)
		}
		for _, f := range batch {
			if f == nil {
				continue
			}
			features[f.ID] = convertFeatures(f)
		}
	}
	return features, nil
}

// convertTrack maps a Spotify full track to an engine candidate. A nil
// feature vector marks the track for deterministic estimation downstream.
func convertTrack(t *spotify.FullTrack, features catalog.Vector) playlist.Candidate {
	artists := make([]string, len(t.Artists))
	for i, a := range t.Artists {
		artists[i] = a.Name
	}

	return playlist.Candidate{
		ID:         string(t.ID),
		Title:      t.Name,
		Artists:    artists,
		Album:      t.Album.Name,
		Duration:   time.Duration(t.Duration) * time.Millisecond,
		Explicit:   t.Explicit,
		Popularity: int(t.Popularity),
		Features:   features,
	}
}

func convertFeatures(f *spotify.AudioFeatures) catalog.Vector {
	return catalog.Vector{
		catalog.Acousticness:     float64(f.Acousticness),
		catalog.Danceability:     float64(f.Danceability),
		catalog.Energy:           float64(f.Energy),
		catalog.Instrumentalness: float64(f.Instrumentalness),
		catalog.Liveness:         float64(f.Liveness),
		catalog.Loudness:         float64(f.Loudness),
		catalog.Speechiness:      float64(f.Speechiness),
		catalog.Tempo:            float64(f.Tempo),
		catalog.Valence:          float64(f.Valence),
	}
}
