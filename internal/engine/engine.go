// Package engine is the public surface of the mood playlist system: it
// turns one or two emotion profiles into a ranked, describable playlist.
// The engine itself is pure computation over immutable inputs; the only
// I/O is the boundary call to the candidate source.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/lunamik/go-mood-playlist/internal/catalog"
	"github.com/lunamik/go-mood-playlist/internal/emotion"
	"github.com/lunamik/go-mood-playlist/internal/playlist"
	"github.com/lunamik/go-mood-playlist/internal/target"
)

// DefaultLength is the playlist length when the caller does not set one.
const DefaultLength = 20

// maxCandidateRequest caps how many candidates are requested upstream.
const maxCandidateRequest = 100

// CandidateRequest describes what the engine wants from a candidate source.
type CandidateRequest struct {
	Genres []string
	Target catalog.Vector
	Limit  int

	// Bias hints for the source. Not enforced internally.
	IncludePopular   bool
	IncludeDiscovery bool
}

// CandidateSource supplies candidate tracks for a target sound profile.
// Implementations own their retry and timeout policy.
type CandidateSource interface {
	Candidates(ctx context.Context, req CandidateRequest) ([]playlist.Candidate, error)
}

// Options configures a playlist generation request.
type Options struct {
	Length           int // 0 means DefaultLength; negative is invalid
	IncludePopular   bool
	IncludeDiscovery bool
	TimeOfDay        catalog.TimeOfDay
	Weather          catalog.Weather
	EnergyPreference target.EnergyPreference // empty means adaptive
	GenrePreferences []string
	ExcludeExplicit  bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine clock, primarily for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// Engine generates mood playlists from a candidate source.
type Engine struct {
	source CandidateSource
	now    func() time.Time
}

// New creates an engine backed by the given candidate source.
func New(source CandidateSource, opts ...Option) *Engine {
	e := &Engine{
		source: source,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MoodPlaylist generates a playlist for a single emotion profile.
func (e *Engine) MoodPlaylist(ctx context.Context, profile emotion.Profile, opts Options) (playlist.Playlist, error) {
	if err := validate(profile, opts); err != nil {
		return playlist.Playlist{}, err
	}
	return e.generate(ctx, profile, opts, nil)
}

// CouplePlaylist blends two profiles into one shared mood and generates a
// playlist for it. The pipeline is the single-profile one with a blending
// pre-step; the result's name and description reference both listeners.
func (e *Engine) CouplePlaylist(ctx context.Context, a, b emotion.Profile, nameA, nameB string, opts Options) (playlist.Playlist, error) {
	if err := validate(a, opts); err != nil {
		return playlist.Playlist{}, err
	}
	if err := validate(b, opts); err != nil {
		return playlist.Playlist{}, err
	}
	if nameA == "" || nameB == "" {
		return playlist.Playlist{}, fmt.Errorf("%w: both listener names are required", ErrInvalidOptions)
	}

	shared := emotion.Blend(a, b)
	return e.generate(ctx, shared, opts, []string{nameA, nameB})
}

func (e *Engine) generate(ctx context.Context, profile emotion.Profile, opts Options, names []string) (playlist.Playlist, error) {
	length := opts.Length
	if length == 0 {
		length = DefaultLength
	}

	vector, genres := target.Compute(profile, target.Context{
		TimeOfDay:        opts.TimeOfDay,
		Weather:          opts.Weather,
		EnergyPreference: opts.EnergyPreference,
		PreferredGenres:  opts.GenrePreferences,
	})

	// Ask for extra headroom so filtering and ranking have candidates to
	// discard.
	limit := length * 2
	if limit > maxCandidateRequest {
		limit = maxCandidateRequest
	}

	candidates, err := e.source.Candidates(ctx, CandidateRequest{
		Genres:           genres,
		Target:           vector,
		Limit:            limit,
		IncludePopular:   opts.IncludePopular,
		IncludeDiscovery: opts.IncludeDiscovery,
	})
	if err != nil {
		return playlist.Playlist{}, &SourceError{Genres: genres, Err: err}
	}

	scorer := playlist.NewScorer(vector, profile.DominantEmotion())
	scored := scorer.ScoreAll(candidates)

	return playlist.Assemble(scored, profile, playlist.Options{
		Length:          length,
		ExcludeExplicit: opts.ExcludeExplicit,
		TimeOfDay:       opts.TimeOfDay,
		ListenerNames:   names,
		Now:             e.now(),
	}), nil
}

// validate rejects malformed input before any computation begins.
func validate(profile emotion.Profile, opts Options) error {
	if profile.Emotions == nil {
		return fmt.Errorf("%w: emotion profile is required", ErrInvalidOptions)
	}
	if opts.Length < 0 {
		return fmt.Errorf("%w: playlist length must not be negative", ErrInvalidOptions)
	}
	for name, v := range profile.Emotions {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: emotion %q intensity %v outside [0,1]", ErrInvalidOptions, name, v)
		}
	}
	if profile.Sentiment < -1 || profile.Sentiment > 1 {
		return fmt.Errorf("%w: sentiment %v outside [-1,1]", ErrInvalidOptions, profile.Sentiment)
	}
	if profile.Intensity < 0 || profile.Intensity > 1 {
		return fmt.Errorf("%w: intensity %v outside [0,1]", ErrInvalidOptions, profile.Intensity)
	}
	return nil
}
