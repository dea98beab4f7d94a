package engine

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/lunamik/go-mood-playlist/internal/emotion"
	"github.com/lunamik/go-mood-playlist/internal/playlist"
)

type fakeSource struct {
	lastReq    CandidateRequest
	candidates []playlist.Candidate
	err        error
}

func (f *fakeSource) Candidates(_ context.Context, req CandidateRequest) ([]playlist.Candidate, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.candidates, nil
}

func testProfile(joy float64) emotion.Profile {
	emotions := make(map[emotion.Name]float64, len(emotion.Names))
	for _, name := range emotion.Names {
		emotions[name] = 0
	}
	emotions[emotion.Joy] = joy
	return emotion.Profile{Emotions: emotions, Sentiment: 0.6, Intensity: 0.7, CapturedAt: time.Now()}
}

func testCandidates(n int) []playlist.Candidate {
	candidates := make([]playlist.Candidate, n)
	for i := range candidates {
		candidates[i] = playlist.Candidate{
			ID:       string(rune('a' + i)),
			Title:    "Track",
			Duration: 3 * time.Minute,
		}
	}
	return candidates
}

func TestMoodPlaylist(t *testing.T) {
	source := &fakeSource{candidates: testCandidates(30)}
	eng := New(source)

	got, err := eng.MoodPlaylist(context.Background(), testProfile(0.9), Options{Length: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got.Tracks) != 10 {
		t.Errorf("got %d tracks, want 10", len(got.Tracks))
	}
	if source.lastReq.Limit != 20 {
		t.Errorf("candidate limit = %d, want 20 (double the length)", source.lastReq.Limit)
	}
	if len(source.lastReq.Genres) > 5 {
		t.Errorf("requested %d seed genres, want at most 5", len(source.lastReq.Genres))
	}
	if len(source.lastReq.Target) == 0 {
		t.Error("candidate request is missing the target vector")
	}
}

func TestMoodPlaylistDefaultLength(t *testing.T) {
	source := &fakeSource{candidates: testCandidates(50)}
	eng := New(source)

	got, err := eng.MoodPlaylist(context.Background(), testProfile(0.9), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got.Tracks) != DefaultLength {
		t.Errorf("got %d tracks, want default %d", len(got.Tracks), DefaultLength)
	}
}

func TestMoodPlaylistEmptyPoolIsNotAnError(t *testing.T) {
	eng := New(&fakeSource{})

	got, err := eng.MoodPlaylist(context.Background(), testProfile(0.9), Options{Length: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got.Tracks) != 0 {
		t.Errorf("got %d tracks, want 0", len(got.Tracks))
	}
	if got.Description == "" {
		t.Error("empty playlist needs a no-matches description")
	}
}

func TestMoodPlaylistInvalidOptions(t *testing.T) {
	tests := []struct {
		name    string
		profile emotion.Profile
		opts    Options
	}{
		{"nil emotion map", emotion.Profile{}, Options{}},
		{"negative length", testProfile(0.9), Options{Length: -1}},
		{
			"emotion intensity out of range",
			emotion.Profile{Emotions: map[emotion.Name]float64{emotion.Joy: 1.5}},
			Options{},
		},
		{
			"sentiment out of range",
			emotion.Profile{Emotions: map[emotion.Name]float64{}, Sentiment: 2},
			Options{},
		},
		{
			"intensity out of range",
			emotion.Profile{Emotions: map[emotion.Name]float64{}, Intensity: -0.1},
			Options{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &fakeSource{candidates: testCandidates(5)}
			eng := New(source)

			_, err := eng.MoodPlaylist(context.Background(), tt.profile, tt.opts)
			if !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("error = %v, want ErrInvalidOptions", err)
			}
			if source.lastReq.Limit != 0 {
				t.Error("source was called despite invalid options")
			}
		})
	}
}

func TestMoodPlaylistSourceFailure(t *testing.T) {
	cause := errors.New("connection refused")
	eng := New(&fakeSource{err: cause})

	_, err := eng.MoodPlaylist(context.Background(), testProfile(0.9), Options{Length: 5})

	if !errors.Is(err, ErrSourceUnavailable) {
		t.Errorf("error = %v, want ErrSourceUnavailable", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("error chain lost the cause: %v", err)
	}
}

func TestMoodPlaylistPassesBiasHints(t *testing.T) {
	source := &fakeSource{candidates: testCandidates(5)}
	eng := New(source)

	_, err := eng.MoodPlaylist(context.Background(), testProfile(0.9), Options{
		Length:           5,
		IncludePopular:   true,
		IncludeDiscovery: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !source.lastReq.IncludePopular || !source.lastReq.IncludeDiscovery {
		t.Errorf("bias hints not forwarded: %+v", source.lastReq)
	}
}

func TestCouplePlaylist(t *testing.T) {
	source := &fakeSource{candidates: testCandidates(20)}
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	eng := New(source, WithClock(func() time.Time { return now }))

	a := testProfile(0.9)
	b := testProfile(0.3)

	got, err := eng.CouplePlaylist(context.Background(), a, b, "Ava", "Ben", Options{Length: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The mood context is the blend, not either input.
	if joy := got.MoodContext.Emotions[emotion.Joy]; math.Abs(joy-0.6) > 1e-9 {
		t.Errorf("MoodContext joy = %v, want blended 0.6", joy)
	}

	for _, fragment := range []string{"Ava", "Ben"} {
		if !strings.Contains(got.Name, fragment) {
			t.Errorf("Name = %q, want it to mention %q", got.Name, fragment)
		}
		if !strings.Contains(got.Description, fragment) {
			t.Errorf("Description = %q, want it to mention %q", got.Description, fragment)
		}
	}
	if got.CreatedAt != now {
		t.Errorf("CreatedAt = %v, want injected clock time %v", got.CreatedAt, now)
	}
}

func TestCouplePlaylistRequiresNames(t *testing.T) {
	eng := New(&fakeSource{candidates: testCandidates(5)})

	_, err := eng.CouplePlaylist(context.Background(), testProfile(0.9), testProfile(0.3), "Ava", "", Options{})
	if !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("error = %v, want ErrInvalidOptions for a missing name", err)
	}
}

func TestCouplePlaylistValidatesBothProfiles(t *testing.T) {
	eng := New(&fakeSource{candidates: testCandidates(5)})

	_, err := eng.CouplePlaylist(context.Background(), testProfile(0.9), emotion.Profile{}, "Ava", "Ben", Options{})
	if !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("error = %v, want ErrInvalidOptions for an invalid second profile", err)
	}
}
