package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lunamik/go-mood-playlist/internal/catalog"
	"github.com/lunamik/go-mood-playlist/internal/emotion"
	"github.com/lunamik/go-mood-playlist/internal/engine"
	"github.com/lunamik/go-mood-playlist/internal/playlist"
	"github.com/lunamik/go-mood-playlist/internal/target"
)

// Handlers contains the HTTP handlers for the playlist API.
type Handlers struct {
	engine *engine.Engine
	logger *logrus.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(eng *engine.Engine, logger *logrus.Logger) *Handlers {
	return &Handlers{engine: eng, logger: logger}
}

// profilePayload is the wire form of an emotion profile.
type profilePayload struct {
	Emotions   map[string]float64 `json:"emotions"`
	Sentiment  float64            `json:"sentiment"`
	Intensity  float64            `json:"intensity"`
	CapturedAt time.Time          `json:"capturedAt,omitempty"`
}

func (p profilePayload) toProfile() emotion.Profile {
	emotions := make(map[emotion.Name]float64, len(p.Emotions))
	for name, v := range p.Emotions {
		emotions[emotion.Name(name)] = v
	}
	return emotion.Profile{
		Emotions:   emotions,
		Sentiment:  p.Sentiment,
		Intensity:  p.Intensity,
		CapturedAt: p.CapturedAt,
	}
}

// optionsPayload is the wire form of generation options.
type optionsPayload struct {
	Length           int      `json:"length,omitempty"`
	IncludePopular   bool     `json:"includePopular,omitempty"`
	IncludeDiscovery bool     `json:"includeDiscovery,omitempty"`
	TimeOfDay        string   `json:"timeOfDay,omitempty"`
	Weather          string   `json:"weather,omitempty"`
	EnergyPreference string   `json:"energyPreference,omitempty"`
	GenrePreferences []string `json:"genrePreferences,omitempty"`
	ExcludeExplicit  bool     `json:"excludeExplicit,omitempty"`
}

func (o optionsPayload) toOptions() engine.Options {
	return engine.Options{
		Length:           o.Length,
		IncludePopular:   o.IncludePopular,
		IncludeDiscovery: o.IncludeDiscovery,
		TimeOfDay:        catalog.TimeOfDay(o.TimeOfDay),
		Weather:          catalog.Weather(o.Weather),
		EnergyPreference: target.EnergyPreference(o.EnergyPreference),
		GenrePreferences: o.GenrePreferences,
		ExcludeExplicit:  o.ExcludeExplicit,
	}
}

type moodRequest struct {
	Profile *profilePayload `json:"profile"`
	Options optionsPayload  `json:"options"`
}

type coupleRequest struct {
	ProfileA *profilePayload `json:"profileA"`
	ProfileB *profilePayload `json:"profileB"`
	NameA    string          `json:"nameA"`
	NameB    string          `json:"nameB"`
	Options  optionsPayload  `json:"options"`
}

type trackResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Artists       []string `json:"artists"`
	Album         string   `json:"album,omitempty"`
	DurationMs    int64    `json:"durationMs"`
	Explicit      bool     `json:"explicit"`
	Popularity    int      `json:"popularity"`
	MatchScore    float64  `json:"matchScore"`
	Justification string   `json:"justification"`
}

type summaryResponse struct {
	AvgEnergy       float64 `json:"avgEnergy"`
	AvgValence      float64 `json:"avgValence"`
	AvgDanceability float64 `json:"avgDanceability"`
	AvgAcousticness float64 `json:"avgAcousticness"`
	AvgTempo        float64 `json:"avgTempo"`
}

type playlistResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Tracks          []trackResponse `json:"tracks"`
	FeatureSummary  summaryResponse `json:"featureSummary"`
	TotalDurationMs int64           `json:"totalDurationMs"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func toPlaylistResponse(p playlist.Playlist) playlistResponse {
	tracks := make([]trackResponse, len(p.Tracks))
	for i, t := range p.Tracks {
		tracks[i] = trackResponse{
			ID:            t.ID,
			Title:         t.Title,
			Artists:       t.Artists,
			Album:         t.Album,
			DurationMs:    t.Duration.Milliseconds(),
			Explicit:      t.Explicit,
			Popularity:    t.Popularity,
			MatchScore:    t.MatchScore,
			Justification: t.Justification,
		}
	}
	return playlistResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Tracks:      tracks,
		FeatureSummary: summaryResponse{
			AvgEnergy:       p.FeatureSummary.AvgEnergy,
			AvgValence:      p.FeatureSummary.AvgValence,
			AvgDanceability: p.FeatureSummary.AvgDanceability,
			AvgAcousticness: p.FeatureSummary.AvgAcousticness,
			AvgTempo:        p.FeatureSummary.AvgTempo,
		},
		TotalDurationMs: p.TotalDuration.Milliseconds(),
		CreatedAt:       p.CreatedAt,
	}
}

// Health reports liveness (GET /healthz).
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// MoodPlaylist generates a playlist for one profile (POST /api/playlists/mood).
func (h *Handlers) MoodPlaylist(w http.ResponseWriter, r *http.Request) {
	var req moodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Profile == nil {
		writeError(w, http.StatusBadRequest, "profile is required")
		return
	}

	result, err := h.engine.MoodPlaylist(r.Context(), req.Profile.toProfile(), req.Options.toOptions())
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlaylistResponse(result))
}

// CouplePlaylist blends two profiles and generates a shared playlist
// (POST /api/playlists/couple).
func (h *Handlers) CouplePlaylist(w http.ResponseWriter, r *http.Request) {
	var req coupleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ProfileA == nil || req.ProfileB == nil {
		writeError(w, http.StatusBadRequest, "both profiles are required")
		return
	}

	result, err := h.engine.CouplePlaylist(r.Context(),
		req.ProfileA.toProfile(), req.ProfileB.toProfile(),
		req.NameA, req.NameB,
		req.Options.toOptions())
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlaylistResponse(result))
}

func (h *Handlers) writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrInvalidOptions):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, engine.ErrSourceUnavailable):
		h.logger.WithError(err).Warn("Candidate source unavailable")
		writeError(w, http.StatusBadGateway, "candidate source unavailable")
	default:
		h.logger.WithError(err).Error("Playlist generation failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
