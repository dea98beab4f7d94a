package catalog

import "github.com/lunamik/go-mood-playlist/internal/emotion"

// SoundProfile is the catalog entry for one emotion: descriptive genre tags
// and a target range for each of the nine features.
type SoundProfile struct {
	Genres []string
	Ranges RangeSet
}

// Modifier is a partial override supplied by a context table. Only the
// features listed in Ranges constrain the target; everything else passes
// through unchanged.
type Modifier struct {
	Genres []string
	Ranges RangeSet
}

// TimeOfDay identifies a daypart context.
type TimeOfDay string

// Recognized dayparts.
const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
	Night     TimeOfDay = "night"
)

// Weather identifies a weather context.
type Weather string

// Recognized weather conditions.
const (
	Sunny  Weather = "sunny"
	Rainy  Weather = "rainy"
	Cloudy Weather = "cloudy"
	Stormy Weather = "stormy"
)

// ForEmotion returns the sound profile for an emotion. Unknown emotions
// return the zero profile: no genres, no ranges, no contribution.
func ForEmotion(name emotion.Name) SoundProfile {
	return emotionSounds[name]
}

// ForTimeOfDay returns the daypart modifier. Unknown keys return the zero
// modifier.
func ForTimeOfDay(t TimeOfDay) Modifier {
	return timeOfDayModifiers[t]
}

// ForWeather returns the weather modifier. Unknown keys return the zero
// modifier.
func ForWeather(w Weather) Modifier {
	return weatherModifiers[w]
}

var emotionSounds = map[emotion.Name]SoundProfile{
	emotion.Joy: {
		Genres: []string{"pop", "dance", "funk", "disco", "tropical"},
		Ranges: RangeSet{
			Acousticness:     {Min: 0.0, Max: 0.3},
			Danceability:     {Min: 0.6, Max: 0.95},
			Energy:           {Min: 0.6, Max: 0.9},
			Instrumentalness: {Min: 0.0, Max: 0.3},
			Liveness:         {Min: 0.1, Max: 0.4},
			Loudness:         {Min: -10, Max: -4},
			Speechiness:      {Min: 0.03, Max: 0.2},
			Tempo:            {Min: 110, Max: 140},
			Valence:          {Min: 0.7, Max: 1.0},
		},
	},
	emotion.Sadness: {
		Genres: []string{"acoustic", "piano", "singer-songwriter", "ambient", "folk"},
		Ranges: RangeSet{
			Acousticness:     {Min: 0.5, Max: 0.9},
			Danceability:     {Min: 0.2, Max: 0.5},
			Energy:           {Min: 0.1, Max: 0.4},
			Instrumentalness: {Min: 0.1, Max: 0.6},
			Liveness:         {Min: 0.05, Max: 0.25},
			Loudness:         {Min: -20, Max: -10},
			Speechiness:      {Min: 0.03, Max: 0.1},
			Tempo:            {Min: 60, Max: 90},
			Valence:          {Min: 0.0, Max: 0.3},
		},
	},
	emotion.Anger: {
		Genres: []string{"metal", "hard-rock", "punk", "industrial"},
		Ranges: RangeSet{
			Acousticness:     {Min: 0.0, Max: 0.15},
			Danceability:     {Min: 0.3, Max: 0.6},
			Energy:           {Min: 0.8, Max: 1.0},
			Instrumentalness: {Min: 0.0, Max: 0.4},
			Liveness:         {Min: 0.1, Max: 0.5},
			Loudness:         {Min: -7, Max: -2},
			Speechiness:      {Min: 0.05, Max: 0.3},
			Tempo:            {Min: 130, Max: 180},
			Valence:          {Min: 0.1, Max: 0.4},
		},
	},
	emotion.Fear: {
		Genres: []string{"ambient", "electronic", "soundtracks", "minimal-techno"},
		Ranges: RangeSet{
			Acousticness:     {Min: 0.2, Max: 0.6},
			Danceability:     {Min: 0.2, Max: 0.45},
			Energy:           {Min: 0.2, Max: 0.5},
			Instrumentalness: {Min: 0.4, Max: 0.9},
			Liveness:         {Min: 0.05, Max: 0.3},
			Loudness:         {Min: -25, Max: -12},
			Speechiness:      {Min: 0.03, Max: 0.1},
			Tempo:            {Min: 70, Max: 110},
			Valence:          {Min: 0.1, Max: 0.35},
		},
	},
	emotion.Surprise: {
		Genres: []string{"electro", "edm", "indie-pop", "synth-pop", "alternative"},
		Ranges: RangeSet{
			Acousticness:     {Min: 0.0, Max: 0.3},
			Danceability:     {Min: 0.5, Max: 0.85},
			Energy:           {Min: 0.55, Max: 0.85},
			Instrumentalness: {Min: 0.0, Max: 0.4},
			Liveness:         {Min: 0.1, Max: 0.4},
			Loudness:         {Min: -12, Max: -5},
			Speechiness:      {Min: 0.04, Max: 0.25},
			Tempo:            {Min: 100, Max: 135},
			Valence:          {Min: 0.45, Max: 0.8},
		},
	},
	emotion.Disgust: {
		Genres: []string{"grunge", "punk", "garage", "industrial"},
		Ranges: RangeSet{
			Acousticness:     {Min: 0.05, Max: 0.3},
			Danceability:     {Min: 0.3, Max: 0.55},
			Energy:           {Min: 0.5, Max: 0.8},
			Instrumentalness: {Min: 0.0, Max: 0.4},
			Liveness:         {Min: 0.1, Max: 0.45},
			Loudness:         {Min: -12, Max: -5},
			Speechiness:      {Min: 0.05, Max: 0.25},
			Tempo:            {Min: 95, Max: 130},
			Valence:          {Min: 0.15, Max: 0.4},
		},
	},
	emotion.Trust: {
		Genres: []string{"soul", "r-n-b", "jazz", "bossanova", "chill"},
		Ranges: RangeSet{
			Acousticness:     {Min: 0.3, Max: 0.7},
			Danceability:     {Min: 0.4, Max: 0.7},
			Energy:           {Min: 0.3, Max: 0.6},
			Instrumentalness: {Min: 0.1, Max: 0.5},
			Liveness:         {Min: 0.05, Max: 0.3},
			Loudness:         {Min: -15, Max: -7},
			Speechiness:      {Min: 0.03, Max: 0.15},
			Tempo:            {Min: 85, Max: 115},
			Valence:          {Min: 0.5, Max: 0.8},
		},
	},
	emotion.Anticipation: {
		Genres: []string{"house", "progressive-house", "trance", "electronic", "dance"},
		Ranges: RangeSet{
			Acousticness:     {Min: 0.0, Max: 0.25},
			Danceability:     {Min: 0.55, Max: 0.9},
			Energy:           {Min: 0.6, Max: 0.9},
			Instrumentalness: {Min: 0.2, Max: 0.7},
			Liveness:         {Min: 0.1, Max: 0.4},
			Loudness:         {Min: -11, Max: -5},
			Speechiness:      {Min: 0.03, Max: 0.15},
			Tempo:            {Min: 115, Max: 145},
			Valence:          {Min: 0.4, Max: 0.7},
		},
	},
}

var timeOfDayModifiers = map[TimeOfDay]Modifier{
	Morning: {
		Genres: []string{"acoustic", "indie-pop"},
		Ranges: RangeSet{
			Energy:       {Min: 0.3, Max: 0.7},
			Acousticness: {Min: 0.2, Max: 0.8},
			Tempo:        {Min: 80, Max: 125},
		},
	},
	Afternoon: {
		Genres: []string{"pop", "indie"},
		Ranges: RangeSet{
			Energy: {Min: 0.4, Max: 0.85},
		},
	},
	Evening: {
		Genres: []string{"chill", "soul"},
		Ranges: RangeSet{
			Energy:   {Min: 0.25, Max: 0.7},
			Loudness: {Min: -18, Max: -6},
		},
	},
	Night: {
		Genres: []string{"deep-house", "ambient"},
		Ranges: RangeSet{
			Energy:       {Min: 0.15, Max: 0.6},
			Tempo:        {Min: 60, Max: 120},
			Acousticness: {Min: 0.2, Max: 0.9},
		},
	},
}

var weatherModifiers = map[Weather]Modifier{
	Sunny: {
		Genres: []string{"tropical", "reggae"},
		Ranges: RangeSet{
			Valence: {Min: 0.5, Max: 1.0},
			Energy:  {Min: 0.5, Max: 1.0},
		},
	},
	Rainy: {
		Genres: []string{"jazz", "lo-fi"},
		Ranges: RangeSet{
			Acousticness: {Min: 0.4, Max: 0.9},
			Energy:       {Min: 0.1, Max: 0.5},
		},
	},
	Cloudy: {
		Genres: []string{"indie", "alternative"},
		Ranges: RangeSet{
			Valence: {Min: 0.3, Max: 0.7},
		},
	},
	Stormy: {
		Genres: []string{"post-rock", "classical"},
		Ranges: RangeSet{
			Instrumentalness: {Min: 0.3, Max: 0.9},
			Loudness:         {Min: -20, Max: -6},
		},
	},
}
