package emotion

import "time"

// Blend combines two profiles into one shared profile by component-wise
// averaging: each emotion, the sentiment, and the intensity are the
// arithmetic mean of the two inputs. CapturedAt is the blend time.
//
// Blend is commutative and idempotent on identical inputs, and every
// blended emotion value lies within [min(a,b), max(a,b)] for that emotion.
func Blend(a, b Profile) Profile {
	emotions := make(map[Name]float64, len(Names))
	for _, name := range Names {
		emotions[name] = (a.Emotions[name] + b.Emotions[name]) / 2
	}

	return Profile{
		Emotions:   emotions,
		Sentiment:  (a.Sentiment + b.Sentiment) / 2,
		Intensity:  (a.Intensity + b.Intensity) / 2,
		CapturedAt: time.Now(),
	}
}
