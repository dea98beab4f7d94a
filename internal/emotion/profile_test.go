package emotion

import "testing"

func fullProfile(values map[Name]float64) map[Name]float64 {
	emotions := make(map[Name]float64, len(Names))
	for _, name := range Names {
		emotions[name] = values[name]
	}
	return emotions
}

func TestDominant(t *testing.T) {
	tests := []struct {
		name     string
		emotions map[Name]float64
		n        int
		want     []Name
	}{
		{
			name:     "clear winner comes first",
			emotions: map[Name]float64{Joy: 0.9, Sadness: 0.1, Surprise: 0.2, Trust: 0.6, Anticipation: 0.3},
			n:        3,
			want:     []Name{Joy, Trust, Anticipation},
		},
		{
			name:     "ties break by canonical order",
			emotions: map[Name]float64{Trust: 0.5, Joy: 0.5, Anticipation: 0.5},
			n:        3,
			want:     []Name{Joy, Trust, Anticipation},
		},
		{
			name:     "all zero yields canonical order",
			emotions: map[Name]float64{},
			n:        3,
			want:     []Name{Joy, Sadness, Anger},
		},
		{
			name:     "n larger than emotion count returns all eight",
			emotions: map[Name]float64{Fear: 1},
			n:        20,
			want:     []Name{Fear, Joy, Sadness, Anger, Surprise, Disgust, Trust, Anticipation},
		},
		{
			name:     "unrecognized keys are ignored",
			emotions: map[Name]float64{"boredom": 1.0, Sadness: 0.4},
			n:        1,
			want:     []Name{Sadness},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Profile{Emotions: tt.emotions}
			got := p.Dominant(tt.n)

			if len(got) != len(tt.want) {
				t.Fatalf("Dominant(%d) returned %d entries, want %d", tt.n, len(got), len(tt.want))
			}
			for i, w := range tt.want {
				if got[i].Name != w {
					t.Errorf("Dominant(%d)[%d] = %s, want %s", tt.n, i, got[i].Name, w)
				}
			}
		})
	}
}

func TestDominantEmotion(t *testing.T) {
	p := Profile{Emotions: map[Name]float64{
		Joy: 0.9, Sadness: 0.1, Surprise: 0.2, Trust: 0.6, Anticipation: 0.3,
	}}

	if got := p.DominantEmotion(); got != Joy {
		t.Errorf("DominantEmotion() = %s, want %s", got, Joy)
	}
}

func TestDominantDoesNotMutateProfile(t *testing.T) {
	emotions := map[Name]float64{Joy: 0.4, Fear: 0.8}
	p := Profile{Emotions: emotions}

	p.Dominant(3)

	if len(emotions) != 2 || emotions[Joy] != 0.4 || emotions[Fear] != 0.8 {
		t.Errorf("Dominant mutated the emotion map: %v", emotions)
	}
}
