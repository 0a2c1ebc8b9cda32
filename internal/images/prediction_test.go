package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrediction(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Prediction
		ok   bool
	}{
		{
			name: "simple stem",
			path: "data/images/hard_2_35.png",
			want: Prediction{Difficulty: "Hard", Value: "2.35"},
			ok:   true,
		},
		{
			name: "hyphenated difficulty is title-cased",
			path: "extra-hard_10_05.jpg",
			want: Prediction{Difficulty: "Extra Hard", Value: "10.05"},
			ok:   true,
		},
		{
			name: "leading zero in whole part",
			path: "easy_02_5.gif",
			want: Prediction{Difficulty: "Easy", Value: "2.5"},
			ok:   true,
		},
		{
			name: "too few segments",
			path: "prediction.png",
			ok:   false,
		},
		{
			name: "non-numeric value",
			path: "hard_two_35.png",
			ok:   false,
		},
		{
			name: "empty fraction",
			path: "hard_2_.png",
			ok:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePrediction(tt.path)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
