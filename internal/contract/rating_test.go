package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatingFor(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{100, "Excellent"},
		{90, "Excellent"},
		{89, "Very Good"},
		{80, "Very Good"},
		{79, "Good"},
		{70, "Good"},
		{69, "Fair"},
		{60, "Fair"},
		{59, "Poor"},
		{0, "Poor"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, RatingFor(tc.score), "score %d", tc.score)
	}
}

func TestRatingScaleCoversFullRange(t *testing.T) {
	assert.Len(t, RatingScale, 5)
	// Bands are ordered highest first and the last band catches everything.
	for i := 1; i < len(RatingScale); i++ {
		assert.Greater(t, RatingScale[i-1].Min, RatingScale[i].Min)
	}
	assert.Equal(t, 0, RatingScale[len(RatingScale)-1].Min)
}
