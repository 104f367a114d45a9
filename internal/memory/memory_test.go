package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurvon-screamo/origa-sub001/internal/valueobject"
)

func mustStability(t *testing.T, v float64) valueobject.Stability {
	t.Helper()
	s, err := valueobject.NewStability(v)
	require.NoError(t, err)
	return s
}

func mustDifficulty(t *testing.T, v float64) valueobject.Difficulty {
	t.Helper()
	d, err := valueobject.NewDifficulty(v)
	require.NoError(t, err)
	return d
}

func TestNewHistoryIsNew(t *testing.T) {
	var h History
	assert.True(t, h.IsNew())
	assert.False(t, h.IsDue(time.Now()))
	assert.False(t, h.IsLowStability())
	assert.False(t, h.IsHighDifficulty())
	assert.False(t, h.IsKnownCard())
	assert.False(t, h.IsInProgress())
}

func TestStatusPredicates(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name           string
		stability      float64
		difficulty     float64
		nextReview     time.Time
		wantDue        bool
		wantLow        bool
		wantHighDiff   bool
		wantKnown      bool
		wantInProgress bool
	}{
		{"low stability is not in progress", 1.0, 0.5, now.Add(-time.Hour), true, true, false, false, false},
		{"high difficulty overrides known", 20.0, 2.0, now.Add(-time.Hour), true, false, true, false, false},
		{"known", 15.0, 0.5, now.Add(time.Hour), false, false, false, true, false},
		{"in progress", 5.0, 0.5, now.Add(time.Hour), false, false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := History{Current: &State{
				Stability:  mustStability(t, tt.stability),
				Difficulty: mustDifficulty(t, tt.difficulty),
				NextReview: tt.nextReview,
			}}
			assert.Equal(t, tt.wantDue, h.IsDue(now))
			assert.Equal(t, tt.wantLow, h.IsLowStability())
			assert.Equal(t, tt.wantHighDiff, h.IsHighDifficulty())
			assert.Equal(t, tt.wantKnown, h.IsKnownCard())
			assert.Equal(t, tt.wantInProgress, h.IsInProgress())
		})
	}
}

func TestAddReviewReplacesStateKeepsLog(t *testing.T) {
	var h History
	log1 := ReviewLog{ID: "01A", Rating: valueobject.Good, At: time.Now()}
	h = h.AddReview(log1, State{
		Stability:  mustStability(t, 1.0),
		Difficulty: mustDifficulty(t, 1.0),
		NextReview: time.Now().Add(time.Hour),
	})
	assert.False(t, h.IsNew())
	assert.Len(t, h.Reviews, 1)

	log2 := ReviewLog{ID: "01B", Rating: valueobject.Easy, At: time.Now()}
	h = h.AddReview(log2, State{
		Stability:  mustStability(t, 12.0),
		Difficulty: mustDifficulty(t, 0.1),
		NextReview: time.Now().Add(24 * time.Hour),
	})
	assert.Len(t, h.Reviews, 2)
	assert.True(t, h.IsKnownCard())
}
