package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurvon-screamo/origa-sub001/internal/memory"
	"github.com/yurvon-screamo/origa-sub001/internal/valueobject"
)

func TestRateNewCardProducesState(t *testing.T) {
	a := New()
	now := time.Now()

	result, err := a.Rate(StandardLesson, valueobject.Good, memory.History{}, now)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.State.Stability.Value(), 0.0)
	assert.GreaterOrEqual(t, result.State.Difficulty.Value(), 0.0)
	assert.True(t, result.State.NextReview.After(now) || result.State.NextReview.Equal(now))
}

func TestRateAgainForcesZeroInterval(t *testing.T) {
	a := New()
	now := time.Now()

	result, err := a.Rate(StandardLesson, valueobject.Again, memory.History{}, now)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), result.Interval)
}

func TestFixationModeCapsOneDay(t *testing.T) {
	a := New()
	now := time.Now()

	stability, err := valueobject.NewStability(20.0)
	require.NoError(t, err)
	difficulty, err := valueobject.NewDifficulty(1.0)
	require.NoError(t, err)

	history := memory.History{
		Current: &memory.State{Stability: stability, Difficulty: difficulty, NextReview: now},
		Reviews: []memory.ReviewLog{{ID: "01A", Rating: valueobject.Good, At: now.Add(-24 * time.Hour)}},
	}

	result, err := a.Rate(FixationLesson, valueobject.Easy, history, now)
	require.NoError(t, err)
	assert.LessOrEqual(t, result.Interval, 25*time.Hour)
}

func TestRateRejectsInvalidRating(t *testing.T) {
	a := New()
	_, err := a.Rate(StandardLesson, valueobject.Rating(99), memory.History{}, time.Now())
	assert.Error(t, err)
}
