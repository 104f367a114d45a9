package knowledge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurvon-screamo/origa-sub001/internal/card"
	"github.com/yurvon-screamo/origa-sub001/internal/japanese"
	"github.com/yurvon-screamo/origa-sub001/internal/memory"
	"github.com/yurvon-screamo/origa-sub001/internal/valueobject"
	"github.com/yurvon-screamo/origa-sub001/internal/xrand"
)

type stubTokenizer struct{}

func (stubTokenizer) Tokenize(text string) ([]japanese.Token, error) { return nil, nil }

func mustVocab(t *testing.T, word, translation string) card.Card {
	t.Helper()
	c, err := card.NewVocabularyCard(word, translation, nil)
	require.NoError(t, err)
	return c
}

func TestCreateCardDuplicateDetection(t *testing.T) {
	s := New()
	now := time.Now()

	_, err := s.CreateCard("01A", mustVocab(t, "行く", "to go"), now)
	require.NoError(t, err)

	_, err = s.CreateCard("01B", mustVocab(t, "行く", "to go, again"), now)
	assert.Error(t, err)
}

func TestDeleteCardNotFound(t *testing.T) {
	s := New()
	err := s.DeleteCard("missing", time.Now())
	assert.Error(t, err)
}

func TestRateCardUpdatesHistoryAndRollup(t *testing.T) {
	s := New()
	now := time.Now()
	_, err := s.CreateCard("01A", mustVocab(t, "行く", "to go"), now)
	require.NoError(t, err)

	stability, err := valueobject.NewStability(1.0)
	require.NoError(t, err)
	difficulty, err := valueobject.NewDifficulty(1.0)
	require.NoError(t, err)

	err = s.RateCard("01A", valueobject.Good, time.Hour, memory.State{
		Stability: stability, Difficulty: difficulty, NextReview: now.Add(time.Hour),
	}, "rev1", now)
	require.NoError(t, err)

	sc, ok := s.GetCard("01A")
	require.True(t, ok)
	assert.False(t, sc.History.IsNew())

	history := s.LessonHistory()
	require.Len(t, history, 1)
	assert.Equal(t, 1, history[0].TotalCards)
}

func TestRateCardNotFound(t *testing.T) {
	s := New()
	err := s.RateCard("missing", valueobject.Good, time.Hour, memory.State{}, "rev1", time.Now())
	assert.Error(t, err)
}

func TestCompleteLessonIncrementsOnlyOnExplicitCall(t *testing.T) {
	s := New()
	now := time.Now()
	_, err := s.CreateCard("01A", mustVocab(t, "行く", "to go"), now)
	require.NoError(t, err)
	assert.Equal(t, 0, s.LessonHistory()[0].LessonsCompleted)

	s.CompleteLesson(now)
	assert.Equal(t, 1, s.LessonHistory()[0].LessonsCompleted)
}

func TestAddLessonDurationAccumulates(t *testing.T) {
	s := New()
	now := time.Now()
	s.AddLessonDuration(5*time.Minute, now)
	s.AddLessonDuration(3*time.Minute, now)
	assert.Equal(t, 8*time.Minute, s.LessonHistory()[0].LessonDuration)
}

func TestCardsToLessonIncludesDueAndNew(t *testing.T) {
	s := New()
	now := time.Now()
	_, err := s.CreateCard("01A", mustVocab(t, "行く", "to go"), now)
	require.NoError(t, err)
	_, err = s.CreateCard("01B", mustVocab(t, "話す", "to speak"), now)
	require.NoError(t, err)

	stability, err := valueobject.NewStability(1.0)
	require.NoError(t, err)
	difficulty, err := valueobject.NewDifficulty(1.0)
	require.NoError(t, err)
	require.NoError(t, s.RateCard("01A", valueobject.Good, time.Hour, memory.State{
		Stability: stability, Difficulty: difficulty, NextReview: now.Add(-time.Hour),
	}, "rev1", now))

	lesson, err := s.CardsToLesson(valueobject.English, stubTokenizer{}, xrand.Fixed{Value: 0.9}, nil, 5, now)
	require.NoError(t, err)
	assert.Contains(t, lesson, valueobject.CardID("01A"))
	assert.Contains(t, lesson, valueobject.CardID("01B"))
}

func TestCardsToFixationIncludesLowStabilityCard(t *testing.T) {
	s := New()
	now := time.Now()
	_, err := s.CreateCard("01A", mustVocab(t, "行く", "to go"), now)
	require.NoError(t, err)

	lowStability, err := valueobject.NewStability(0.5)
	require.NoError(t, err)
	difficulty, err := valueobject.NewDifficulty(0.1)
	require.NoError(t, err)
	require.NoError(t, s.RateCard("01A", valueobject.Again, 0, memory.State{
		Stability: lowStability, Difficulty: difficulty, NextReview: now.Add(time.Hour),
	}, "rev1", now))

	out := s.CardsToFixation(now)
	require.Len(t, out, 1)
	assert.Equal(t, "行く", out[0].Question().Text())
}
