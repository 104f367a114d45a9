package scorer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurvon-screamo/origa-sub001/internal/card"
	"github.com/yurvon-screamo/origa-sub001/internal/japanese"
	"github.com/yurvon-screamo/origa-sub001/internal/memory"
	"github.com/yurvon-screamo/origa-sub001/internal/valueobject"
)

type stubTokenizer struct {
	tokens []japanese.Token
}

func (s stubTokenizer) Tokenize(text string) ([]japanese.Token, error) { return s.tokens, nil }

func knownStudyCard(t *testing.T, c card.Card) card.StudyCard {
	t.Helper()
	stability, err := valueobject.NewStability(15.0)
	require.NoError(t, err)
	difficulty, err := valueobject.NewDifficulty(0.1)
	require.NoError(t, err)
	return card.StudyCard{
		ID:   "01A",
		Card: c,
		History: memory.History{Current: &memory.State{
			Stability: stability, Difficulty: difficulty, NextReview: time.Now().Add(time.Hour),
		}},
	}
}

func TestScoreContentKanjiPass(t *testing.T) {
	kanjiCard, err := card.NewKanjiCard("日", valueobject.English)
	require.NoError(t, err)
	cards := []card.StudyCard{knownStudyCard(t, kanjiCard)}

	result, err := ScoreContent("日本", stubTokenizer{}, cards)
	require.NoError(t, err)
	assert.Contains(t, result.KnownKanji, "日")
	assert.Contains(t, result.UnknownKanji, "本")
}

func TestScoreContentWordPass(t *testing.T) {
	vocabCard, err := card.NewVocabularyCard("行く", "to go", nil)
	require.NoError(t, err)
	cards := []card.StudyCard{knownStudyCard(t, vocabCard)}

	tok := stubTokenizer{tokens: []japanese.Token{
		{OrthographicBaseForm: "行く", PartOfSpeech: japanese.Verb},
		{OrthographicBaseForm: "は", PartOfSpeech: japanese.Particle},
		{OrthographicBaseForm: "学生", PartOfSpeech: japanese.Noun},
	}}

	result, err := ScoreContent("行くは学生", tok, cards)
	require.NoError(t, err)
	assert.Contains(t, result.KnownWords, "行く")
	assert.Contains(t, result.UnknownWords, "学生")
	assert.NotContains(t, result.KnownWords, "は")
	assert.NotContains(t, result.UnknownWords, "は")
}
