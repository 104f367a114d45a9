package card

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurvon-screamo/origa-sub001/internal/grammar"
	"github.com/yurvon-screamo/origa-sub001/internal/japanese"
	"github.com/yurvon-screamo/origa-sub001/internal/memory"
	"github.com/yurvon-screamo/origa-sub001/internal/valueobject"
	"github.com/yurvon-screamo/origa-sub001/internal/xrand"
)

type stubTokenizer struct {
	tokens []japanese.Token
}

func (s stubTokenizer) Tokenize(text string) ([]japanese.Token, error) {
	return s.tokens, nil
}

func TestNewVocabularyCardQuestionAnswer(t *testing.T) {
	c, err := NewVocabularyCard("行く", "to go", nil)
	require.NoError(t, err)
	assert.Equal(t, "行く", c.Question().Text())
	assert.Equal(t, "to go", c.Answer().Text())
}

func TestRevertSwapsFrontAndBack(t *testing.T) {
	c, err := NewVocabularyCard("行く", "to go", []ExamplePhrase{{Text: "私は行く", Translation: "I go"}})
	require.NoError(t, err)

	r := c.Revert()
	assert.Equal(t, "to go", r.Question().Text())
	assert.Equal(t, "行く", r.Answer().Text())
	assert.Equal(t, c.Vocabulary.Examples, r.Vocabulary.Examples)
}

func TestRevertNonVocabularyUnchanged(t *testing.T) {
	c, err := NewKanjiCard("日", valueobject.English)
	require.NoError(t, err)
	assert.Equal(t, c, c.Revert())
}

func TestNewKanjiCardResolvesExamples(t *testing.T) {
	c, err := NewKanjiCard("日", valueobject.English)
	require.NoError(t, err)
	require.Equal(t, Kanji, c.Kind)
	assert.NotEmpty(t, c.Kanji.Examples)
	for _, ex := range c.Kanji.Examples {
		assert.NotEmpty(t, ex.Meaning)
	}
}

func TestNewKanjiCardUnknownCharacter(t *testing.T) {
	_, err := NewKanjiCard("〆", valueobject.English)
	assert.Error(t, err)
}

func TestWithGrammarRule(t *testing.T) {
	rule, ok := grammar.RuleByID("01D39ZY06FGSCTVN4T2V9PKHFA")
	require.True(t, ok)

	c, err := NewVocabularyCard("行く", "to go", nil)
	require.NoError(t, err)

	tok := stubTokenizer{tokens: []japanese.Token{{PartOfSpeech: japanese.Verb}}}
	out, err := WithGrammarRule(c, tok, rule, valueobject.English)
	require.NoError(t, err)
	assert.Equal(t, "行きましょう", out.Question().Text())
	assert.Contains(t, out.Answer().Text(), "to go")
}

func TestWithGrammarRuleRejectsBadPartOfSpeech(t *testing.T) {
	rule, ok := grammar.RuleByID("01D39ZY06FGSCTVN4T2V9PKHFA")
	require.True(t, ok)

	c, err := NewVocabularyCard("学生", "student", nil)
	require.NoError(t, err)

	tok := stubTokenizer{tokens: []japanese.Token{{PartOfSpeech: japanese.Noun}}}
	_, err = WithGrammarRule(c, tok, rule, valueobject.English)
	assert.Error(t, err)
}

func TestShuffleCardUnchangedWhenNotKnownOrInProgress(t *testing.T) {
	c, err := NewVocabularyCard("行く", "to go", nil)
	require.NoError(t, err)
	sc := StudyCard{ID: "01A", Card: c}

	out, err := ShuffleCard(sc, xrand.Fixed{Value: 0.1}, stubTokenizer{}, valueobject.English, nil)
	require.NoError(t, err)
	assert.Equal(t, c, out)
}

func TestShuffleCardRevertsOnLowCoin(t *testing.T) {
	c, err := NewVocabularyCard("行く", "to go", nil)
	require.NoError(t, err)
	stability, err := valueobject.NewStability(15.0)
	require.NoError(t, err)
	difficulty, err := valueobject.NewDifficulty(0.1)
	require.NoError(t, err)
	sc := StudyCard{ID: "01A", Card: c, History: memory.History{Current: &memory.State{
		Stability: stability, Difficulty: difficulty, NextReview: time.Now().Add(time.Hour),
	}}}

	out, err := ShuffleCard(sc, xrand.Fixed{Value: 0.1}, stubTokenizer{}, valueobject.English, nil)
	require.NoError(t, err)
	assert.Equal(t, "to go", out.Question().Text())
}

func TestShuffleCardAppliesGrammarOnHighCoin(t *testing.T) {
	c, err := NewVocabularyCard("行く", "to go", nil)
	require.NoError(t, err)
	stability, err := valueobject.NewStability(15.0)
	require.NoError(t, err)
	difficulty, err := valueobject.NewDifficulty(0.1)
	require.NoError(t, err)
	sc := StudyCard{ID: "01A", Card: c, History: memory.History{Current: &memory.State{
		Stability: stability, Difficulty: difficulty, NextReview: time.Now().Add(time.Hour),
	}}}

	rule, ok := grammar.RuleByID("01D39ZY06FGSCTVN4T2V9PKHFA")
	require.True(t, ok)
	tok := stubTokenizer{tokens: []japanese.Token{{PartOfSpeech: japanese.Verb}}}

	out, err := ShuffleCard(sc, xrand.Fixed{Value: 0.9}, tok, valueobject.English, []grammar.Rule{rule})
	require.NoError(t, err)
	assert.Equal(t, "行きましょう", out.Question().Text())
}
