// Package card models the three kinds of flashcard content — vocabulary,
// kanji, and grammar — as a single tagged-union Card, plus the StudyCard
// wrapper that pairs a card with its review history.
package card

import (
	"fmt"

	"github.com/yurvon-screamo/origa-sub001/internal/dictionary"
	"github.com/yurvon-screamo/origa-sub001/internal/grammar"
	"github.com/yurvon-screamo/origa-sub001/internal/japanese"
	"github.com/yurvon-screamo/origa-sub001/internal/knerr"
	"github.com/yurvon-screamo/origa-sub001/internal/memory"
	"github.com/yurvon-screamo/origa-sub001/internal/valueobject"
)

// Kind distinguishes the Card variants.
type Kind int

const (
	Vocabulary Kind = iota
	Kanji
	Grammar
)

func (k Kind) String() string {
	switch k {
	case Vocabulary:
		return "Vocabulary"
	case Kanji:
		return "Kanji"
	case Grammar:
		return "Grammar"
	default:
		return "Unknown"
	}
}

// ExamplePhrase is an example sentence shown on a vocabulary card.
type ExamplePhrase struct {
	Text        string
	Translation string
}

// ExampleWord is a word that uses a given kanji, shown on a kanji card.
type ExampleWord struct {
	Word    string
	Meaning string
}

// VocabularyCard is a word/translation pair, with optional example phrases.
type VocabularyCard struct {
	Question valueobject.Question
	Answer   valueobject.Answer
	Examples []ExamplePhrase
}

// KanjiCard is a single kanji character with a description and words that use it.
type KanjiCard struct {
	Question valueobject.Question
	Answer   valueobject.Answer
	Examples []ExampleWord
}

// GrammarCard references a grammar rule by id, with its rendered content
// cached for the user's native language at creation time.
type GrammarCard struct {
	RuleID      string
	Title       string
	Description string
	ApplyTo     []japanese.PartOfSpeech
}

// Card is the tagged union of the three content kinds. Exactly one of
// Vocabulary, Kanji, or Grammar is populated, selected by Kind.
type Card struct {
	Kind       Kind
	Vocabulary *VocabularyCard
	Kanji      *KanjiCard
	Grammar    *GrammarCard
}

// NewVocabularyCard validates and constructs a Vocabulary card.
func NewVocabularyCard(word, translation string, examples []ExamplePhrase) (Card, error) {
	q, err := valueobject.NewQuestion(word)
	if err != nil {
		return Card{}, err
	}
	a, err := valueobject.NewAnswer(translation)
	if err != nil {
		return Card{}, err
	}
	return Card{
		Kind: Vocabulary,
		Vocabulary: &VocabularyCard{
			Question: q,
			Answer:   a,
			Examples: examples,
		},
	}, nil
}

// translationNotFound is the placeholder the core always surfaces instead of
// an empty translation, so presentation layers never render a blank answer.
var translationNotFound = map[valueobject.NativeLanguage]string{
	valueobject.English: "translation not found",
	valueobject.Russian: "перевод не найден",
}

// NewKanjiCard resolves character in the reference dictionary, builds the
// example-word list with translations resolved in lang (falling back to a
// localised placeholder when a translation is missing), and constructs a
// Kanji card.
func NewKanjiCard(character string, lang valueobject.NativeLanguage) (Card, error) {
	k, ok := dictionary.KanjiByChar(character)
	if !ok {
		return Card{}, &knerr.InvalidValueError{Field: "KanjiCard.Question", Reason: fmt.Sprintf("kanji %q not found in dictionary", character)}
	}

	q, err := valueobject.NewQuestion(character)
	if err != nil {
		return Card{}, err
	}

	a, err := valueobject.NewAnswer(k.Description)
	if err != nil {
		return Card{}, err
	}

	examples := make([]ExampleWord, 0, len(k.PopularWords))
	for _, pw := range k.PopularWords {
		meaning, ok := dictionary.VocabularyTranslation(pw.Word, lang)
		if !ok {
			meaning = translationNotFound[lang]
			if meaning == "" {
				meaning = translationNotFound[valueobject.English]
			}
		}
		examples = append(examples, ExampleWord{Word: pw.Word, Meaning: meaning})
	}

	return Card{
		Kind: Kanji,
		Kanji: &KanjiCard{
			Question: q,
			Answer:   a,
			Examples: examples,
		},
	}, nil
}

// NewGrammarCard builds a Grammar card from rule, rendering its content for
// lang. The caller looks the rule up in the grammar registry.
func NewGrammarCard(rule grammar.Rule, lang valueobject.NativeLanguage) Card {
	content := rule.Content[lang]
	return Card{
		Kind: Grammar,
		Grammar: &GrammarCard{
			RuleID:      rule.ID,
			Title:       content.Title,
			Description: content.MdDescription,
			ApplyTo:     rule.ApplyTo,
		},
	}
}

// Question projects the card's front face.
func (c Card) Question() valueobject.Question {
	switch c.Kind {
	case Vocabulary:
		return c.Vocabulary.Question
	case Kanji:
		return c.Kanji.Question
	case Grammar:
		q, _ := valueobject.NewQuestion(c.Grammar.Title)
		return q
	default:
		return valueobject.Question{}
	}
}

// Answer projects the card's back face.
func (c Card) Answer() valueobject.Answer {
	switch c.Kind {
	case Vocabulary:
		return c.Vocabulary.Answer
	case Kanji:
		return c.Kanji.Answer
	case Grammar:
		a, _ := valueobject.NewAnswer(c.Grammar.Description)
		return a
	default:
		return valueobject.Answer{}
	}
}

// Revert swaps front and back of a Vocabulary card; example phrases are
// carried unchanged. Non-vocabulary cards are returned unchanged.
func (c Card) Revert() Card {
	if c.Kind != Vocabulary {
		return c
	}
	q, err := valueobject.NewQuestion(c.Vocabulary.Answer.Text())
	if err != nil {
		return c
	}
	a, err := valueobject.NewAnswer(c.Vocabulary.Question.Text())
	if err != nil {
		return c
	}
	return Card{
		Kind: Vocabulary,
		Vocabulary: &VocabularyCard{
			Question: q,
			Answer:   a,
			Examples: c.Vocabulary.Examples,
		},
	}
}

// WithGrammarRule tokenises the vocabulary card's word, takes the first
// token's part of speech, and formats the word through rule. On success it
// returns a new Vocabulary card whose front is the formatted word and whose
// back explains which rule was applied. Non-vocabulary cards are returned
// unchanged with a nil error.
func WithGrammarRule(c Card, t japanese.Tokenizer, rule grammar.Rule, lang valueobject.NativeLanguage) (Card, error) {
	if c.Kind != Vocabulary {
		return c, nil
	}

	word := c.Vocabulary.Question.Text()
	tokens, err := t.Tokenize(word)
	if err != nil {
		return Card{}, err
	}
	pos := japanese.Other
	if len(tokens) > 0 {
		pos = tokens[0].PartOfSpeech
	}

	formatted, err := rule.Format(word, pos)
	if err != nil {
		return Card{}, err
	}

	content := rule.Content[lang]
	meaning := fmt.Sprintf("Word: %s with applied grammar rule: %s", c.Vocabulary.Answer.Text(), content.ShortDescription)

	q, err := valueobject.NewQuestion(formatted)
	if err != nil {
		return Card{}, err
	}
	a, err := valueobject.NewAnswer(meaning)
	if err != nil {
		return Card{}, err
	}

	return Card{
		Kind: Vocabulary,
		Vocabulary: &VocabularyCard{
			Question: q,
			Answer:   a,
			Examples: c.Vocabulary.Examples,
		},
	}, nil
}

// StudyCard pairs a card with its review history. Identity is stable over
// the card's lifetime.
type StudyCard struct {
	ID      valueobject.CardID
	Card    Card
	History memory.History
}
