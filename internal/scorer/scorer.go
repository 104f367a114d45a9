// Package scorer classifies the kanji and vocabulary in a piece of text
// against a learner's existing cards, splitting each into known/unknown.
package scorer

import (
	"github.com/yurvon-screamo/origa-sub001/internal/card"
	"github.com/yurvon-screamo/origa-sub001/internal/japanese"
)

// Result is the four disjoint sequences content scoring produces.
type Result struct {
	KnownKanji   []string
	UnknownKanji []string
	KnownWords   []string
	UnknownWords []string
}

// ScoreContent classifies every kanji character and every vocabulary word in
// content against studyCards: known when a matching card exists and is
// currently a known card, unknown otherwise (including when no matching card
// exists at all). Tokeniser failure aborts scoring.
func ScoreContent(content string, t japanese.Tokenizer, studyCards []card.StudyCard) (Result, error) {
	var result Result

	seenKanji := make(map[string]bool)
	for _, r := range content {
		if !japanese.IsKanji(r) {
			continue
		}
		c := string(r)
		if seenKanji[c] {
			continue
		}
		seenKanji[c] = true

		if isKnownKanji(c, studyCards) {
			result.KnownKanji = append(result.KnownKanji, c)
		} else {
			result.UnknownKanji = append(result.UnknownKanji, c)
		}
	}

	tokens, err := t.Tokenize(content)
	if err != nil {
		return Result{}, err
	}

	seenWords := make(map[string]bool)
	for _, tok := range tokens {
		if !tok.PartOfSpeech.IsVocabularyWord() {
			continue
		}
		base := tok.OrthographicBaseForm
		if base == "" || seenWords[base] {
			continue
		}
		seenWords[base] = true

		if isKnownWord(base, studyCards) {
			result.KnownWords = append(result.KnownWords, base)
		} else {
			result.UnknownWords = append(result.UnknownWords, base)
		}
	}

	return result, nil
}

func isKnownKanji(character string, studyCards []card.StudyCard) bool {
	for _, sc := range studyCards {
		if sc.Card.Kind != card.Kanji {
			continue
		}
		if sc.Card.Kanji.Question.Text() == character {
			return sc.History.IsKnownCard()
		}
	}
	return false
}

func isKnownWord(baseForm string, studyCards []card.StudyCard) bool {
	for _, sc := range studyCards {
		if sc.Card.Kind != card.Vocabulary {
			continue
		}
		if sc.Card.Vocabulary.Question.Text() == baseForm {
			return sc.History.IsKnownCard()
		}
	}
	return false
}
