package card

import (
	"github.com/yurvon-screamo/origa-sub001/internal/grammar"
	"github.com/yurvon-screamo/origa-sub001/internal/japanese"
	"github.com/yurvon-screamo/origa-sub001/internal/valueobject"
	"github.com/yurvon-screamo/origa-sub001/internal/xrand"
)

// ShuffleCard re-exposes a known or in-progress card in a varied form
// without creating a new entry. Cards that are neither known nor in progress
// are returned unchanged; so are non-vocabulary cards.
//
// For a vocabulary card it flips a fair coin: revert the card, or determine
// the word's part of speech and try to apply one of the known grammar rules
// that accepts it, chosen uniformly at random. A rule that fails to apply
// (or when none of the known rules accept the part of speech) falls through
// to the card unchanged — this is deliberate: an unresolvable shuffle is not
// an error condition, it just yields no variation this time.
func ShuffleCard(sc StudyCard, rnd xrand.Source, t japanese.Tokenizer, lang valueobject.NativeLanguage, knownGrammars []grammar.Rule) (Card, error) {
	c := sc.Card
	if !sc.History.IsKnownCard() && !sc.History.IsInProgress() {
		return c, nil
	}
	if c.Kind != Vocabulary {
		return c, nil
	}

	if rnd.Float64() < 0.5 {
		return c.Revert(), nil
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

	var candidates []grammar.Rule
	for _, rule := range knownGrammars {
		if rule.AcceptsPartOfSpeech(pos) {
			candidates = append(candidates, rule)
		}
	}
	if len(candidates) == 0 {
		return c, nil
	}

	rnd.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	withRule, err := WithGrammarRule(c, t, candidates[0], lang)
	if err != nil {
		return c, nil
	}
	return withRule, nil
}
