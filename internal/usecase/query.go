package usecase

import (
	"context"

	"github.com/yurvon-screamo/origa-sub001/internal/card"
	"github.com/yurvon-screamo/origa-sub001/internal/dictionary"
	"github.com/yurvon-screamo/origa-sub001/internal/grammar"
	"github.com/yurvon-screamo/origa-sub001/internal/knerr"
	"github.com/yurvon-screamo/origa-sub001/internal/knowledge"
	"github.com/yurvon-screamo/origa-sub001/internal/scorer"
	"github.com/yurvon-screamo/origa-sub001/internal/valueobject"
)

// KnowledgeSetCards returns every study card the user owns.
func (s *Service) KnowledgeSetCards(ctx context.Context, userID valueobject.UserID) ([]card.StudyCard, error) {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	cards := u.Knowledge.StudyCards()
	out := make([]card.StudyCard, 0, len(cards))
	for _, sc := range cards {
		out = append(out, sc)
	}
	return out, nil
}

// SelectCardsToLesson builds the next lesson batch for the user.
func (s *Service) SelectCardsToLesson(ctx context.Context, userID valueobject.UserID, knownGrammars []grammar.Rule) (map[valueobject.CardID]card.Card, error) {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	nNew := s.NewPerLesson
	if nNew <= 0 {
		nNew = knowledge.DefaultNewCardsPerLesson
	}

	return u.Knowledge.CardsToLesson(u.NativeLanguage, s.Tokenizer, s.Rand, knownGrammars, nNew, s.now())
}

// SelectCardsToFixation returns the user's fixation batch.
func (s *Service) SelectCardsToFixation(ctx context.Context, userID valueobject.UserID) ([]card.Card, error) {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.Knowledge.CardsToFixation(s.now()), nil
}

// ScoreContent classifies the kanji and vocabulary words in content as known
// or unknown against the user's knowledge set.
func (s *Service) ScoreContent(ctx context.Context, userID valueobject.UserID, content string) (scorer.Result, error) {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return scorer.Result{}, err
	}

	cards := u.Knowledge.StudyCards()
	studyCards := make([]card.StudyCard, 0, len(cards))
	for _, sc := range cards {
		studyCards = append(studyCards, sc)
	}

	return scorer.ScoreContent(content, s.Tokenizer, studyCards)
}

// GrammarRuleInfo looks up one grammar rule by id.
func (s *Service) GrammarRuleInfo(ruleID string) (grammar.Rule, error) {
	rule, ok := grammar.RuleByID(ruleID)
	if !ok {
		return grammar.Rule{}, &knerr.InvalidValueError{Field: "rule_id", Reason: ruleID + " not found"}
	}
	return rule, nil
}

// KanjiInfo looks up one kanji character in the embedded dictionary.
func (s *Service) KanjiInfo(kanji string) (dictionary.Kanji, error) {
	k, ok := dictionary.KanjiByChar(kanji)
	if !ok {
		return dictionary.Kanji{}, &knerr.InvalidValueError{Field: "kanji", Reason: kanji + " not found"}
	}
	return k, nil
}

// KanjiList returns every kanji at the given JLPT level.
func (s *Service) KanjiList(level valueobject.JapaneseLevel) []dictionary.Kanji {
	return dictionary.KanjiListByLevel(level)
}
