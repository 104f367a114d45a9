package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/yurvon-screamo/origa-sub001/internal/card"
	"github.com/yurvon-screamo/origa-sub001/internal/grammar"
	"github.com/yurvon-screamo/origa-sub001/internal/knerr"
	"github.com/yurvon-screamo/origa-sub001/internal/valueobject"
)

// CreateVocabularyCard tokenises questionText and creates one vocabulary card
// per content word found in it, skipping tokens that already have a card.
// A failure generating content for one token aborts the whole call; a
// duplicate-card rejection for one token is logged and the rest proceed.
// When no card is created because every content word already has one, the
// call fails with the first DuplicateCardError and nothing is saved.
func (s *Service) CreateVocabularyCard(ctx context.Context, userID valueobject.UserID, questionText string) ([]card.StudyCard, error) {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	tokens, err := s.Tokenizer.Tokenize(questionText)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var created []card.StudyCard
	var firstDuplicate error

	for _, tok := range tokens {
		if !tok.PartOfSpeech.IsVocabularyWord() {
			continue
		}

		content, err := s.generateCardContent(ctx, tok.OrthographicBaseForm, u.NativeLanguage, u.Level)
		if err != nil {
			return nil, err
		}

		c, err := card.NewVocabularyCard(tok.OrthographicBaseForm, content.answer.Text(), nil)
		if err != nil {
			return nil, err
		}

		sc, err := u.CreateCard(valueobject.CardID(s.IDs.New(now)), c, now)
		if err != nil {
			var dup *knerr.DuplicateCardError
			if errors.As(err, &dup) {
				s.Logger.Info("skipped duplicate vocabulary card", zap.String("word", tok.OrthographicBaseForm))
				if firstDuplicate == nil {
					firstDuplicate = err
				}
				continue
			}
			s.Logger.Error("failed to create vocabulary card", zap.String("word", tok.OrthographicBaseForm), zap.Error(err))
			continue
		}
		created = append(created, sc)
	}

	if len(created) == 0 && firstDuplicate != nil {
		return nil, firstDuplicate
	}

	if err := s.Users.Save(ctx, u); err != nil {
		return nil, err
	}
	return created, nil
}

// CreateKanjiCard creates one kanji card per character in kanjis.
func (s *Service) CreateKanjiCard(ctx context.Context, userID valueobject.UserID, kanjis []string) ([]card.StudyCard, error) {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	created := make([]card.StudyCard, 0, len(kanjis))
	for _, k := range kanjis {
		c, err := card.NewKanjiCard(k, u.NativeLanguage)
		if err != nil {
			return nil, err
		}
		sc, err := u.CreateCard(valueobject.CardID(s.IDs.New(now)), c, now)
		if err != nil {
			return nil, err
		}
		created = append(created, sc)
	}

	if err := s.Users.Save(ctx, u); err != nil {
		return nil, err
	}
	return created, nil
}

// CreateGrammarCard creates one grammar card per rule id in ruleIDs.
func (s *Service) CreateGrammarCard(ctx context.Context, userID valueobject.UserID, ruleIDs []string) ([]card.StudyCard, error) {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	created := make([]card.StudyCard, 0, len(ruleIDs))
	for _, id := range ruleIDs {
		rule, ok := grammar.RuleByID(id)
		if !ok {
			return nil, &knerr.RepositoryError{Op: "CreateGrammarCard", Err: errors.New("grammar rule " + id + " not found")}
		}
		c := card.NewGrammarCard(rule, u.NativeLanguage)
		sc, err := u.CreateCard(valueobject.CardID(s.IDs.New(now)), c, now)
		if err != nil {
			return nil, err
		}
		created = append(created, sc)
	}

	if err := s.Users.Save(ctx, u); err != nil {
		return nil, err
	}
	return created, nil
}

// DeleteCard removes a card by id.
func (s *Service) DeleteCard(ctx context.Context, userID valueobject.UserID, cardID valueobject.CardID) error {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := u.DeleteCard(cardID, s.now()); err != nil {
		return err
	}
	return s.Users.Save(ctx, u)
}

// DeleteKanjiCard removes the kanji card whose character matches kanji.
func (s *Service) DeleteKanjiCard(ctx context.Context, userID valueobject.UserID, kanji string) error {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}

	id, ok := findCardID(u.Knowledge.StudyCards(), func(c card.Card) bool {
		return c.Kind == card.Kanji && c.Kanji.Question.Text() == kanji
	})
	if !ok {
		return &knerr.RepositoryError{Op: "DeleteKanjiCard", Err: errors.New("kanji " + kanji + " not found in knowledge set")}
	}

	if err := u.DeleteCard(id, s.now()); err != nil {
		return err
	}
	return s.Users.Save(ctx, u)
}

// DeleteGrammarCard removes the grammar card whose rule id matches ruleID.
func (s *Service) DeleteGrammarCard(ctx context.Context, userID valueobject.UserID, ruleID string) error {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}

	id, ok := findCardID(u.Knowledge.StudyCards(), func(c card.Card) bool {
		return c.Kind == card.Grammar && c.Grammar.RuleID == ruleID
	})
	if !ok {
		return &knerr.RepositoryError{Op: "DeleteGrammarCard", Err: errors.New("grammar rule " + ruleID + " not found in knowledge set")}
	}

	if err := u.DeleteCard(id, s.now()); err != nil {
		return err
	}
	return s.Users.Save(ctx, u)
}

func findCardID(studyCards map[valueobject.CardID]card.StudyCard, match func(card.Card) bool) (valueobject.CardID, bool) {
	for id, sc := range studyCards {
		if match(sc.Card) {
			return id, true
		}
	}
	return "", false
}
