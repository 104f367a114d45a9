package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/yurvon-screamo/origa-sub001/internal/dictionary"
	"github.com/yurvon-screamo/origa-sub001/internal/knerr"
	"github.com/yurvon-screamo/origa-sub001/internal/valueobject"
)

// ImportResult tallies how many cards an import/sync call created versus
// skipped, and which words were skipped.
type ImportResult struct {
	CreatedCount int
	SkippedWords []string
}

// importWords drives CreateVocabularyCard once per word, classifying a
// duplicate-card rejection as "skipped" and logging any other failure before
// skipping it too, rather than aborting the whole batch for one bad word.
func (s *Service) importWords(ctx context.Context, userID valueobject.UserID, words []string) ImportResult {
	result := ImportResult{}
	for _, word := range words {
		_, err := s.CreateVocabularyCard(ctx, userID, word)
		switch {
		case err == nil:
			result.CreatedCount++
		case errors.As(err, new(*knerr.DuplicateCardError)):
			result.SkippedWords = append(result.SkippedWords, word)
		default:
			s.Logger.Error("failed to create card while importing word", zap.String("word", word), zap.Error(err))
			result.SkippedWords = append(result.SkippedWords, word)
		}
	}
	return result
}

// ImportWellKnownSet creates a vocabulary card for every word in a bundled
// JLPT word list.
func (s *Service) ImportWellKnownSet(ctx context.Context, userID valueobject.UserID, setID dictionary.WellKnownSetID) (ImportResult, error) {
	set, ok := dictionary.GetWellKnownSet(setID)
	if !ok {
		return ImportResult{}, &knerr.InvalidValueError{Field: "well_known_set", Reason: string(setID) + " not found"}
	}
	return s.importWords(ctx, userID, set.Words), nil
}

// ImportMigiiPack fetches each lesson's word list from Migii and imports it.
func (s *Service) ImportMigiiPack(ctx context.Context, userID valueobject.UserID, lessons []int) (ImportResult, error) {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return ImportResult{}, err
	}
	if s.Migii == nil {
		return ImportResult{}, &knerr.RepositoryError{Op: "ImportMigiiPack", Err: errors.New("no migii client configured")}
	}

	total := ImportResult{}
	for _, lesson := range lessons {
		words, err := s.Migii.GetWords(ctx, u.Level, lesson)
		if err != nil {
			return ImportResult{}, &knerr.RepositoryError{Op: "ImportMigiiPack", Err: err}
		}
		plain := make([]string, 0, len(words))
		for _, w := range words {
			plain = append(plain, w.Word)
		}
		partial := s.importWords(ctx, userID, plain)
		total.CreatedCount += partial.CreatedCount
		total.SkippedWords = append(total.SkippedWords, partial.SkippedWords...)
	}
	return total, nil
}

// SyncDuolingoWords fetches the user's known-word list from Duolingo using
// their stored token and imports each word.
func (s *Service) SyncDuolingoWords(ctx context.Context, userID valueobject.UserID) (ImportResult, error) {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return ImportResult{}, err
	}
	if s.Duolingo == nil {
		return ImportResult{}, &knerr.RepositoryError{Op: "SyncDuolingoWords", Err: errors.New("no duolingo client configured")}
	}
	if u.Settings.DuolingoToken == "" {
		return ImportResult{}, &knerr.RepositoryError{Op: "SyncDuolingoWords", Err: errors.New("duolingo token not set")}
	}

	words, err := s.Duolingo.GetWords(ctx, u.Settings.DuolingoToken)
	if err != nil {
		return ImportResult{}, &knerr.RepositoryError{Op: "SyncDuolingoWords", Err: err}
	}
	plain := make([]string, 0, len(words))
	for _, w := range words {
		plain = append(plain, w.Word)
	}
	return s.importWords(ctx, userID, plain), nil
}
