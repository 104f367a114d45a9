// Package external defines the contracts between the core and its external
// collaborators: user persistence, the translation generator, and the two
// third-party word-source clients.
package external

import (
	"context"

	"github.com/yurvon-screamo/origa-sub001/internal/user"
	"github.com/yurvon-screamo/origa-sub001/internal/valueobject"
)

// UserRepository loads and stores User aggregates. FindByID and
// FindByTelegramID return (nil, nil) when no matching user exists.
// FindByTelegramID is an optional capability: an implementation that does
// not support Telegram lookups returns knerr.ErrUnsupported.
type UserRepository interface {
	List(ctx context.Context) ([]*user.User, error)
	FindByID(ctx context.Context, id valueobject.UserID) (*user.User, error)
	FindByTelegramID(ctx context.Context, telegramID string) (*user.User, error)
	Save(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id valueobject.UserID) error
}

// TextGenerator produces a translation for a templated prompt. The expected
// response is bare `{"translation": "…"}` JSON; markdown code fences are
// tolerated by the caller and stripped before parsing.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// MigiiWord is one vocabulary entry returned by the Migii word source.
type MigiiWord struct {
	Word        string
	Reading     string
	Translation string
}

// MigiiClient fetches a lesson's word list from the Migii word source.
type MigiiClient interface {
	GetWords(ctx context.Context, level valueobject.JapaneseLevel, lesson int) ([]MigiiWord, error)
}

// DuolingoWord is one vocabulary entry returned by the Duolingo word source.
type DuolingoWord struct {
	Word        string
	Translation string
}

// DuolingoClient fetches a learner's known-word list from Duolingo, using
// their stored JWT token.
type DuolingoClient interface {
	GetWords(ctx context.Context, token string) ([]DuolingoWord, error)
}
