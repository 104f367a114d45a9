package usecase

import (
	"context"

	"github.com/yurvon-screamo/origa-sub001/internal/knowledge"
	"github.com/yurvon-screamo/origa-sub001/internal/user"
	"github.com/yurvon-screamo/origa-sub001/internal/valueobject"
)

// UpdateUserProfile replaces the user's display name, level, and native
// language.
func (s *Service) UpdateUserProfile(ctx context.Context, userID valueobject.UserID, displayName string, level valueobject.JapaneseLevel, lang valueobject.NativeLanguage) error {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}
	u.UpdateProfile(displayName, level, lang)
	return s.Users.Save(ctx, u)
}

// UpdateUserSettings validates and replaces the user's generator, Duolingo,
// and Telegram settings.
func (s *Service) UpdateUserSettings(ctx context.Context, userID valueobject.UserID, generator user.GeneratorSettings, duolingoToken, telegramUserID string) error {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := u.UpdateSettings(generator, duolingoToken, telegramUserID); err != nil {
		return err
	}
	return s.Users.Save(ctx, u)
}

// UserProfile is the read-only projection GetUserInfo returns: it omits
// settings secrets (generator API key, Duolingo token) entirely, since those
// are never surfaced outside UpdateUserSettings/the repository layer.
type UserProfile struct {
	ID            valueobject.UserID
	DisplayName   string
	Level         valueobject.JapaneseLevel
	Lang          valueobject.NativeLanguage
	LessonHistory []knowledge.DailyHistoryItem
}

// GetUserInfo returns the user's public profile and lesson history.
func (s *Service) GetUserInfo(ctx context.Context, userID valueobject.UserID) (UserProfile, error) {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return UserProfile{}, err
	}
	return UserProfile{
		ID:            u.ID,
		DisplayName:   u.DisplayName,
		Level:         u.Level,
		Lang:          u.NativeLanguage,
		LessonHistory: u.Knowledge.LessonHistory(),
	}, nil
}
