// Package user models the User aggregate: the transaction boundary for
// every mutating use case. A user's knowledge set is only reachable through
// its owning User, so load → mutate → save stays the only path to mutation.
package user

import (
	"time"

	"github.com/yurvon-screamo/origa-sub001/internal/card"
	"github.com/yurvon-screamo/origa-sub001/internal/knerr"
	"github.com/yurvon-screamo/origa-sub001/internal/knowledge"
	"github.com/yurvon-screamo/origa-sub001/internal/memory"
	"github.com/yurvon-screamo/origa-sub001/internal/valueobject"
)

// GeneratorSettings selects the translation generator a user has configured,
// if any. An empty Provider means no generator is configured.
type GeneratorSettings struct {
	Provider string
	APIKey   string
	Model    string
}

// Settings is a user's third-party integration configuration, validated
// independently of the rest of the User.
type Settings struct {
	Generator      GeneratorSettings
	DuolingoToken  string
	TelegramUserID string
}

// NewSettings validates settings: a configured generator provider requires
// an API key.
func NewSettings(generator GeneratorSettings, duolingoToken, telegramUserID string) (Settings, error) {
	if generator.Provider != "" && generator.APIKey == "" {
		return Settings{}, &knerr.SettingsError{Reason: "generator provider " + generator.Provider + " configured without an API key"}
	}
	return Settings{
		Generator:      generator,
		DuolingoToken:  duolingoToken,
		TelegramUserID: telegramUserID,
	}, nil
}

// HasGenerator reports whether a translation generator is configured.
func (s Settings) HasGenerator() bool {
	return s.Generator.Provider != ""
}

// User is the aggregate root: identity, profile, settings, and the one
// knowledge set it owns exclusively.
type User struct {
	ID             valueobject.UserID
	DisplayName    string
	Level          valueobject.JapaneseLevel
	NativeLanguage valueobject.NativeLanguage
	Settings       Settings
	Knowledge      *knowledge.Set
}

// New constructs a fresh User with an empty knowledge set.
func New(id valueobject.UserID, displayName string, level valueobject.JapaneseLevel, lang valueobject.NativeLanguage) *User {
	return &User{
		ID:             id,
		DisplayName:    displayName,
		Level:          level,
		NativeLanguage: lang,
		Knowledge:      knowledge.New(),
	}
}

// CreateCard inserts c into the user's knowledge set under id.
func (u *User) CreateCard(id valueobject.CardID, c card.Card, now time.Time) (card.StudyCard, error) {
	return u.Knowledge.CreateCard(id, c, now)
}

// DeleteCard removes a card from the user's knowledge set.
func (u *User) DeleteCard(id valueobject.CardID, now time.Time) error {
	return u.Knowledge.DeleteCard(id, now)
}

// RateCard appends a review to a card's history and replaces its memory
// state, given the scheduler's decision for this rating.
func (u *User) RateCard(id valueobject.CardID, rating valueobject.Rating, interval time.Duration, next memory.State, reviewID valueobject.ReviewLogID, now time.Time) error {
	return u.Knowledge.RateCard(id, rating, interval, next, reviewID, now)
}

// UpdateProfile changes the user's display name, level, and native language.
func (u *User) UpdateProfile(displayName string, level valueobject.JapaneseLevel, lang valueobject.NativeLanguage) {
	u.DisplayName = displayName
	u.Level = level
	u.NativeLanguage = lang
}

// UpdateSettings replaces the user's settings wholesale after validation.
func (u *User) UpdateSettings(generator GeneratorSettings, duolingoToken, telegramUserID string) error {
	settings, err := NewSettings(generator, duolingoToken, telegramUserID)
	if err != nil {
		return err
	}
	u.Settings = settings
	return nil
}
