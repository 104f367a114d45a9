// Package knerr defines the error taxonomy shared across the knowledge-manager
// core. Every exported error type wraps one of the sentinel errors below so
// callers can branch with errors.Is while still recovering structured detail
// with errors.As.
package knerr

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrCardNotFound       = errors.New("card not found")
	ErrDuplicateCard      = errors.New("duplicate card")
	ErrInvalidValue       = errors.New("invalid value")
	ErrSrsCalculationFail = errors.New("srs calculation failed")
	ErrRepository         = errors.New("repository error")
	ErrLlm                = errors.New("llm error")
	ErrFurigana           = errors.New("furigana error")
	ErrTokenizer          = errors.New("tokenizer error")
	ErrKradfile           = errors.New("kradfile error")
	ErrWellKnownSet       = errors.New("well-known set error")
	ErrGrammarFormat      = errors.New("grammar format error")
	ErrSettings           = errors.New("settings error")
	ErrUnsupported        = errors.New("capability not supported")
)

// UserNotFoundError reports that no user exists under the given id.
type UserNotFoundError struct {
	UserID string
}

func (e *UserNotFoundError) Error() string { return fmt.Sprintf("user not found: %s", e.UserID) }
func (e *UserNotFoundError) Unwrap() error { return ErrUserNotFound }

// CardNotFoundError reports that no card exists under the given id within a knowledge set.
type CardNotFoundError struct {
	CardID string
}

func (e *CardNotFoundError) Error() string { return fmt.Sprintf("card not found: %s", e.CardID) }
func (e *CardNotFoundError) Unwrap() error { return ErrCardNotFound }

// DuplicateCardError reports a creation-time collision on question, kanji character, or rule id.
type DuplicateCardError struct {
	Question string
}

func (e *DuplicateCardError) Error() string {
	return fmt.Sprintf("duplicate card: %q already exists", e.Question)
}
func (e *DuplicateCardError) Unwrap() error { return ErrDuplicateCard }

// InvalidValueError reports a value-object construction failure (Question,
// Answer, Stability, Difficulty, and other catch-all value validation).
type InvalidValueError struct {
	Field  string
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
func (e *InvalidValueError) Unwrap() error { return ErrInvalidValue }

// SrsCalculationFailedError reports the scheduler produced an inconsistent result.
type SrsCalculationFailedError struct {
	Reason string
}

func (e *SrsCalculationFailedError) Error() string {
	return fmt.Sprintf("srs calculation failed: %s", e.Reason)
}
func (e *SrsCalculationFailedError) Unwrap() error { return ErrSrsCalculationFail }

// RepositoryError wraps any persistence or external-word-source failure.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("repository error: %s", e.Op)
	}
	return fmt.Sprintf("repository error: %s: %v", e.Op, e.Err)
}
func (e *RepositoryError) Unwrap() []error { return []error{ErrRepository, e.Err} }

// LlmError wraps a generator failure or an unparseable response after all retries.
type LlmError struct {
	Attempts int
	Err      error
}

func (e *LlmError) Error() string {
	return fmt.Sprintf("llm error after %d attempt(s): %v", e.Attempts, e.Err)
}
func (e *LlmError) Unwrap() []error { return []error{ErrLlm, e.Err} }

// TokenizerError wraps a tokeniser failure.
type TokenizerError struct {
	Err error
}

func (e *TokenizerError) Error() string { return fmt.Sprintf("tokenizer error: %v", e.Err) }
func (e *TokenizerError) Unwrap() []error {
	return []error{ErrTokenizer, e.Err}
}

// FuriganaError wraps a furigana-rendering failure.
type FuriganaError struct {
	Err error
}

func (e *FuriganaError) Error() string { return fmt.Sprintf("furigana error: %v", e.Err) }
func (e *FuriganaError) Unwrap() []error {
	return []error{ErrFurigana, e.Err}
}

// GrammarFormatError reports a rule that could not format a given word/part-of-speech pair.
type GrammarFormatError struct {
	RuleID string
	Reason string
}

func (e *GrammarFormatError) Error() string {
	return fmt.Sprintf("grammar rule %s cannot format: %s", e.RuleID, e.Reason)
}
func (e *GrammarFormatError) Unwrap() error { return ErrGrammarFormat }

// KradfileError reports a failure loading the radical/kanji reference corpus.
type KradfileError struct {
	Err error
}

func (e *KradfileError) Error() string { return fmt.Sprintf("kradfile error: %v", e.Err) }
func (e *KradfileError) Unwrap() []error {
	return []error{ErrKradfile, e.Err}
}

// WellKnownSetError reports a failure loading or parsing a well-known word set.
type WellKnownSetError struct {
	Err error
}

func (e *WellKnownSetError) Error() string { return fmt.Sprintf("well-known set error: %v", e.Err) }
func (e *WellKnownSetError) Unwrap() []error {
	return []error{ErrWellKnownSet, e.Err}
}

// SettingsError reports malformed user settings (generator provider, tokens).
type SettingsError struct {
	Reason string
}

func (e *SettingsError) Error() string { return fmt.Sprintf("settings error: %s", e.Reason) }
func (e *SettingsError) Unwrap() error { return ErrSettings }
