// Package memory models a card's review history: the scheduler state it
// currently carries, and the append-only log of ratings that produced it.
package memory

import (
	"time"

	"github.com/yurvon-screamo/origa-sub001/internal/valueobject"
)

const (
	// LowStability is the stability threshold below which a card is
	// considered fragile and worth extra attention.
	LowStability = 2.0
	// KnownStability is the stability threshold above which a card is
	// considered learned, provided it is not also high-difficulty.
	KnownStability = 10.0
	// HighDifficulty is the difficulty threshold at or above which a card
	// is considered troublesome regardless of its stability.
	HighDifficulty = 1.75
)

// State is the scheduler's current assessment of a card.
type State struct {
	Stability   valueobject.Stability
	Difficulty  valueobject.Difficulty
	NextReview  time.Time
}

// ReviewLog is one completed review of a card.
type ReviewLog struct {
	ID       valueobject.ReviewLogID
	Rating   valueobject.Rating
	At       time.Time
	Interval time.Duration
}

// History is a card's scheduler state plus its review log. A nil Current is
// only valid when Reviews is empty: a review always leaves behind both a log
// entry and a state update.
type History struct {
	Current *State
	Reviews []ReviewLog
}

// IsNew reports whether the card has never been reviewed.
func (h History) IsNew() bool {
	return h.Current == nil
}

// IsDue reports whether the card is due for review at now.
func (h History) IsDue(now time.Time) bool {
	if h.IsNew() {
		return false
	}
	return !h.Current.NextReview.After(now)
}

// IsLowStability reports whether the card's stability is below LowStability.
func (h History) IsLowStability() bool {
	if h.IsNew() {
		return false
	}
	return h.Current.Stability.Value() < LowStability
}

// IsHighDifficulty reports whether the card's difficulty is at or above
// HighDifficulty.
func (h History) IsHighDifficulty() bool {
	if h.IsNew() {
		return false
	}
	return h.Current.Difficulty.Value() >= HighDifficulty
}

// IsKnownCard reports whether the card is considered learned: high
// stability and not also high-difficulty.
func (h History) IsKnownCard() bool {
	if h.IsNew() {
		return false
	}
	return h.Current.Stability.Value() > KnownStability && !h.IsHighDifficulty()
}

// IsInProgress reports whether the card is neither new, known, low-stability
// nor high-difficulty — the ordinary steady-state of an actively learned card.
func (h History) IsInProgress() bool {
	if h.IsNew() {
		return false
	}
	return !h.IsKnownCard() && !h.IsHighDifficulty() && !h.IsLowStability()
}

// AddReview appends a review log entry and replaces the current state
// wholesale; the prior state is not retained except through the log.
func (h History) AddReview(log ReviewLog, next State) History {
	reviews := make([]ReviewLog, 0, len(h.Reviews)+1)
	reviews = append(reviews, h.Reviews...)
	reviews = append(reviews, log)
	return History{
		Current: &next,
		Reviews: reviews,
	}
}
