// Package knowledge implements KnowledgeSet: a user's full collection of
// study cards, the daily history rollup over them, and the lesson/fixation
// selection algorithms that decide what a learner sees next.
package knowledge

import (
	"time"

	"github.com/yurvon-screamo/origa-sub001/internal/card"
	"github.com/yurvon-screamo/origa-sub001/internal/grammar"
	"github.com/yurvon-screamo/origa-sub001/internal/japanese"
	"github.com/yurvon-screamo/origa-sub001/internal/knerr"
	"github.com/yurvon-screamo/origa-sub001/internal/memory"
	"github.com/yurvon-screamo/origa-sub001/internal/valueobject"
	"github.com/yurvon-screamo/origa-sub001/internal/xrand"
)

// DefaultNewCardsPerLesson is N_new: how many brand-new cards a lesson
// batch introduces alongside due reviews, absent an explicit override.
const DefaultNewCardsPerLesson = 5

// DailyHistoryItem is one day's rollup of the knowledge set's status.
type DailyHistoryItem struct {
	Date                time.Time
	AvgStability        float64
	AvgDifficulty       float64
	TotalCards          int
	KnownCards          int
	InProgressCards     int
	NewCards            int
	LowStabilityCards   int
	HighDifficultyCards int
	LessonsCompleted    int
	LessonDuration      time.Duration
}

// Set is a user's full knowledge set: every study card they own, plus an
// append-only daily history.
type Set struct {
	studyCards    map[valueobject.CardID]card.StudyCard
	lessonHistory []DailyHistoryItem
	currentDay    time.Time
}

// New returns an empty knowledge set.
func New() *Set {
	return &Set{studyCards: make(map[valueobject.CardID]card.StudyCard)}
}

// Restore rebuilds a Set from a previously persisted snapshot, for
// repository implementations loading a user back from storage.
func Restore(studyCards map[valueobject.CardID]card.StudyCard, history []DailyHistoryItem, currentDay time.Time) *Set {
	cards := make(map[valueobject.CardID]card.StudyCard, len(studyCards))
	for k, v := range studyCards {
		cards[k] = v
	}
	return &Set{
		studyCards:    cards,
		lessonHistory: history,
		currentDay:    currentDay,
	}
}

// StudyCards returns a snapshot of every card in the set.
func (s *Set) StudyCards() map[valueobject.CardID]card.StudyCard {
	out := make(map[valueobject.CardID]card.StudyCard, len(s.studyCards))
	for k, v := range s.studyCards {
		out[k] = v
	}
	return out
}

// LessonHistory returns the append-only daily history.
func (s *Set) LessonHistory() []DailyHistoryItem {
	return s.lessonHistory
}

// CurrentDay returns the UTC date the most recent daily item covers.
func (s *Set) CurrentDay() time.Time {
	return s.currentDay
}

func dayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ensureDay appends a fresh daily item when "today" (UTC) has changed since
// the last mutation, otherwise it leaves the current item in place to be
// updated.
func (s *Set) ensureDay(now time.Time) {
	day := dayOf(now)
	if len(s.lessonHistory) == 0 || !s.currentDay.Equal(day) {
		s.lessonHistory = append(s.lessonHistory, DailyHistoryItem{Date: day})
		s.currentDay = day
	}
}

func (s *Set) currentItem() *DailyHistoryItem {
	return &s.lessonHistory[len(s.lessonHistory)-1]
}

// rollup recomputes summary statistics over the current card set and writes
// them into today's DailyHistoryItem.
func (s *Set) rollup(now time.Time) {
	s.ensureDay(now)
	item := s.currentItem()

	var stabilitySum, difficultySum float64
	var withState int
	item.TotalCards = len(s.studyCards)
	item.KnownCards = 0
	item.InProgressCards = 0
	item.NewCards = 0
	item.LowStabilityCards = 0
	item.HighDifficultyCards = 0

	for _, sc := range s.studyCards {
		h := sc.History
		if h.IsNew() {
			item.NewCards++
			continue
		}
		stabilitySum += h.Current.Stability.Value()
		difficultySum += h.Current.Difficulty.Value()
		withState++

		if h.IsKnownCard() {
			item.KnownCards++
		}
		if h.IsInProgress() {
			item.InProgressCards++
		}
		if h.IsLowStability() {
			item.LowStabilityCards++
		}
		if h.IsHighDifficulty() {
			item.HighDifficultyCards++
		}
	}

	if withState > 0 {
		item.AvgStability = stabilitySum / float64(withState)
		item.AvgDifficulty = difficultySum / float64(withState)
	} else {
		item.AvgStability = 0
		item.AvgDifficulty = 0
	}
}

// duplicateOf reports whether an existing study card's content would collide
// with a freshly proposed card, per card kind.
func (s *Set) duplicateOf(c card.Card) bool {
	for _, sc := range s.studyCards {
		if sc.Card.Kind != c.Kind {
			continue
		}
		switch c.Kind {
		case card.Vocabulary:
			if sc.Card.Vocabulary.Question.Text() == c.Vocabulary.Question.Text() {
				return true
			}
		case card.Kanji:
			if sc.Card.Kanji.Question.Text() == c.Kanji.Question.Text() {
				return true
			}
		case card.Grammar:
			if sc.Card.Grammar.RuleID == c.Grammar.RuleID {
				return true
			}
		}
	}
	return false
}

// CreateCard inserts a freshly constructed StudyCard under id, failing with
// DuplicateCard when an equivalent card (same vocabulary question, same
// kanji character, or same grammar rule id) already exists.
func (s *Set) CreateCard(id valueobject.CardID, c card.Card, now time.Time) (card.StudyCard, error) {
	if s.duplicateOf(c) {
		return card.StudyCard{}, &knerr.DuplicateCardError{Question: c.Question().Text()}
	}
	sc := card.StudyCard{ID: id, Card: c}
	s.studyCards[id] = sc
	s.rollup(now)
	return sc, nil
}

// DeleteCard removes a card, failing with CardNotFound if absent.
func (s *Set) DeleteCard(id valueobject.CardID, now time.Time) error {
	if _, ok := s.studyCards[id]; !ok {
		return &knerr.CardNotFoundError{CardID: id.String()}
	}
	delete(s.studyCards, id)
	s.rollup(now)
	return nil
}

// GetCard returns the study card for id, if present.
func (s *Set) GetCard(id valueobject.CardID) (card.StudyCard, bool) {
	sc, ok := s.studyCards[id]
	return sc, ok
}

// RateCard appends a review log and replaces the card's memory state,
// failing with CardNotFound if id is absent.
func (s *Set) RateCard(id valueobject.CardID, rating valueobject.Rating, interval time.Duration, next memory.State, reviewID valueobject.ReviewLogID, now time.Time) error {
	sc, ok := s.studyCards[id]
	if !ok {
		return &knerr.CardNotFoundError{CardID: id.String()}
	}
	sc.History = sc.History.AddReview(memory.ReviewLog{
		ID:       reviewID,
		Rating:   rating,
		At:       now,
		Interval: interval,
	}, next)
	s.studyCards[id] = sc
	s.rollup(now)
	return nil
}

// AddLessonDuration adds duration to the current day's total lesson time.
func (s *Set) AddLessonDuration(duration time.Duration, now time.Time) {
	s.ensureDay(now)
	s.currentItem().LessonDuration += duration
}

// CompleteLesson increments the current day's completed-lesson counter. It
// is the only operation that advances this counter: ordinary mutations
// (create/rate/delete) recompute the rest of the rollup but leave it alone.
func (s *Set) CompleteLesson(now time.Time) {
	s.ensureDay(now)
	s.currentItem().LessonsCompleted++
}

// CardsToLesson builds a lesson batch: all due cards, up to nNew new cards
// in insertion order, and a coin-flip shuffle of known cards, deduplicated
// by card id (first occurrence wins).
func (s *Set) CardsToLesson(lang valueobject.NativeLanguage, t japanese.Tokenizer, rnd xrand.Source, knownGrammars []grammar.Rule, nNew int, now time.Time) (map[valueobject.CardID]card.Card, error) {
	if nNew <= 0 {
		nNew = DefaultNewCardsPerLesson
	}

	out := make(map[valueobject.CardID]card.Card)

	for id, sc := range s.studyCards {
		if sc.History.IsDue(now) {
			out[id] = sc.Card
		}
	}

	newTaken := 0
	for _, id := range s.insertionOrder() {
		if newTaken >= nNew {
			break
		}
		sc := s.studyCards[id]
		if !sc.History.IsNew() {
			continue
		}
		if _, exists := out[id]; exists {
			continue
		}
		out[id] = sc.Card
		newTaken++
	}

	for _, id := range s.insertionOrder() {
		sc := s.studyCards[id]
		if !sc.History.IsKnownCard() {
			continue
		}
		if _, exists := out[id]; exists {
			continue
		}
		if rnd.Float64() >= 0.5 {
			continue
		}
		shuffled, err := card.ShuffleCard(sc, rnd, t, lang, knownGrammars)
		if err != nil {
			return nil, err
		}
		out[id] = shuffled
	}

	return out, nil
}

// CardsToFixation returns, in order and deduplicated by card id: all
// low-stability cards, then all high-difficulty cards, then all in-progress
// cards due within the next 24 hours.
func (s *Set) CardsToFixation(now time.Time) []card.Card {
	seen := make(map[valueobject.CardID]bool)
	var out []card.Card

	take := func(pred func(memory.History) bool) {
		for _, id := range s.insertionOrder() {
			if seen[id] {
				continue
			}
			sc := s.studyCards[id]
			if pred(sc.History) {
				out = append(out, sc.Card)
				seen[id] = true
			}
		}
	}

	take(func(h memory.History) bool { return h.IsLowStability() })
	take(func(h memory.History) bool { return h.IsHighDifficulty() })
	take(func(h memory.History) bool {
		if !h.IsInProgress() || h.Current == nil {
			return false
		}
		return !h.Current.NextReview.After(now.Add(24 * time.Hour))
	})

	return out
}

// insertionOrder is a stable card-id ordering for deterministic selection;
// it is not a meaningful "insertion order" since Go maps don't preserve one,
// but sorting by id (which is monotonic-time-prefixed) approximates it.
func (s *Set) insertionOrder() []valueobject.CardID {
	ids := make([]valueobject.CardID, 0, len(s.studyCards))
	for id := range s.studyCards {
		ids = append(ids, id)
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	return ids
}
