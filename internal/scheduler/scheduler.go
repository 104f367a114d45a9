// Package scheduler adapts the domain's review history to a third-party
// FSRS implementation: it is a thin, stateless bridge with no persistent
// state of its own.
package scheduler

import (
	"time"

	"github.com/open-spaced-repetition/go-fsrs/v3"

	"github.com/yurvon-screamo/origa-sub001/internal/knerr"
	"github.com/yurvon-screamo/origa-sub001/internal/memory"
	"github.com/yurvon-screamo/origa-sub001/internal/valueobject"
)

// Mode selects which parameter set a rating is scheduled under.
type Mode int

const (
	// StandardLesson uses the library's long-term retention defaults, with
	// fuzz and short-term scheduling enabled.
	StandardLesson Mode = iota
	// FixationLesson caps the maximum interval at one day and disables
	// fuzz, suitable for within-session repeat-until-correct drilling.
	FixationLesson
)

// NewParameters builds the fsrs.Parameters for mode, so the two modes are
// explicit configuration rather than branches scattered through scheduling
// code.
func NewParameters(mode Mode) fsrs.Parameters {
	p := fsrs.DefaultParam()
	switch mode {
	case StandardLesson:
		p.EnableFuzz = true
		p.EnableShortTerm = true
	case FixationLesson:
		p.MaximumInterval = 1
		p.EnableFuzz = false
		p.EnableShortTerm = false
	}
	return p
}

// Result is what a rating produces: the interval until the next review, and
// the replacement memory state.
type Result struct {
	Interval time.Duration
	State    memory.State
}

// Adapter schedules ratings through two independently configured FSRS
// instances, one per Mode.
type Adapter struct {
	standard  fsrs.FSRS
	fixation  fsrs.FSRS
}

// New constructs an Adapter with both parameter sets built up front.
func New() *Adapter {
	return &Adapter{
		standard: fsrs.NewFSRS(NewParameters(StandardLesson)),
		fixation: fsrs.NewFSRS(NewParameters(FixationLesson)),
	}
}

var ratingToFsrs = map[valueobject.Rating]fsrs.Rating{
	valueobject.Again: fsrs.Again,
	valueobject.Hard:  fsrs.Hard,
	valueobject.Good:  fsrs.Good,
	valueobject.Easy:  fsrs.Easy,
}

// Rate schedules rating against history under mode, at now, returning the
// interval to the next review and the replacement memory state.
func (a *Adapter) Rate(mode Mode, rating valueobject.Rating, history memory.History, now time.Time) (Result, error) {
	fsrsRating, ok := ratingToFsrs[rating]
	if !ok {
		return Result{}, &knerr.InvalidValueError{Field: "Rating", Reason: "unrecognised rating"}
	}

	virtual := buildVirtualCard(history, now)

	engine := a.standard
	if mode == FixationLesson {
		engine = a.fixation
	}

	schedulingCards := engine.Repeat(virtual, now)
	info, ok := schedulingCards[fsrsRating]
	if !ok {
		return Result{}, &knerr.SrsCalculationFailedError{Reason: "scheduler did not return an outcome for the rating"}
	}
	outcome := info.Card

	interval := outcome.Due.Sub(now)
	if interval < 0 || rating == valueobject.Again {
		interval = 0
	}

	stability, err := valueobject.NewStability(outcome.Stability)
	if err != nil {
		return Result{}, err
	}
	difficulty, err := valueobject.NewDifficulty(outcome.Difficulty)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Interval: interval,
		State: memory.State{
			Stability:  stability,
			Difficulty: difficulty,
			NextReview: outcome.Due,
		},
	}, nil
}

func buildVirtualCard(history memory.History, now time.Time) fsrs.Card {
	if history.IsNew() {
		return fsrs.NewCard()
	}

	lastReview := now
	if n := len(history.Reviews); n > 0 {
		lastReview = history.Reviews[n-1].At
	}

	elapsedDays := daysBetween(lastReview, now)
	scheduledDays := daysBetween(lastReview, history.Current.NextReview)

	var lapses uint64
	for _, r := range history.Reviews {
		if r.Rating == valueobject.Again {
			lapses++
		}
	}

	return fsrs.Card{
		Due:           history.Current.NextReview,
		Stability:     history.Current.Stability.Value(),
		Difficulty:    history.Current.Difficulty.Value(),
		ElapsedDays:   elapsedDays,
		ScheduledDays: scheduledDays,
		Reps:          uint64(len(history.Reviews)),
		Lapses:        lapses,
		State:         fsrs.Review,
		LastReview:    lastReview,
	}
}

func daysBetween(from, to time.Time) uint64 {
	d := to.Sub(from)
	if d <= 0 {
		return 0
	}
	return uint64(d.Hours() / 24)
}
