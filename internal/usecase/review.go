package usecase

import (
	"context"
	"time"

	"github.com/yurvon-screamo/origa-sub001/internal/knerr"
	"github.com/yurvon-screamo/origa-sub001/internal/scheduler"
	"github.com/yurvon-screamo/origa-sub001/internal/valueobject"
)

// RateCard scores a review for cardID under mode, asks the scheduler for the
// next interval and memory state, and persists both the rating and the
// resulting state.
func (s *Service) RateCard(ctx context.Context, userID valueobject.UserID, cardID valueobject.CardID, mode scheduler.Mode, rating valueobject.Rating) error {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}

	sc, ok := u.Knowledge.GetCard(cardID)
	if !ok {
		return &knerr.CardNotFoundError{CardID: cardID.String()}
	}

	now := s.now()
	result, err := s.Scheduler.Rate(mode, rating, sc.History, now)
	if err != nil {
		return err
	}

	reviewID := valueobject.ReviewLogID(s.IDs.New(now))
	if err := u.RateCard(cardID, rating, result.Interval, result.State, reviewID, now); err != nil {
		return err
	}

	return s.Users.Save(ctx, u)
}

// CompleteLesson records the lesson's duration and increments the day's
// completed-lesson count. This is the only operation that advances that
// counter.
func (s *Service) CompleteLesson(ctx context.Context, userID valueobject.UserID, duration time.Duration) error {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}

	now := s.now()
	u.Knowledge.AddLessonDuration(duration, now)
	u.Knowledge.CompleteLesson(now)

	return s.Users.Save(ctx, u)
}
