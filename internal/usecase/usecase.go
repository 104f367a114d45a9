// Package usecase is the application layer: the catalogue of operations a
// delivery surface (HTTP handler, CLI command, bot command) calls into. Every
// method loads the user aggregate through the injected repository, mutates
// it, and saves it back — none of them touch storage directly.
package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/yurvon-screamo/origa-sub001/internal/clock"
	"github.com/yurvon-screamo/origa-sub001/internal/external"
	"github.com/yurvon-screamo/origa-sub001/internal/idgen"
	"github.com/yurvon-screamo/origa-sub001/internal/japanese"
	"github.com/yurvon-screamo/origa-sub001/internal/knerr"
	"github.com/yurvon-screamo/origa-sub001/internal/scheduler"
	"github.com/yurvon-screamo/origa-sub001/internal/user"
	"github.com/yurvon-screamo/origa-sub001/internal/valueobject"
	"github.com/yurvon-screamo/origa-sub001/internal/xrand"
)

// Service bundles every collaborator the use-case catalogue needs. A single
// Service is meant to be constructed once per process and handed to whatever
// delivery surface drives it.
type Service struct {
	Users      external.UserRepository
	Generator  external.TextGenerator
	Migii      external.MigiiClient
	Duolingo   external.DuolingoClient
	Tokenizer  japanese.Tokenizer
	Scheduler  *scheduler.Adapter
	IDs        *idgen.Generator
	Rand       xrand.Source
	Clock      clock.Clock
	Logger     *zap.Logger
	NewPerLesson int
}

// New builds a Service from its collaborators. The scheduler, ID generator,
// random source, and clock are always set to their production
// implementations; tests replace the exported fields afterwards. A nil
// logger becomes a no-op logger.
func New(users external.UserRepository, generator external.TextGenerator, migii external.MigiiClient, duolingo external.DuolingoClient, tokenizer japanese.Tokenizer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		Users:     users,
		Generator: generator,
		Migii:     migii,
		Duolingo:  duolingo,
		Tokenizer: tokenizer,
		Scheduler: scheduler.New(),
		IDs:       idgen.New(),
		Rand:      xrand.System{},
		Clock:     clock.System{},
		Logger:    logger,
	}
}

func (s *Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now()
}

// findUser loads a user or fails with UserNotFoundError, the same shape every
// use case needs before it can do anything else.
func (s *Service) findUser(ctx context.Context, userID valueobject.UserID) (*user.User, error) {
	u, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, &knerr.UserNotFoundError{UserID: userID.String()}
	}
	return u, nil
}
