// Package memory is the reference UserRepository implementation: an
// in-memory store used for tests and local wiring. It round-trips every
// user through the same JSON encoding a durable repository would use, so
// serialisation regressions are caught even though nothing here touches a
// disk or network.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/yurvon-screamo/origa-sub001/internal/external"
	"github.com/yurvon-screamo/origa-sub001/internal/knerr"
	"github.com/yurvon-screamo/origa-sub001/internal/user"
	"github.com/yurvon-screamo/origa-sub001/internal/valueobject"
)

// Repository is the in-memory, JSON-round-tripping reference repository.
type Repository struct {
	mu    sync.Mutex
	users map[valueobject.UserID][]byte
}

// New returns an empty Repository.
func New() *Repository {
	return &Repository{users: make(map[valueobject.UserID][]byte)}
}

var _ external.UserRepository = (*Repository)(nil)

func (r *Repository) List(ctx context.Context) ([]*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*user.User, 0, len(r.users))
	for _, raw := range r.users {
		u, err := decode(raw)
		if err != nil {
			return nil, &knerr.RepositoryError{Op: "List", Err: err}
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *Repository) FindByID(ctx context.Context, id valueobject.UserID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	u, err := decode(raw)
	if err != nil {
		return nil, &knerr.RepositoryError{Op: "FindByID", Err: err}
	}
	return u, nil
}

// FindByTelegramID is unsupported by the reference repository: it has no
// secondary index and is not meant to scale beyond tests.
func (r *Repository) FindByTelegramID(ctx context.Context, telegramID string) (*user.User, error) {
	return nil, &knerr.RepositoryError{Op: "FindByTelegramID", Err: knerr.ErrUnsupported}
}

func (r *Repository) Save(ctx context.Context, u *user.User) error {
	raw, err := encode(u)
	if err != nil {
		return &knerr.RepositoryError{Op: "Save", Err: err}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = raw
	return nil
}

func (r *Repository) Delete(ctx context.Context, id valueobject.UserID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return &knerr.UserNotFoundError{UserID: id.String()}
	}
	delete(r.users, id)
	return nil
}

func encode(u *user.User) ([]byte, error) {
	dto := toDTO(u)
	return json.Marshal(dto)
}

func decode(raw []byte) (*user.User, error) {
	var dto userDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain()
}
