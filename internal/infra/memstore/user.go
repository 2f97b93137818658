package memstore

import (
	"context"
	"strings"
	"sync"

	"loyalty-ledger/internal/domain/user"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/usecase/queries"
)

// UserStore owns the user directory. All mutation goes through the store
// lock: the register uniqueness check is a check-then-act sequence that
// must not interleave with a concurrent register of the same identity.
type UserStore struct {
	mu         sync.RWMutex
	users      []*user.User
	byUsername map[string]*user.User
	byEmail    map[string]*user.User // keyed by folded email
}

func NewUserStore() *UserStore {
	return &UserStore{
		byUsername: make(map[string]*user.User),
		byEmail:    make(map[string]*user.User),
	}
}

func (s *UserStore) Create(_ context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byUsername[u.Username().Value()]; ok {
		return infra.WrapRepoErr("username already registered", nil, infra.KindDuplicateKey)
	}
	if _, ok := s.byEmail[u.Email().Fold()]; ok {
		return infra.WrapRepoErr("email already registered", nil, infra.KindDuplicateKey)
	}

	s.users = append(s.users, u)
	s.byUsername[u.Username().Value()] = u
	s.byEmail[u.Email().Fold()] = u
	return nil
}

func (s *UserStore) UpdatePoints(_ context.Context, identifier string, points int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.lookup(identifier)
	if u == nil {
		return false, nil
	}
	u.SetPoints(points)
	return true, nil
}

func (s *UserStore) AddPoints(_ context.Context, identifier string, delta int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.lookup(identifier)
	if u == nil {
		return false, nil
	}
	u.AddPoints(delta)
	return true, nil
}

func (s *UserStore) FindByIdentifier(_ context.Context, identifier string) (*queries.UserView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u := s.lookup(identifier)
	if u == nil {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return toUserView(u), nil
}

func (s *UserStore) List(_ context.Context) ([]*queries.UserView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := make([]*queries.UserView, 0, len(s.users))
	for _, u := range s.users {
		views = append(views, toUserView(u))
	}
	return views, nil
}

// Restore replaces the directory contents, used when loading a snapshot
// at startup. The store takes ownership of the entities.
func (s *UserStore) Restore(users []*user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = nil
	s.byUsername = make(map[string]*user.User, len(users))
	s.byEmail = make(map[string]*user.User, len(users))
	for _, u := range users {
		s.users = append(s.users, u)
		s.byUsername[u.Username().Value()] = u
		s.byEmail[u.Email().Fold()] = u
	}
}

// Snapshot returns detached copies of every record for persistence.
func (s *UserStore) Snapshot() []*user.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*user.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, user.ReconstructUser(
			u.ID(),
			u.Username().Value(),
			u.Email().Value(),
			u.PasswordHash(),
			u.Points(),
		))
	}
	return out
}

// lookup requires at least a read lock held by the caller. Username
// matches exactly, email through the folded index.
func (s *UserStore) lookup(identifier string) *user.User {
	if u, ok := s.byUsername[identifier]; ok {
		return u
	}
	if u, ok := s.byEmail[strings.ToLower(identifier)]; ok {
		return u
	}
	return nil
}

func toUserView(u *user.User) *queries.UserView {
	return &queries.UserView{
		ID:       u.ID(),
		Username: u.Username().Value(),
		Email:    u.Email().Value(),
		Points:   u.Points(),
	}
}
