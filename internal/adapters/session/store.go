// Package session is the browser-session stand-in: an opaque token pointing
// at a user blob in the cache, gone when the TTL runs out. It does no
// credential verification at all; auth correctness is out of scope.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rentwatch/internal/adapters/observability"
	"rentwatch/internal/domain"
)

type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"` // tenant|landlord|admin
}

type Store struct {
	cache domain.Cache
	ttl   time.Duration
}

func NewStore(c domain.Cache, ttl time.Duration) *Store {
	return &Store{cache: c, ttl: ttl}
}

// Create stores the user under a fresh token and returns the token.
func (s *Store) Create(ctx context.Context, u User) (string, error) {
	if u.ID == "" {
		u.ID = "user-" + uuid.NewString()
	}
	token := uuid.NewString()
	if err := s.cache.Set(ctx, "session:"+token, u, int(s.ttl.Seconds())); err != nil {
		return "", err
	}
	observability.ObserveSession("create")
	return token, nil
}

func (s *Store) Lookup(ctx context.Context, token string) (User, bool, error) {
	if token == "" {
		observability.ObserveSession("miss")
		return User{}, false, nil
	}
	var u User
	ok, err := s.cache.Get(ctx, "session:"+token, &u)
	if err != nil {
		return User{}, false, err
	}
	if ok {
		observability.ObserveSession("hit")
	} else {
		observability.ObserveSession("miss")
	}
	return u, ok, nil
}

func (s *Store) Destroy(ctx context.Context, token string) error {
	observability.ObserveSession("destroy")
	return s.cache.Del(ctx, "session:"+token)
}
