// Package memory is an in-process PropertyRepository: an insertion-ordered
// collection guarded by a mutex. It backs tests and the default (ephemeral)
// store driver; nothing survives a restart.
package memory

import (
	"context"
	"sync"

	"rentwatch/internal/domain"
)

type Store struct {
	mu         sync.RWMutex
	properties []domain.Property
	reviews    []domain.Review
	landlords  []domain.Landlord
}

func New() *Store { return &Store{} }

func (s *Store) SaveProperty(ctx context.Context, p domain.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.properties {
		if existing.ID == p.ID {
			return domain.ErrInvalidArgument
		}
	}
	s.properties = append(s.properties, p)
	return nil
}

func (s *Store) UpdateProperty(ctx context.Context, p domain.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.properties {
		if existing.ID == p.ID {
			s.properties[i] = p
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *Store) DeleteProperty(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.properties {
		if existing.ID == id {
			s.properties = append(s.properties[:i], s.properties[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *Store) SaveReview(ctx context.Context, r domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = append(s.reviews, r)
	return nil
}

func (s *Store) UpdateReview(ctx context.Context, r domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.reviews {
		if existing.ID == r.ID {
			s.reviews[i] = r
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *Store) SaveLandlord(ctx context.Context, l domain.Landlord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.landlords {
		if existing.ID == l.ID {
			s.landlords[i] = l
			return nil
		}
	}
	s.landlords = append(s.landlords, l)
	return nil
}

// ListAll returns a copy of the collection in insertion order.
func (s *Store) ListAll(ctx context.Context) ([]domain.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Property(nil), s.properties...), nil
}

func (s *Store) GetProperty(ctx context.Context, id string) (domain.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.properties {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Property{}, domain.ErrNotFound
}

func (s *Store) ListReviews(ctx context.Context, propertyID string) ([]domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Review{}
	for _, r := range s.reviews {
		if r.PropertyID == propertyID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) GetReview(ctx context.Context, id string) (domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.reviews {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Review{}, domain.ErrNotFound
}

func (s *Store) ListLandlords(ctx context.Context) ([]domain.Landlord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Landlord(nil), s.landlords...), nil
}

func (s *Store) GetLandlord(ctx context.Context, id string) (domain.Landlord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.landlords {
		if l.ID == id {
			return l, nil
		}
	}
	return domain.Landlord{}, domain.ErrNotFound
}
