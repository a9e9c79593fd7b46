package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"rentwatch/internal/domain"
	"rentwatch/internal/listing"
)

type QueryService struct {
	repo     domain.PropertyRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.PropertyRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

// ListProperties runs the filter/sort/paginate pipeline over a fresh snapshot
// of the collection. Pages are not cached: they are cheap to recompute and the
// cursor/filter key space is unbounded.
func (s *QueryService) ListProperties(ctx context.Context, cursor string, pageSize int, f domain.Filters) (domain.PropertyPage, error) {
	snapshot, err := s.repo.ListAll(ctx)
	if err != nil {
		return domain.PropertyPage{}, err
	}
	return listing.List(snapshot, cursor, pageSize, f)
}

func (s *QueryService) SearchProperties(ctx context.Context, query string) ([]domain.Property, error) {
	snapshot, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return listing.Search(snapshot, query), nil
}

func (s *QueryService) GetProperty(ctx context.Context, id string) (domain.Property, error) {
	key := fmt.Sprintf("property:%s", id)
	var p domain.Property
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &p); ok {
			return p, nil
		}
	}
	p, err := s.repo.GetProperty(ctx, id)
	if err != nil {
		return domain.Property{}, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, p, int(s.cacheTTL.Seconds()))
	}
	return p, nil
}

func (s *QueryService) ListReviews(ctx context.Context, propertyID string) ([]domain.Review, error) {
	key := fmt.Sprintf("reviews:%s", propertyID)
	var out []domain.Review
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &out); ok {
			return out, nil
		}
	}

	rs, err := s.repo.ListReviews(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	// copy before caching so callers mutating the result can't poison the cache
	copyRS := append([]domain.Review(nil), rs...)
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, copyRS, int(s.cacheTTL.Seconds()))
	}
	return copyRS, nil
}

func (s *QueryService) ListLandlords(ctx context.Context) ([]domain.Landlord, error) {
	return s.repo.ListLandlords(ctx)
}

// RiskAlerts returns every high-tier landlord and property, highest score
// first. The result is cached under a single key and invalidated on any
// property write.
func (s *QueryService) RiskAlerts(ctx context.Context) (domain.RiskAlerts, error) {
	const key = "alerts"
	var out domain.RiskAlerts
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &out); ok {
			return out, nil
		}
	}

	lls, err := s.repo.ListLandlords(ctx)
	if err != nil {
		return domain.RiskAlerts{}, err
	}
	props, err := s.repo.ListAll(ctx)
	if err != nil {
		return domain.RiskAlerts{}, err
	}

	out = domain.RiskAlerts{Landlords: []domain.Landlord{}, Properties: []domain.Property{}}
	for _, l := range lls {
		if l.RiskLevel == domain.RiskHigh {
			out.Landlords = append(out.Landlords, l)
		}
	}
	for _, p := range props {
		if p.RiskLevel == domain.RiskHigh {
			out.Properties = append(out.Properties, p)
		}
	}
	sort.SliceStable(out.Landlords, func(i, j int) bool { return out.Landlords[i].RiskScore > out.Landlords[j].RiskScore })
	sort.SliceStable(out.Properties, func(i, j int) bool { return out.Properties[i].RiskScore > out.Properties[j].RiskScore })

	if s.cache != nil {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}
