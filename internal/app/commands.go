package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"rentwatch/internal/domain"
	"rentwatch/internal/risk"
)

// CommandService owns every mutation of the property collection. Create and
// update flows derive the risk score and factor list from the submitted risk
// level through one shared classifier, so admin and tenant submissions can no
// longer disagree about what a tier is worth.
type CommandService struct {
	repo       domain.PropertyRepository
	cache      domain.Cache
	classifier *risk.Classifier
	now        func() time.Time
}

func NewCommandService(r domain.PropertyRepository, c domain.Cache, cls *risk.Classifier) *CommandService {
	return &CommandService{repo: r, cache: c, classifier: cls, now: time.Now}
}

func validateProperty(p domain.Property) error {
	switch {
	case strings.TrimSpace(p.Title) == "":
		return fmt.Errorf("%w: title is required", domain.ErrInvalidArgument)
	case strings.TrimSpace(p.Address) == "":
		return fmt.Errorf("%w: address is required", domain.ErrInvalidArgument)
	case p.Price <= 0:
		return fmt.Errorf("%w: price must be positive", domain.ErrInvalidArgument)
	case p.Size <= 0:
		return fmt.Errorf("%w: size must be positive", domain.ErrInvalidArgument)
	case p.Rooms <= 0:
		return fmt.Errorf("%w: rooms must be positive", domain.ErrInvalidArgument)
	case p.Bathrooms <= 0:
		return fmt.Errorf("%w: bathrooms must be positive", domain.ErrInvalidArgument)
	}
	return nil
}

// assess fills the risk fields from the property's level. Caller-supplied
// factors survive (free-text override at creation time); the score never
// does — it always comes from the classifier so it stays in the tier's band.
func (s *CommandService) assess(p *domain.Property) error {
	if p.RiskLevel == "" {
		p.RiskScore = 0
		p.RiskFactors = nil
		return nil
	}
	a, err := s.classifier.Classify(p.RiskLevel)
	if err != nil {
		return err
	}
	p.RiskScore = a.Score
	if len(p.RiskFactors) == 0 {
		p.RiskFactors = a.Factors
	}
	return nil
}

func (s *CommandService) AddProperty(ctx context.Context, p domain.Property) (domain.Property, error) {
	if err := validateProperty(p); err != nil {
		return domain.Property{}, err
	}

	ll, err := s.repo.GetLandlord(ctx, p.LandlordID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Property{}, fmt.Errorf("%w: %q", domain.ErrLandlordMissing, p.LandlordID)
		}
		return domain.Property{}, err
	}
	p.LandlordName = ll.Name // denormalized display name, refreshed on every write

	if err := s.assess(&p); err != nil {
		return domain.Property{}, err
	}

	p.ID = "property-" + uuid.NewString()
	p.CreatedAt = s.now()
	p.UpdatedAt = p.CreatedAt
	if p.Images == nil {
		p.Images = []string{}
	}
	if err := s.repo.SaveProperty(ctx, p); err != nil {
		return domain.Property{}, err
	}
	s.invalidateProperty(ctx, p.ID)
	return p, nil
}

// UpdateProperty replaces the full record; there are no partial-merge
// semantics beyond what the caller supplies. CreatedAt is preserved.
func (s *CommandService) UpdateProperty(ctx context.Context, id string, p domain.Property) (domain.Property, error) {
	existing, err := s.repo.GetProperty(ctx, id)
	if err != nil {
		return domain.Property{}, err
	}
	if err := validateProperty(p); err != nil {
		return domain.Property{}, err
	}

	ll, err := s.repo.GetLandlord(ctx, p.LandlordID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Property{}, fmt.Errorf("%w: %q", domain.ErrLandlordMissing, p.LandlordID)
		}
		return domain.Property{}, err
	}
	p.LandlordName = ll.Name

	if err := s.assess(&p); err != nil {
		return domain.Property{}, err
	}

	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = s.now()
	if p.Images == nil {
		p.Images = existing.Images
	}
	if err := s.repo.UpdateProperty(ctx, p); err != nil {
		return domain.Property{}, err
	}
	s.invalidateProperty(ctx, p.ID)
	return p, nil
}

// DeleteProperty removes the record by id. Reviews are left in place: there
// is no soft delete and no cascade.
func (s *CommandService) DeleteProperty(ctx context.Context, id string) error {
	if err := s.repo.DeleteProperty(ctx, id); err != nil {
		return err
	}
	s.invalidateProperty(ctx, id)
	return nil
}

func (s *CommandService) AddReview(ctx context.Context, r domain.Review) (domain.Review, error) {
	if r.Rating < 1 || r.Rating > 5 {
		return domain.Review{}, fmt.Errorf("%w: rating must be 1..5, got %d", domain.ErrInvalidArgument, r.Rating)
	}
	if _, err := s.repo.GetProperty(ctx, r.PropertyID); err != nil {
		return domain.Review{}, err
	}

	r.ID = "review-" + uuid.NewString()
	r.CreatedAt = s.now()
	r.UpdatedAt = r.CreatedAt
	r.Helpful = 0
	r.Reported = false
	if r.Images == nil {
		r.Images = []string{}
	}
	if err := s.repo.SaveReview(ctx, r); err != nil {
		return domain.Review{}, err
	}
	s.invalidateReviews(ctx, r.PropertyID)
	return r, nil
}

func (s *CommandService) MarkReviewHelpful(ctx context.Context, reviewID string) (domain.Review, error) {
	r, err := s.repo.GetReview(ctx, reviewID)
	if err != nil {
		return domain.Review{}, err
	}
	r.Helpful++
	r.UpdatedAt = s.now()
	if err := s.repo.UpdateReview(ctx, r); err != nil {
		return domain.Review{}, err
	}
	s.invalidateReviews(ctx, r.PropertyID)
	return r, nil
}

func (s *CommandService) ReportReview(ctx context.Context, reviewID string) (domain.Review, error) {
	r, err := s.repo.GetReview(ctx, reviewID)
	if err != nil {
		return domain.Review{}, err
	}
	r.Reported = true
	r.UpdatedAt = s.now()
	if err := s.repo.UpdateReview(ctx, r); err != nil {
		return domain.Review{}, err
	}
	s.invalidateReviews(ctx, r.PropertyID)
	return r, nil
}

// cache invalidation

func (s *CommandService) invalidateProperty(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, fmt.Sprintf("property:%s", id))
	_ = s.cache.Del(ctx, "alerts")
}

func (s *CommandService) invalidateReviews(ctx context.Context, propertyID string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, fmt.Sprintf("reviews:%s", propertyID))
}
