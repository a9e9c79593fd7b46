// Package risk derives a displayable risk score and factor list from a
// coarse risk tier.
package risk

import (
	"fmt"
	"math/rand"

	"rentwatch/internal/domain"
)

type Assessment struct {
	Score   int      `json:"score"`
	Factors []string `json:"factors"`
}

// band is the closed-open score range a tier's score must fall in, plus the
// deterministic value the fixed policy picks from inside it.
type band struct {
	lo, hi int
	fixed  int
}

var bands = map[domain.RiskLevel]band{
	domain.RiskHigh:   {lo: 75, hi: 100, fixed: 85},
	domain.RiskMedium: {lo: 40, hi: 75, fixed: 60},
	domain.RiskLow:    {lo: 0, hi: 30, fixed: 25},
}

var factors = map[domain.RiskLevel][]string{
	domain.RiskHigh:   {"structural safety concerns", "repeated flooding incidents", "history of rent disputes"},
	domain.RiskMedium: {"aging plumbing and noise complaints"},
	domain.RiskLow:    {"no notable risk"},
}

// Classifier maps a risk level to a score and canonical factor set. The
// default policy returns the fixed in-band value for each tier; WithBandedDraws
// switches to drawing uniformly from the tier's band instead.
type Classifier struct {
	rng *rand.Rand
}

type Option func(*Classifier)

func WithBandedDraws(src rand.Source) Option {
	return func(c *Classifier) { c.rng = rand.New(src) }
}

func New(opts ...Option) *Classifier {
	c := &Classifier{}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Classifier) Classify(level domain.RiskLevel) (Assessment, error) {
	if !level.Valid() {
		return Assessment{}, fmt.Errorf("%w: unknown risk level %q", domain.ErrInvalidArgument, level)
	}
	b := bands[level]
	score := b.fixed
	if c.rng != nil {
		score = b.lo + c.rng.Intn(b.hi-b.lo)
	}
	return Assessment{
		Score:   score,
		Factors: append([]string(nil), factors[level]...),
	}, nil
}

// InBand reports whether score lies inside level's documented range.
func InBand(level domain.RiskLevel, score int) bool {
	b, ok := bands[level]
	return ok && score >= b.lo && score < b.hi
}
