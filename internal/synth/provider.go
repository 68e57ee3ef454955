// Package synth supplies seeded pseudo-random field values for dataset
// generation. A Provider is owned by the caller: build one with a seed, pass
// it through the generation pipeline, and the whole run is reproducible.
// The value pools are compiled into the binary, so two builds of the same
// revision draw from the same corpus.
package synth

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Provider struct {
	rand *rand.Rand
	now  time.Time
}

// New returns a Provider whose stream is fully determined by seed. Dates are
// sampled relative to the current day.
func New(seed int64) *Provider {
	return NewAt(seed, time.Now())
}

// NewAt pins the reference day for date sampling. Used where a run must stay
// byte-for-byte stable across a day boundary.
func NewAt(seed int64, now time.Time) *Provider {
	return &Provider{
		rand: rand.New(rand.NewSource(seed)),
		now:  now,
	}
}

func (p *Provider) FullName() string {
	return p.Pick(firstNames) + " " + p.Pick(lastNames)
}

func (p *Provider) Email() string {
	user := strings.ToLower(p.Pick(firstNames))
	return fmt.Sprintf("%s%d@%s", user, p.rand.Intn(1000), p.Pick(emailDomains))
}

func (p *Provider) City() string {
	return p.Pick(cities)
}

// Word returns a single capitalized word, suitable for product names.
func (p *Provider) Word() string {
	w := p.Pick(productWords)
	return strings.ToUpper(w[:1]) + w[1:]
}

// DateWithin samples a day uniformly in [today-window, today], truncated to
// midnight UTC.
func (p *Provider) DateWithin(window int) time.Time {
	d := p.now.AddDate(0, 0, -p.rand.Intn(window+1))
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// Money draws a uniform amount in [lo, hi] rounded to two decimals.
func (p *Provider) Money(lo, hi float64) decimal.Decimal {
	v := lo + p.rand.Float64()*(hi-lo)
	return decimal.NewFromFloat(v).Round(2)
}

// IntBetween draws a uniform integer in [lo, hi] inclusive.
func (p *Provider) IntBetween(lo, hi int) int {
	return lo + p.rand.Intn(hi-lo+1)
}

// Pick returns a uniform element of set, with replacement.
func (p *Provider) Pick(set []string) string {
	return set[p.rand.Intn(len(set))]
}
