// Package recommend maps a wellness snapshot to a support resource.
package recommend

import (
	"fmt"
	"sync"

	apperrors "github.com/julianstephens/wellday/internal/errors"
	"github.com/julianstephens/wellday/internal/models"
)

// Selector resolves snapshots against a validated catalog. It is immutable
// after construction and safe for concurrent use. Resources are copied on the
// way in and out, so callers may modify what they receive.
type Selector struct {
	catalog []models.SupportResource
	byID    map[string]models.SupportResource
}

// NewSelector validates that the catalog holds exactly one resource for every outcome.
func NewSelector(catalog []models.SupportResource) (*Selector, error) {
	owned := make([]models.SupportResource, len(catalog))
	byID := make(map[string]models.SupportResource, len(catalog))
	for i, r := range catalog {
		if _, dup := byID[r.ID]; dup {
			return nil, fmt.Errorf("duplicate resource %q: %w", r.ID, apperrors.ErrMissingResource)
		}
		owned[i] = r.Clone()
		byID[r.ID] = owned[i]
	}
	for _, id := range Outcomes {
		if _, ok := byID[id]; !ok {
			return nil, fmt.Errorf("no resource for outcome %q: %w", id, apperrors.ErrMissingResource)
		}
	}

	return &Selector{
		catalog: owned,
		byID:    byID,
	}, nil
}

var defaultSelector = sync.OnceValue(func() *Selector {
	s, err := NewSelector(DefaultCatalog())
	if err != nil {
		panic(fmt.Sprintf("built-in support catalog is misconfigured: %v", err))
	}
	return s
})

// DefaultSelector returns a selector over the built-in catalog.
func DefaultSelector() *Selector {
	return defaultSelector()
}

// Outcome applies the rule order to a snapshot. The first matching rule wins:
// high stress, then low mood, low energy, poor sleep, and finally excellent day.
func Outcome(s models.Snapshot) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	switch {
	case s.Stress >= 4:
		return HighStress, nil
	case s.Mood <= 2:
		return LowMood, nil
	case s.Energy <= 2:
		return LowEnergy, nil
	case s.Sleep <= 2:
		return PoorSleep, nil
	default:
		return ExcellentDay, nil
	}
}

// Select returns the resource for the snapshot's outcome.
func (s *Selector) Select(snap models.Snapshot) (models.SupportResource, error) {
	id, err := Outcome(snap)
	if err != nil {
		return models.SupportResource{}, err
	}
	return s.byID[id].Clone(), nil
}

// Catalog returns the resources in catalog order.
func (s *Selector) Catalog() []models.SupportResource {
	out := make([]models.SupportResource, len(s.catalog))
	for i, r := range s.catalog {
		out[i] = r.Clone()
	}
	return out
}

// Resource looks up a resource by ID.
func (s *Selector) Resource(id string) (models.SupportResource, bool) {
	r, ok := s.byID[id]
	return r.Clone(), ok
}

// Activity looks up an activity by ID along with the resource that owns it.
func (s *Selector) Activity(id string) (models.Activity, models.SupportResource, bool) {
	for _, r := range s.catalog {
		for _, a := range r.Activities {
			if a.ID == id {
				return a.Clone(), r.Clone(), true
			}
		}
	}
	return models.Activity{}, models.SupportResource{}, false
}
