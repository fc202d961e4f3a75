package services

import (
	"sync"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/menu"
)

// Recommender is a domain service that filters the fixed menu catalog by the
// diner's criteria and records behavioral events along the way.
//
// Business rules:
//   - Recommendations keep the catalog's original, stable order
//   - Only the price ceiling is applied against the catalog; the distance and
//     time criteria are accepted but not applied to the fixed catalog
//   - The event log is append-only: prior events are never mutated or removed
//
// Example usage:
//
//	recommender := services.NewRecommender(menu.DefaultCatalog())
//	prefs := menu.NewPreferences("Mediterranean", "Lunch")
//	filters, _ := menu.NewFilters(6.0, 5.0, 60)
//
//	items, err := recommender.Recommendations(userID, prefs, filters)
type Recommender struct {
	catalog []menu.Item

	mu     sync.RWMutex
	events []UserEvent
}

// NewRecommender creates a Recommender over the given catalog.
func NewRecommender(catalog []menu.Item) *Recommender {
	r := &Recommender{
		catalog: make([]menu.Item, len(catalog)),
	}
	copy(r.catalog, catalog)
	return r
}

// Record appends the event to the behavioral event log.
func (r *Recommender) Record(e UserEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, e)
}

// AnalyzeBehavior records a login event for the given user.
func (r *Recommender) AnalyzeBehavior(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	r.Record(NewUserEvent(EventLogin))
	return nil
}

// Recommendations returns the catalog items whose price does not exceed the
// price ceiling, in original catalog order. The distance and time filters are
// accepted but not applied against the fixed catalog.
func (r *Recommender) Recommendations(
	_ kernel.UUID, _ menu.Preferences, filters menu.Filters,
) ([]menu.Item, error) {
	if err := filters.Validate(); err != nil {
		return nil, err
	}

	matches := make([]menu.Item, 0, len(r.catalog))
	for _, item := range r.catalog {
		if item.Price() <= filters.MaxPrice() {
			matches = append(matches, item)
		}
	}

	return matches, nil
}

// Events returns a copy of the recorded events in insertion order.
func (r *Recommender) Events() []UserEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]UserEvent, len(r.events))
	copy(events, r.events)
	return events
}
