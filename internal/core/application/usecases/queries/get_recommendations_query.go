package queries

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/menu"
	"eats/internal/pkg/guard"
)

var ErrGetRecommendationsQueryIsNotConstructed = errors.New(
	"GetRecommendationsQuery must be created via NewGetRecommendationsQuery constructor",
)

// GetRecommendationsQuery asks for menu items matching the diner's criteria.
type GetRecommendationsQuery struct { //nolint:recvcheck //using for validation
	userID      kernel.UUID
	preferences menu.Preferences
	filters     menu.Filters

	guard guard.ConstructorGuard
}

// NewGetRecommendationsQuery creates a recommendations query.
// The user id and filters must be properly constructed.
func NewGetRecommendationsQuery(
	userID kernel.UUID, preferences menu.Preferences, filters menu.Filters,
) (GetRecommendationsQuery, error) {
	query := GetRecommendationsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(userID.Validate(), filters.Validate()); err != nil {
		return GetRecommendationsQuery{}, err
	}

	query.userID = userID
	query.preferences = preferences
	query.filters = filters
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRecommendationsQuery) Validate() error {
	return q.guard.Validate(ErrGetRecommendationsQueryIsNotConstructed)
}

// UserID returns the requesting user's id.
func (q GetRecommendationsQuery) UserID() kernel.UUID {
	return q.userID
}

// Preferences returns the diner's taste criteria.
func (q GetRecommendationsQuery) Preferences() menu.Preferences {
	return q.preferences
}

// Filters returns the request bounds.
func (q GetRecommendationsQuery) Filters() menu.Filters {
	return q.filters
}

// GetRecommendationsQueryResponse is one recommended dish.
type GetRecommendationsQueryResponse struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Image       string
}
