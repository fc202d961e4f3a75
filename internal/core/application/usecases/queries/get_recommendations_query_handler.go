package queries

import (
	"context"

	"eats/internal/core/domain/services"
)

// GetRecommendationsQueryHandler resolves recommendation requests through the
// domain recommender service.
type GetRecommendationsQueryHandler struct {
	recommender *services.Recommender
}

// NewGetRecommendationsQueryHandler creates a handler over the given recommender.
func NewGetRecommendationsQueryHandler(recommender *services.Recommender) GetRecommendationsQueryHandler {
	return GetRecommendationsQueryHandler{recommender: recommender}
}

// Handle returns the catalog subset matching the query, in catalog order.
func (h GetRecommendationsQueryHandler) Handle(
	_ context.Context, query GetRecommendationsQuery,
) ([]GetRecommendationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.recommender.Recommendations(query.UserID(), query.Preferences(), query.Filters())
	if err != nil {
		return nil, err
	}

	response := make([]GetRecommendationsQueryResponse, len(items))
	for i, item := range items {
		response[i] = GetRecommendationsQueryResponse{
			Name:        item.Name(),
			Description: item.Description(),
			Price:       item.Price(),
			Category:    item.Category(),
			Image:       item.Image(),
		}
	}

	return response, nil
}
