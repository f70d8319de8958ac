package service

import (
	"bitechoice/internal/domain"
)

const (
	// historyWindow is the number of most recent history entries whose
	// dishes are excluded from new suggestions.
	historyWindow = 20

	maxSuggestions = 10
)

// SuggestOptions are per-call overrides. A nil/empty field falls back to the
// user's stored preference; an explicit value wins over it.
type SuggestOptions struct {
	Halal    *bool
	MaxPrice *float64
	Cuisine  string
}

type SuggestionService struct {
	dishes  DishRepository
	history HistoryRepository
	prefs   PreferenceRepository
}

func NewSuggestionService(dishes DishRepository, history HistoryRepository, prefs PreferenceRepository) *SuggestionService {
	return &SuggestionService{dishes: dishes, history: history, prefs: prefs}
}

// Suggest returns up to 10 dishes matching the user's effective filters,
// never including a dish from the user's last 20 history entries. An empty
// result is not an error.
func (s *SuggestionService) Suggest(userID int, opts SuggestOptions) ([]domain.DishSummary, error) {
	prefs, err := s.prefs.FindPreferences(userID)
	if err != nil {
		return nil, err
	}

	recent, err := s.history.FindRecentHistory(userID, historyWindow)
	if err != nil {
		return nil, err
	}
	eaten := make(map[int]struct{}, len(recent))
	for _, entry := range recent {
		eaten[entry.DishID] = struct{}{}
	}

	filter := domain.DishFilter{Cuisine: opts.Cuisine}
	switch {
	case opts.Halal != nil:
		filter.Halal = opts.Halal
	case prefs != nil && prefs.Halal != nil:
		filter.Halal = prefs.Halal
	}
	switch {
	case opts.MaxPrice != nil:
		filter.MaxPrice = opts.MaxPrice
	case prefs != nil && prefs.BudgetMax != nil:
		maxPrice := float64(*prefs.BudgetMax)
		filter.MaxPrice = &maxPrice
	}

	dishes, err := s.dishes.FindDishes(filter)
	if err != nil {
		return nil, err
	}

	suggestions := make([]domain.DishSummary, 0, maxSuggestions)
	for _, dish := range dishes {
		if _, seen := eaten[dish.ID]; seen {
			continue
		}
		suggestions = append(suggestions, summarize(dish))
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	return suggestions, nil
}

func summarize(dish domain.Dish) domain.DishSummary {
	summary := domain.DishSummary{
		DishID: dish.ID,
		Name:   dish.Name,
		Price:  dish.Price,
		Halal:  dish.Halal,
	}
	if dish.Restaurant != nil {
		summary.Restaurant = &domain.RestaurantSummary{
			ID:      dish.Restaurant.ID,
			Name:    dish.Restaurant.Name,
			Cuisine: dish.Restaurant.CuisineType,
		}
	}
	return summary
}

var _ SuggestionServiceInterface = (*SuggestionService)(nil)
