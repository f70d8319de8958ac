package service

import (
	"errors"
	"strings"

	"bitechoice/internal/domain"
)

var (
	ErrMissingQuery      = errors.New("query is required")
	ErrInvalidSearchType = errors.New("type must be all, dish, or restaurant")
)

const (
	searchDefaultLimit = 10
	searchMaxLimit     = 100
)

// SearchOptions narrow a unified search. Type defaults to "all"; Halal nil
// means both halal and non-halal results.
type SearchOptions struct {
	Type  string
	Page  int
	Limit int
	Halal *bool
}

type SearchService struct {
	repository SearchRepository
}

func NewSearchService(repository SearchRepository) *SearchService {
	return &SearchService{repository: repository}
}

// Search runs the query against dishes, restaurants, or both and returns a
// single paged envelope. Total counts matches across both branches; for
// type "all" the dish items come first, each branch already ordered by name.
func (s *SearchService) Search(query string, opts SearchOptions) (*domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrMissingQuery
	}

	kind := opts.Type
	if kind == "" {
		kind = "all"
	}
	if kind != "all" && kind != "dish" && kind != "restaurant" {
		return nil, ErrInvalidSearchType
	}

	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := opts.Limit
	if limit < 1 {
		limit = searchDefaultLimit
	}
	if limit > searchMaxLimit {
		limit = searchMaxLimit
	}
	offset := (page - 1) * limit

	result := &domain.SearchResult{
		Query: query,
		Type:  kind,
		Page:  page,
		Limit: limit,
		Items: []interface{}{},
	}

	if kind == "all" || kind == "dish" {
		dishes, total, err := s.repository.SearchDishesPaged(query, opts.Halal, limit, offset)
		if err != nil {
			return nil, err
		}
		result.Total += total
		for i := range dishes {
			result.Items = append(result.Items, dishSearchItem(&dishes[i]))
		}
	}

	if kind == "all" || kind == "restaurant" {
		restaurants, total, err := s.repository.SearchRestaurantsPaged(query, opts.Halal, limit, offset)
		if err != nil {
			return nil, err
		}
		result.Total += total
		for i := range restaurants {
			result.Items = append(result.Items, restaurantSearchItem(&restaurants[i]))
		}
	}

	return result, nil
}

func dishSearchItem(dish *domain.Dish) domain.DishSearchItem {
	item := domain.DishSearchItem{
		Kind:        "dish",
		DishID:      dish.ID,
		Name:        dish.Name,
		Description: dish.Description,
		Price:       dish.Price,
		Halal:       dish.Halal,
	}
	if dish.Restaurant != nil {
		item.Restaurant = &domain.SearchRestaurantRef{
			ID:      dish.Restaurant.ID,
			Name:    dish.Restaurant.Name,
			Cuisine: dish.Restaurant.CuisineType,
			Halal:   dish.Restaurant.Halal,
		}
	}
	return item
}

func restaurantSearchItem(restaurant *domain.Restaurant) domain.RestaurantSearchItem {
	return domain.RestaurantSearchItem{
		Kind:         "restaurant",
		RestaurantID: restaurant.ID,
		Name:         restaurant.Name,
		Address:      restaurant.Address,
		Cuisine:      restaurant.CuisineType,
		Halal:        restaurant.Halal,
		Latitude:     restaurant.Latitude,
		Longitude:    restaurant.Longitude,
	}
}

var _ SearchServiceInterface = (*SearchService)(nil)
