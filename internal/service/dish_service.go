package service

import (
	"math/rand"

	"bitechoice/internal/domain"
)

type DishService struct {
	dishes DishRepository
}

func NewDishService(dishes DishRepository) *DishService {
	return &DishService{dishes: dishes}
}

func (s *DishService) Get(id int) (*domain.Dish, error) {
	return s.dishes.GetDish(id)
}

func (s *DishService) ListForRestaurant(restaurantID int) ([]domain.Dish, error) {
	return s.dishes.ListRestaurantDishes(restaurantID)
}

// Spin picks one dish uniformly at random from the whole catalog. Returns
// nil on an empty catalog.
func (s *DishService) Spin() (*domain.Dish, error) {
	dishes, err := s.dishes.FindDishes(domain.DishFilter{})
	if err != nil {
		return nil, err
	}
	if len(dishes) == 0 {
		return nil, nil
	}
	return &dishes[rand.Intn(len(dishes))], nil
}

var _ DishServiceInterface = (*DishService)(nil)
