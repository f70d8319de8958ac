package service

import (
	"fmt"
	"math"
	"sort"

	"bitechoice/internal/domain"

	"github.com/skip2/go-qrcode"
)

const defaultNearbyRadiusKm = 5.0

type RestaurantService struct {
	restaurants RestaurantRepository
	dishes      DishRepository
	baseURL     string
}

func NewRestaurantService(restaurants RestaurantRepository, dishes DishRepository, baseURL string) *RestaurantService {
	return &RestaurantService{restaurants: restaurants, dishes: dishes, baseURL: baseURL}
}

func (s *RestaurantService) List() ([]domain.Restaurant, error) {
	return s.restaurants.ListRestaurants()
}

func (s *RestaurantService) Get(id int) (*domain.Restaurant, []domain.Dish, error) {
	restaurant, err := s.restaurants.GetRestaurant(id)
	if err != nil {
		return nil, nil, err
	}
	dishes, err := s.dishes.ListRestaurantDishes(id)
	if err != nil {
		return restaurant, nil, err
	}
	return restaurant, dishes, nil
}

func (s *RestaurantService) Search(query string) ([]domain.Restaurant, error) {
	return s.restaurants.SearchRestaurants(query)
}

// Nearby filters the catalog by haversine distance and sorts closest-first.
// The catalog is small enough that fetching everything beats a geospatial
// index.
func (s *RestaurantService) Nearby(lat, lng, radiusKm float64) ([]domain.NearbyRestaurant, error) {
	if radiusKm <= 0 {
		radiusKm = defaultNearbyRadiusKm
	}

	restaurants, err := s.restaurants.ListRestaurants()
	if err != nil {
		return nil, err
	}

	nearby := make([]domain.NearbyRestaurant, 0, len(restaurants))
	for _, restaurant := range restaurants {
		dist := haversineKm(lat, lng, restaurant.Latitude, restaurant.Longitude)
		if dist > radiusKm {
			continue
		}
		nearby = append(nearby, domain.NearbyRestaurant{
			ID:         restaurant.ID,
			Name:       restaurant.Name,
			Cuisine:    restaurant.CuisineType,
			Halal:      restaurant.Halal,
			Address:    restaurant.Address,
			DistanceKm: math.Round(dist*100) / 100,
		})
	}

	sort.Slice(nearby, func(i, j int) bool { return nearby[i].DistanceKm < nearby[j].DistanceKm })
	return nearby, nil
}

// ShareQRCode renders a PNG linking to the restaurant's public page.
func (s *RestaurantService) ShareQRCode(id int) ([]byte, error) {
	if _, err := s.restaurants.GetRestaurant(id); err != nil {
		return nil, err
	}
	link := fmt.Sprintf("%s/restaurants/%d", s.baseURL, id)
	return qrcode.Encode(link, qrcode.Medium, 256)
}

func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371.0
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)
