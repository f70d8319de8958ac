package service

import (
	"context"
	"time"

	"bitechoice/internal/domain"
)

type DishRepository interface {
	FindDishes(filter domain.DishFilter) ([]domain.Dish, error)
	GetDish(id int) (*domain.Dish, error)
	ListRestaurantDishes(restaurantID int) ([]domain.Dish, error)
}

type HistoryRepository interface {
	FindRecentHistory(userID, limit int) ([]domain.MealHistoryEntry, error)
	ListHistory(userID int) ([]domain.MealHistoryEntry, error)
	InsertHistory(entry *domain.MealHistoryEntry) error
}

type PreferenceRepository interface {
	FindPreferences(userID int) (*domain.UserPreferences, error)
	UpsertPreferences(prefs *domain.UserPreferences) error
}

type ReviewRepository interface {
	InsertReview(review *domain.Review) error
	ListDishReviews(dishID int) ([]domain.Review, error)
	ListRestaurantReviews(restaurantID int) ([]domain.Review, error)
}

type RestaurantRepository interface {
	ListRestaurants() ([]domain.Restaurant, error)
	GetRestaurant(id int) (*domain.Restaurant, error)
	SearchRestaurants(query string) ([]domain.Restaurant, error)
}

type MealPlanRepository interface {
	InsertMealPlan(plan *domain.MealPlan) error
	ListMealPlans(userID int) ([]domain.MealPlan, error)
	GetMealPlan(id int) (*domain.MealPlan, error)
	FindUserMealPlan(planID, userID int) (*domain.MealPlan, error)
	InsertMealPlanItem(item *domain.MealPlanItem) error
}

type SearchRepository interface {
	SearchDishesPaged(query string, halal *bool, limit, offset int) ([]domain.Dish, int, error)
	SearchRestaurantsPaged(query string, halal *bool, limit, offset int) ([]domain.Restaurant, int, error)
}

type ChatRepository interface {
	SaveChatMessage(msg *domain.ChatMessage) error
	ListChatHistory(userID, limit int) ([]domain.ChatMessage, error)
	ClearChatHistory(userID int) error
}

type MarkerCache interface {
	ReviewMarkerKey(userID, dishID int) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, msg domain.EventMessage) error
}

// ConsumerStore is what the events consumer folds messages into.
type ConsumerStore interface {
	IncrMealCount(ctx context.Context, dishID int) error
	UpdateDishRating(dishID int) error
}

type SuggestionServiceInterface interface {
	Suggest(userID int, opts SuggestOptions) ([]domain.DishSummary, error)
}

type PlanServiceInterface interface {
	Generate(userID int, opts PlanOptions) ([]domain.PlanDay, error)
	GenerateSimple(userID, days int) ([]domain.PlanDay, error)
}

type MealPlanServiceInterface interface {
	Create(userID int, planName string) (*domain.MealPlan, error)
	List(userID int) ([]domain.MealPlan, error)
	Get(userID, planID int) (*domain.MealPlan, error)
	AddItem(userID, planID int, mealDate time.Time, mealType string, dishID int) (*domain.MealPlanItem, error)
}

type SearchServiceInterface interface {
	Search(query string, opts SearchOptions) (*domain.SearchResult, error)
}

type ReviewServiceInterface interface {
	Create(ctx context.Context, review *domain.Review) error
	ListDishReviews(dishID int) ([]domain.Review, error)
	ListRestaurantReviews(restaurantID int) ([]domain.Review, error)
}

type HistoryServiceInterface interface {
	Log(ctx context.Context, userID, dishID int) (*domain.MealHistoryEntry, error)
	List(userID int) ([]domain.MealHistoryEntry, error)
}

type PreferenceServiceInterface interface {
	Get(userID int) (*domain.UserPreferences, error)
	Update(userID int, prefs *domain.UserPreferences) (*domain.UserPreferences, error)
}

type RestaurantServiceInterface interface {
	List() ([]domain.Restaurant, error)
	Get(id int) (*domain.Restaurant, []domain.Dish, error)
	Search(query string) ([]domain.Restaurant, error)
	Nearby(lat, lng, radiusKm float64) ([]domain.NearbyRestaurant, error)
	ShareQRCode(id int) ([]byte, error)
}

type DishServiceInterface interface {
	Get(id int) (*domain.Dish, error)
	ListForRestaurant(restaurantID int) ([]domain.Dish, error)
	Spin() (*domain.Dish, error)
}
