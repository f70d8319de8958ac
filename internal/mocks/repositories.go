package mocks

import (
	"context"

	"bitechoice/internal/domain"

	"github.com/stretchr/testify/mock"
)

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

func setup(t mockConstructorTestingT, m *mock.Mock, assert func()) {
	m.Test(t)
	t.Cleanup(assert)
}

type DishRepository struct{ mock.Mock }

func NewDishRepository(t mockConstructorTestingT) *DishRepository {
	m := &DishRepository{}
	setup(t, &m.Mock, func() { m.AssertExpectations(t) })
	return m
}

func (m *DishRepository) FindDishes(filter domain.DishFilter) ([]domain.Dish, error) {
	args := m.Called(filter)
	var dishes []domain.Dish
	if args.Get(0) != nil {
		dishes = args.Get(0).([]domain.Dish)
	}
	return dishes, args.Error(1)
}

func (m *DishRepository) GetDish(id int) (*domain.Dish, error) {
	args := m.Called(id)
	var dish *domain.Dish
	if args.Get(0) != nil {
		dish = args.Get(0).(*domain.Dish)
	}
	return dish, args.Error(1)
}

func (m *DishRepository) ListRestaurantDishes(restaurantID int) ([]domain.Dish, error) {
	args := m.Called(restaurantID)
	var dishes []domain.Dish
	if args.Get(0) != nil {
		dishes = args.Get(0).([]domain.Dish)
	}
	return dishes, args.Error(1)
}

type HistoryRepository struct{ mock.Mock }

func NewHistoryRepository(t mockConstructorTestingT) *HistoryRepository {
	m := &HistoryRepository{}
	setup(t, &m.Mock, func() { m.AssertExpectations(t) })
	return m
}

func (m *HistoryRepository) FindRecentHistory(userID, limit int) ([]domain.MealHistoryEntry, error) {
	args := m.Called(userID, limit)
	var entries []domain.MealHistoryEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.MealHistoryEntry)
	}
	return entries, args.Error(1)
}

func (m *HistoryRepository) ListHistory(userID int) ([]domain.MealHistoryEntry, error) {
	args := m.Called(userID)
	var entries []domain.MealHistoryEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.MealHistoryEntry)
	}
	return entries, args.Error(1)
}

func (m *HistoryRepository) InsertHistory(entry *domain.MealHistoryEntry) error {
	return m.Called(entry).Error(0)
}

type PreferenceRepository struct{ mock.Mock }

func NewPreferenceRepository(t mockConstructorTestingT) *PreferenceRepository {
	m := &PreferenceRepository{}
	setup(t, &m.Mock, func() { m.AssertExpectations(t) })
	return m
}

func (m *PreferenceRepository) FindPreferences(userID int) (*domain.UserPreferences, error) {
	args := m.Called(userID)
	var prefs *domain.UserPreferences
	if args.Get(0) != nil {
		prefs = args.Get(0).(*domain.UserPreferences)
	}
	return prefs, args.Error(1)
}

func (m *PreferenceRepository) UpsertPreferences(prefs *domain.UserPreferences) error {
	return m.Called(prefs).Error(0)
}

type MealPlanRepository struct{ mock.Mock }

func NewMealPlanRepository(t mockConstructorTestingT) *MealPlanRepository {
	m := &MealPlanRepository{}
	setup(t, &m.Mock, func() { m.AssertExpectations(t) })
	return m
}

func (m *MealPlanRepository) InsertMealPlan(plan *domain.MealPlan) error {
	return m.Called(plan).Error(0)
}

func (m *MealPlanRepository) ListMealPlans(userID int) ([]domain.MealPlan, error) {
	args := m.Called(userID)
	var plans []domain.MealPlan
	if args.Get(0) != nil {
		plans = args.Get(0).([]domain.MealPlan)
	}
	return plans, args.Error(1)
}

func (m *MealPlanRepository) GetMealPlan(id int) (*domain.MealPlan, error) {
	args := m.Called(id)
	var plan *domain.MealPlan
	if args.Get(0) != nil {
		plan = args.Get(0).(*domain.MealPlan)
	}
	return plan, args.Error(1)
}

func (m *MealPlanRepository) FindUserMealPlan(planID, userID int) (*domain.MealPlan, error) {
	args := m.Called(planID, userID)
	var plan *domain.MealPlan
	if args.Get(0) != nil {
		plan = args.Get(0).(*domain.MealPlan)
	}
	return plan, args.Error(1)
}

func (m *MealPlanRepository) InsertMealPlanItem(item *domain.MealPlanItem) error {
	return m.Called(item).Error(0)
}

type SearchRepository struct{ mock.Mock }

func NewSearchRepository(t mockConstructorTestingT) *SearchRepository {
	m := &SearchRepository{}
	setup(t, &m.Mock, func() { m.AssertExpectations(t) })
	return m
}

func (m *SearchRepository) SearchDishesPaged(query string, halal *bool, limit, offset int) ([]domain.Dish, int, error) {
	args := m.Called(query, halal, limit, offset)
	var dishes []domain.Dish
	if args.Get(0) != nil {
		dishes = args.Get(0).([]domain.Dish)
	}
	return dishes, args.Int(1), args.Error(2)
}

func (m *SearchRepository) SearchRestaurantsPaged(query string, halal *bool, limit, offset int) ([]domain.Restaurant, int, error) {
	args := m.Called(query, halal, limit, offset)
	var restaurants []domain.Restaurant
	if args.Get(0) != nil {
		restaurants = args.Get(0).([]domain.Restaurant)
	}
	return restaurants, args.Int(1), args.Error(2)
}

type ReviewRepository struct{ mock.Mock }

func NewReviewRepository(t mockConstructorTestingT) *ReviewRepository {
	m := &ReviewRepository{}
	setup(t, &m.Mock, func() { m.AssertExpectations(t) })
	return m
}

func (m *ReviewRepository) InsertReview(review *domain.Review) error {
	return m.Called(review).Error(0)
}

func (m *ReviewRepository) ListDishReviews(dishID int) ([]domain.Review, error) {
	args := m.Called(dishID)
	var reviews []domain.Review
	if args.Get(0) != nil {
		reviews = args.Get(0).([]domain.Review)
	}
	return reviews, args.Error(1)
}

func (m *ReviewRepository) ListRestaurantReviews(restaurantID int) ([]domain.Review, error) {
	args := m.Called(restaurantID)
	var reviews []domain.Review
	if args.Get(0) != nil {
		reviews = args.Get(0).([]domain.Review)
	}
	return reviews, args.Error(1)
}

type RestaurantRepository struct{ mock.Mock }

func NewRestaurantRepository(t mockConstructorTestingT) *RestaurantRepository {
	m := &RestaurantRepository{}
	setup(t, &m.Mock, func() { m.AssertExpectations(t) })
	return m
}

func (m *RestaurantRepository) ListRestaurants() ([]domain.Restaurant, error) {
	args := m.Called()
	var restaurants []domain.Restaurant
	if args.Get(0) != nil {
		restaurants = args.Get(0).([]domain.Restaurant)
	}
	return restaurants, args.Error(1)
}

func (m *RestaurantRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	args := m.Called(id)
	var restaurant *domain.Restaurant
	if args.Get(0) != nil {
		restaurant = args.Get(0).(*domain.Restaurant)
	}
	return restaurant, args.Error(1)
}

func (m *RestaurantRepository) SearchRestaurants(query string) ([]domain.Restaurant, error) {
	args := m.Called(query)
	var restaurants []domain.Restaurant
	if args.Get(0) != nil {
		restaurants = args.Get(0).([]domain.Restaurant)
	}
	return restaurants, args.Error(1)
}

type ChatRepository struct{ mock.Mock }

func NewChatRepository(t mockConstructorTestingT) *ChatRepository {
	m := &ChatRepository{}
	setup(t, &m.Mock, func() { m.AssertExpectations(t) })
	return m
}

func (m *ChatRepository) SaveChatMessage(msg *domain.ChatMessage) error {
	return m.Called(msg).Error(0)
}

func (m *ChatRepository) ListChatHistory(userID, limit int) ([]domain.ChatMessage, error) {
	args := m.Called(userID, limit)
	var messages []domain.ChatMessage
	if args.Get(0) != nil {
		messages = args.Get(0).([]domain.ChatMessage)
	}
	return messages, args.Error(1)
}

func (m *ChatRepository) ClearChatHistory(userID int) error {
	return m.Called(userID).Error(0)
}

type MarkerCache struct{ mock.Mock }

func NewMarkerCache(t mockConstructorTestingT) *MarkerCache {
	m := &MarkerCache{}
	setup(t, &m.Mock, func() { m.AssertExpectations(t) })
	return m
}

func (m *MarkerCache) ReviewMarkerKey(userID, dishID int) string {
	return m.Called(userID, dishID).String(0)
}

func (m *MarkerCache) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MarkerCache) SetMarker(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type EventPublisher struct{ mock.Mock }

func NewEventPublisher(t mockConstructorTestingT) *EventPublisher {
	m := &EventPublisher{}
	setup(t, &m.Mock, func() { m.AssertExpectations(t) })
	return m
}

func (m *EventPublisher) PublishEvent(ctx context.Context, msg domain.EventMessage) error {
	return m.Called(ctx, msg).Error(0)
}

type ConsumerStore struct{ mock.Mock }

func NewConsumerStore(t mockConstructorTestingT) *ConsumerStore {
	m := &ConsumerStore{}
	setup(t, &m.Mock, func() { m.AssertExpectations(t) })
	return m
}

func (m *ConsumerStore) IncrMealCount(ctx context.Context, dishID int) error {
	return m.Called(ctx, dishID).Error(0)
}

func (m *ConsumerStore) UpdateDishRating(dishID int) error {
	return m.Called(dishID).Error(0)
}
