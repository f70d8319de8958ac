package mocks

import (
	"context"
	"time"

	"bitechoice/internal/domain"
	"bitechoice/internal/service"

	"github.com/stretchr/testify/mock"
)

type SuggestionServiceInterface struct{ mock.Mock }

func NewSuggestionServiceInterface(t mockConstructorTestingT) *SuggestionServiceInterface {
	m := &SuggestionServiceInterface{}
	setup(t, &m.Mock, func() { m.AssertExpectations(t) })
	return m
}

func (m *SuggestionServiceInterface) Suggest(userID int, opts service.SuggestOptions) ([]domain.DishSummary, error) {
	args := m.Called(userID, opts)
	var dishes []domain.DishSummary
	if args.Get(0) != nil {
		dishes = args.Get(0).([]domain.DishSummary)
	}
	return dishes, args.Error(1)
}

type PlanServiceInterface struct{ mock.Mock }

func NewPlanServiceInterface(t mockConstructorTestingT) *PlanServiceInterface {
	m := &PlanServiceInterface{}
	setup(t, &m.Mock, func() { m.AssertExpectations(t) })
	return m
}

func (m *PlanServiceInterface) Generate(userID int, opts service.PlanOptions) ([]domain.PlanDay, error) {
	args := m.Called(userID, opts)
	var days []domain.PlanDay
	if args.Get(0) != nil {
		days = args.Get(0).([]domain.PlanDay)
	}
	return days, args.Error(1)
}

func (m *PlanServiceInterface) GenerateSimple(userID, days int) ([]domain.PlanDay, error) {
	args := m.Called(userID, days)
	var plan []domain.PlanDay
	if args.Get(0) != nil {
		plan = args.Get(0).([]domain.PlanDay)
	}
	return plan, args.Error(1)
}

type MealPlanServiceInterface struct{ mock.Mock }

func NewMealPlanServiceInterface(t mockConstructorTestingT) *MealPlanServiceInterface {
	m := &MealPlanServiceInterface{}
	setup(t, &m.Mock, func() { m.AssertExpectations(t) })
	return m
}

func (m *MealPlanServiceInterface) Create(userID int, planName string) (*domain.MealPlan, error) {
	args := m.Called(userID, planName)
	var plan *domain.MealPlan
	if args.Get(0) != nil {
		plan = args.Get(0).(*domain.MealPlan)
	}
	return plan, args.Error(1)
}

func (m *MealPlanServiceInterface) List(userID int) ([]domain.MealPlan, error) {
	args := m.Called(userID)
	var plans []domain.MealPlan
	if args.Get(0) != nil {
		plans = args.Get(0).([]domain.MealPlan)
	}
	return plans, args.Error(1)
}

func (m *MealPlanServiceInterface) Get(userID, planID int) (*domain.MealPlan, error) {
	args := m.Called(userID, planID)
	var plan *domain.MealPlan
	if args.Get(0) != nil {
		plan = args.Get(0).(*domain.MealPlan)
	}
	return plan, args.Error(1)
}

func (m *MealPlanServiceInterface) AddItem(userID, planID int, mealDate time.Time, mealType string, dishID int) (*domain.MealPlanItem, error) {
	args := m.Called(userID, planID, mealDate, mealType, dishID)
	var item *domain.MealPlanItem
	if args.Get(0) != nil {
		item = args.Get(0).(*domain.MealPlanItem)
	}
	return item, args.Error(1)
}

type SearchServiceInterface struct{ mock.Mock }

func NewSearchServiceInterface(t mockConstructorTestingT) *SearchServiceInterface {
	m := &SearchServiceInterface{}
	setup(t, &m.Mock, func() { m.AssertExpectations(t) })
	return m
}

func (m *SearchServiceInterface) Search(query string, opts service.SearchOptions) (*domain.SearchResult, error) {
	args := m.Called(query, opts)
	var result *domain.SearchResult
	if args.Get(0) != nil {
		result = args.Get(0).(*domain.SearchResult)
	}
	return result, args.Error(1)
}

type ReviewServiceInterface struct{ mock.Mock }

func NewReviewServiceInterface(t mockConstructorTestingT) *ReviewServiceInterface {
	m := &ReviewServiceInterface{}
	setup(t, &m.Mock, func() { m.AssertExpectations(t) })
	return m
}

func (m *ReviewServiceInterface) Create(ctx context.Context, review *domain.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *ReviewServiceInterface) ListDishReviews(dishID int) ([]domain.Review, error) {
	args := m.Called(dishID)
	var reviews []domain.Review
	if args.Get(0) != nil {
		reviews = args.Get(0).([]domain.Review)
	}
	return reviews, args.Error(1)
}

func (m *ReviewServiceInterface) ListRestaurantReviews(restaurantID int) ([]domain.Review, error) {
	args := m.Called(restaurantID)
	var reviews []domain.Review
	if args.Get(0) != nil {
		reviews = args.Get(0).([]domain.Review)
	}
	return reviews, args.Error(1)
}

type HistoryServiceInterface struct{ mock.Mock }

func NewHistoryServiceInterface(t mockConstructorTestingT) *HistoryServiceInterface {
	m := &HistoryServiceInterface{}
	setup(t, &m.Mock, func() { m.AssertExpectations(t) })
	return m
}

func (m *HistoryServiceInterface) Log(ctx context.Context, userID, dishID int) (*domain.MealHistoryEntry, error) {
	args := m.Called(ctx, userID, dishID)
	var entry *domain.MealHistoryEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.MealHistoryEntry)
	}
	return entry, args.Error(1)
}

func (m *HistoryServiceInterface) List(userID int) ([]domain.MealHistoryEntry, error) {
	args := m.Called(userID)
	var entries []domain.MealHistoryEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.MealHistoryEntry)
	}
	return entries, args.Error(1)
}

type PreferenceServiceInterface struct{ mock.Mock }

func NewPreferenceServiceInterface(t mockConstructorTestingT) *PreferenceServiceInterface {
	m := &PreferenceServiceInterface{}
	setup(t, &m.Mock, func() { m.AssertExpectations(t) })
	return m
}

func (m *PreferenceServiceInterface) Get(userID int) (*domain.UserPreferences, error) {
	args := m.Called(userID)
	var prefs *domain.UserPreferences
	if args.Get(0) != nil {
		prefs = args.Get(0).(*domain.UserPreferences)
	}
	return prefs, args.Error(1)
}

func (m *PreferenceServiceInterface) Update(userID int, prefs *domain.UserPreferences) (*domain.UserPreferences, error) {
	args := m.Called(userID, prefs)
	var updated *domain.UserPreferences
	if args.Get(0) != nil {
		updated = args.Get(0).(*domain.UserPreferences)
	}
	return updated, args.Error(1)
}

type RestaurantServiceInterface struct{ mock.Mock }

func NewRestaurantServiceInterface(t mockConstructorTestingT) *RestaurantServiceInterface {
	m := &RestaurantServiceInterface{}
	setup(t, &m.Mock, func() { m.AssertExpectations(t) })
	return m
}

func (m *RestaurantServiceInterface) List() ([]domain.Restaurant, error) {
	args := m.Called()
	var restaurants []domain.Restaurant
	if args.Get(0) != nil {
		restaurants = args.Get(0).([]domain.Restaurant)
	}
	return restaurants, args.Error(1)
}

func (m *RestaurantServiceInterface) Get(id int) (*domain.Restaurant, []domain.Dish, error) {
	args := m.Called(id)
	var restaurant *domain.Restaurant
	if args.Get(0) != nil {
		restaurant = args.Get(0).(*domain.Restaurant)
	}
	var dishes []domain.Dish
	if args.Get(1) != nil {
		dishes = args.Get(1).([]domain.Dish)
	}
	return restaurant, dishes, args.Error(2)
}

func (m *RestaurantServiceInterface) Search(query string) ([]domain.Restaurant, error) {
	args := m.Called(query)
	var restaurants []domain.Restaurant
	if args.Get(0) != nil {
		restaurants = args.Get(0).([]domain.Restaurant)
	}
	return restaurants, args.Error(1)
}

func (m *RestaurantServiceInterface) Nearby(lat, lng, radiusKm float64) ([]domain.NearbyRestaurant, error) {
	args := m.Called(lat, lng, radiusKm)
	var restaurants []domain.NearbyRestaurant
	if args.Get(0) != nil {
		restaurants = args.Get(0).([]domain.NearbyRestaurant)
	}
	return restaurants, args.Error(1)
}

func (m *RestaurantServiceInterface) ShareQRCode(id int) ([]byte, error) {
	args := m.Called(id)
	var png []byte
	if args.Get(0) != nil {
		png = args.Get(0).([]byte)
	}
	return png, args.Error(1)
}

type DishServiceInterface struct{ mock.Mock }

func NewDishServiceInterface(t mockConstructorTestingT) *DishServiceInterface {
	m := &DishServiceInterface{}
	setup(t, &m.Mock, func() { m.AssertExpectations(t) })
	return m
}

func (m *DishServiceInterface) Get(id int) (*domain.Dish, error) {
	args := m.Called(id)
	var dish *domain.Dish
	if args.Get(0) != nil {
		dish = args.Get(0).(*domain.Dish)
	}
	return dish, args.Error(1)
}

func (m *DishServiceInterface) ListForRestaurant(restaurantID int) ([]domain.Dish, error) {
	args := m.Called(restaurantID)
	var dishes []domain.Dish
	if args.Get(0) != nil {
		dishes = args.Get(0).([]domain.Dish)
	}
	return dishes, args.Error(1)
}

func (m *DishServiceInterface) Spin() (*domain.Dish, error) {
	args := m.Called()
	var dish *domain.Dish
	if args.Get(0) != nil {
		dish = args.Get(0).(*domain.Dish)
	}
	return dish, args.Error(1)
}

type AnalyticsInterface struct{ mock.Mock }

func NewAnalyticsInterface(t mockConstructorTestingT) *AnalyticsInterface {
	m := &AnalyticsInterface{}
	setup(t, &m.Mock, func() { m.AssertExpectations(t) })
	return m
}

func (m *AnalyticsInterface) TopToday() ([]domain.DishAnalytics, error) {
	args := m.Called()
	var top []domain.DishAnalytics
	if args.Get(0) != nil {
		top = args.Get(0).([]domain.DishAnalytics)
	}
	return top, args.Error(1)
}

func (m *AnalyticsInterface) TopAllTime() ([]domain.DishAnalytics, error) {
	args := m.Called()
	var top []domain.DishAnalytics
	if args.Get(0) != nil {
		top = args.Get(0).([]domain.DishAnalytics)
	}
	return top, args.Error(1)
}

type Bot struct{ mock.Mock }

func NewBot(t mockConstructorTestingT) *Bot {
	m := &Bot{}
	setup(t, &m.Mock, func() { m.AssertExpectations(t) })
	return m
}

func (m *Bot) Ask(ctx context.Context, userID int, message string, lat, lng float64) (string, error) {
	args := m.Called(ctx, userID, message, lat, lng)
	return args.String(0), args.Error(1)
}

func (m *Bot) History(userID int) ([]domain.ChatMessage, error) {
	args := m.Called(userID)
	var messages []domain.ChatMessage
	if args.Get(0) != nil {
		messages = args.Get(0).([]domain.ChatMessage)
	}
	return messages, args.Error(1)
}

func (m *Bot) ClearHistory(userID int) error {
	return m.Called(userID).Error(0)
}
