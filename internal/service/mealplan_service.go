package service

import (
	"errors"
	"strings"
	"time"

	"bitechoice/internal/domain"
)

var (
	ErrMissingPlanName   = errors.New("plan_name is required")
	ErrMissingItemFields = errors.New("meal_date, meal_type, and dish_id are required")
	ErrInvalidMealType   = errors.New("meal_type must be breakfast, lunch, or dinner")
	ErrPlanNotOwned      = errors.New("meal plan does not belong to this user")
)

// MealPlanService covers the persisted, user-curated plans. The generated
// day-by-day plans live in PlanService and are never stored.
type MealPlanService struct {
	plans  MealPlanRepository
	dishes DishRepository
}

func NewMealPlanService(plans MealPlanRepository, dishes DishRepository) *MealPlanService {
	return &MealPlanService{plans: plans, dishes: dishes}
}

func (s *MealPlanService) Create(userID int, planName string) (*domain.MealPlan, error) {
	planName = strings.TrimSpace(planName)
	if planName == "" {
		return nil, ErrMissingPlanName
	}
	plan := &domain.MealPlan{UserID: userID, PlanName: planName}
	if err := s.plans.InsertMealPlan(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *MealPlanService) List(userID int) ([]domain.MealPlan, error) {
	return s.plans.ListMealPlans(userID)
}

// Get returns the plan with its items. Callers only ever see their own
// plans; a plan owned by someone else surfaces as ErrPlanNotOwned, not as
// a silent not-found.
func (s *MealPlanService) Get(userID, planID int) (*domain.MealPlan, error) {
	plan, err := s.plans.GetMealPlan(planID)
	if err != nil {
		return nil, err
	}
	if plan.UserID != userID {
		return nil, ErrPlanNotOwned
	}
	return plan, nil
}

func (s *MealPlanService) AddItem(userID, planID int, mealDate time.Time, mealType string, dishID int) (*domain.MealPlanItem, error) {
	if mealDate.IsZero() || mealType == "" || dishID == 0 {
		return nil, ErrMissingItemFields
	}
	mealType = strings.ToLower(strings.TrimSpace(mealType))
	switch mealType {
	case "breakfast", "lunch", "dinner":
	default:
		return nil, ErrInvalidMealType
	}

	plan, err := s.plans.FindUserMealPlan(planID, userID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotOwned
	}

	dish, err := s.dishes.GetDish(dishID)
	if err != nil {
		return nil, err
	}

	item := &domain.MealPlanItem{
		PlanID:   planID,
		DishID:   dishID,
		MealDate: mealDate,
		MealType: mealType,
	}
	if err := s.plans.InsertMealPlanItem(item); err != nil {
		return nil, err
	}
	item.Dish = dish
	return item, nil
}

var _ MealPlanServiceInterface = (*MealPlanService)(nil)
