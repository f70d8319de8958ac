package service

import (
	"errors"
	"math/rand"
	"strings"

	"bitechoice/internal/domain"
)

// ErrNoDishes means the full fallback cascade still produced zero candidates.
// It is distinct from an empty suggestion list, which is a valid result.
var ErrNoDishes = errors.New("no dishes found matching your filters")

const (
	defaultPlanDays = 3
	maxPlanDays     = 14
	slotsPerDay     = 3
)

var mealTypes = [slotsPerDay]string{"breakfast", "lunch", "dinner"}

// Fixed diet vocabularies. A dish matches a diet when any keyword appears as
// a case-insensitive substring of name + " " + description.
var dietKeywords = map[string][]string{
	"protein":    {"chicken", "beef", "pork", "fish", "salmon", "tuna", "egg", "shrimp", "prawn", "steak"},
	"vegetarian": {"tofu", "vegetarian", "veg", "vegetable", "salad", "mushroom", "tempeh"},
}

// PlanOptions are explicit call parameters; unlike SuggestOptions there is no
// stored-preference fallback. Unrecognized Budget/Diet values are ignored.
type PlanOptions struct {
	Days   int
	Halal  *bool
	Budget string
	Diet   string
	Avoid  []string
}

type PlanService struct {
	dishes DishRepository
	prefs  PreferenceRepository
}

func NewPlanService(dishes DishRepository, prefs PreferenceRepository) *PlanService {
	return &PlanService{dishes: dishes, prefs: prefs}
}

// Generate builds a days x 3 meal plan from dishes surviving the filter
// cascade. The cascade relaxes diet first, then budget/halal, but avoid
// keywords are honored at every level and an explicit halal=true survives
// into the final fallback.
func (s *PlanService) Generate(userID int, opts PlanOptions) ([]domain.PlanDay, error) {
	days := clampDays(opts.Days)

	base := domain.DishFilter{Halal: opts.Halal}
	applyBudget(&base, opts.Budget)

	fetched, err := s.dishes.FindDishes(base)
	if err != nil {
		return nil, err
	}
	pool := make([]domain.Dish, 0, len(fetched))
	for _, dish := range fetched {
		if dish.Name != "" {
			pool = append(pool, dish)
		}
	}

	candidates := pool
	if keywords, ok := dietKeywords[opts.Diet]; ok {
		candidates = keepDishes(candidates, func(d domain.Dish) bool {
			return containsAny(dishText(d), keywords)
		})
	}
	if len(opts.Avoid) > 0 {
		candidates = keepDishes(candidates, func(d domain.Dish) bool {
			return !containsAny(dishText(d), opts.Avoid)
		})
	}

	// Cascade step 1: drop the diet constraint, keep avoid.
	if len(candidates) == 0 && opts.Diet != "" {
		candidates = keepDishes(pool, func(d domain.Dish) bool {
			return !containsAny(dishText(d), opts.Avoid)
		})
	}

	// Cascade step 2: refetch everything, keeping only avoid and an
	// explicitly requested halal=true.
	if len(candidates) == 0 {
		everything, err := s.dishes.FindDishes(domain.DishFilter{})
		if err != nil {
			return nil, err
		}
		candidates = keepDishes(everything, func(d domain.Dish) bool {
			if opts.Halal != nil && *opts.Halal && !d.Halal {
				return false
			}
			return !containsAny(dishText(d), opts.Avoid)
		})
	}

	if len(candidates) == 0 {
		return nil, ErrNoDishes
	}

	shuffled := make([]domain.Dish, len(candidates))
	copy(shuffled, candidates)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	used := make(map[int]struct{})
	plan := make([]domain.PlanDay, 0, days)
	for d := 0; d < days; d++ {
		day := domain.PlanDay{Day: d + 1, Meals: make([]domain.PlanMeal, 0, slotsPerDay)}
		for _, mealType := range mealTypes {
			dish := firstUnused(shuffled, used)
			if dish == nil {
				dish = &shuffled[rand.Intn(len(shuffled))]
			}
			used[dish.ID] = struct{}{}
			day.Meals = append(day.Meals, domain.PlanMeal{MealType: mealType, Dish: toPlanDish(dish)})
		}
		plan = append(plan, day)
	}
	return plan, nil
}

// GenerateSimple is the chatbot's deterministic variant: stored halal
// preference only, positional assignment, no shuffle and no cascade. Slots
// repeat via (day+slot) mod n when the fetch came back short, and stay nil
// only on an empty catalog.
func (s *PlanService) GenerateSimple(userID, days int) ([]domain.PlanDay, error) {
	days = clampDays(days)

	filter := domain.DishFilter{Limit: days * slotsPerDay}
	prefs, err := s.prefs.FindPreferences(userID)
	if err != nil {
		return nil, err
	}
	if prefs != nil && prefs.Halal != nil && *prefs.Halal {
		halal := true
		filter.Halal = &halal
	}

	dishes, err := s.dishes.FindDishes(filter)
	if err != nil {
		return nil, err
	}

	plan := make([]domain.PlanDay, 0, days)
	for d := 0; d < days; d++ {
		day := domain.PlanDay{Day: d + 1, Meals: make([]domain.PlanMeal, 0, slotsPerDay)}
		for m := 0; m < slotsPerDay; m++ {
			meal := domain.PlanMeal{MealType: mealTypes[m]}
			if idx := d*slotsPerDay + m; idx < len(dishes) {
				meal.Dish = toPlanDish(&dishes[idx])
			} else if len(dishes) > 0 {
				meal.Dish = toPlanDish(&dishes[(d+m)%len(dishes)])
			}
			day.Meals = append(day.Meals, meal)
		}
		plan = append(plan, day)
	}
	return plan, nil
}

func clampDays(days int) int {
	if days == 0 {
		return defaultPlanDays
	}
	if days < 1 {
		return 1
	}
	if days > maxPlanDays {
		return maxPlanDays
	}
	return days
}

// Budget enums map to fixed price ranges; anything else imposes no constraint.
func applyBudget(filter *domain.DishFilter, budget string) {
	switch strings.ToLower(budget) {
	case "low":
		max := 10.0
		filter.MaxPrice = &max
	case "medium":
		min, max := 11.0, 20.0
		filter.MinPrice = &min
		filter.MaxPrice = &max
	case "high":
		min := 20.0
		filter.MinPrice = &min
	}
}

func dishText(dish domain.Dish) string {
	return strings.ToLower(dish.Name + " " + dish.Description)
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if keyword != "" && strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func keepDishes(dishes []domain.Dish, keep func(domain.Dish) bool) []domain.Dish {
	kept := make([]domain.Dish, 0, len(dishes))
	for _, dish := range dishes {
		if keep(dish) {
			kept = append(kept, dish)
		}
	}
	return kept
}

func firstUnused(dishes []domain.Dish, used map[int]struct{}) *domain.Dish {
	for i := range dishes {
		if _, ok := used[dishes[i].ID]; !ok {
			return &dishes[i]
		}
	}
	return nil
}

func toPlanDish(dish *domain.Dish) *domain.PlanDish {
	planDish := &domain.PlanDish{
		DishID:      dish.ID,
		Name:        dish.Name,
		Price:       dish.Price,
		Halal:       dish.Halal,
		Description: dish.Description,
	}
	if dish.Restaurant != nil {
		planDish.Restaurant = &domain.RestaurantSummary{
			ID:      dish.Restaurant.ID,
			Name:    dish.Restaurant.Name,
			Cuisine: dish.Restaurant.CuisineType,
		}
	}
	return planDish
}

var _ PlanServiceInterface = (*PlanService)(nil)
