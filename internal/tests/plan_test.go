package tests

import (
	"testing"

	"bitechoice/internal/domain"
	"bitechoice/internal/mocks"
	"bitechoice/internal/service"

	"github.com/stretchr/testify/assert"
)

func planDishIDs(plan []domain.PlanDay) map[int]bool {
	ids := make(map[int]bool)
	for _, day := range plan {
		for _, meal := range day.Meals {
			if meal.Dish != nil {
				ids[meal.Dish.DishID] = true
			}
		}
	}
	return ids
}

func TestPlanService_Generate_ShapeAndDayClamping(t *testing.T) {
	tests := []struct {
		name         string
		days         int
		expectedDays int
	}{
		{name: "zero_defaults_to_three", days: 0, expectedDays: 3},
		{name: "negative_clamps_to_one", days: -2, expectedDays: 1},
		{name: "large_clamps_to_fourteen", days: 30, expectedDays: 14},
		{name: "in_range_kept", days: 7, expectedDays: 7},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			dishRepo := mocks.NewDishRepository(t)
			prefRepo := mocks.NewPreferenceRepository(t)
			svc := service.NewPlanService(dishRepo, prefRepo)

			dishRepo.On("FindDishes", domain.DishFilter{}).Return(dishCatalog(50), nil).Once()

			plan, err := svc.Generate(7, service.PlanOptions{Days: testCase.days})
			assert.NoError(t, err)
			assert.Len(t, plan, testCase.expectedDays)
			for i, day := range plan {
				assert.Equal(t, i+1, day.Day)
				assert.Len(t, day.Meals, 3)
				assert.Equal(t, "breakfast", day.Meals[0].MealType)
				assert.Equal(t, "lunch", day.Meals[1].MealType)
				assert.Equal(t, "dinner", day.Meals[2].MealType)
				for _, meal := range day.Meals {
					assert.NotNil(t, meal.Dish)
				}
			}
		})
	}
}

func TestPlanService_Generate_BudgetMapping(t *testing.T) {
	tests := []struct {
		name           string
		budget         string
		expectedFilter domain.DishFilter
	}{
		{name: "low", budget: "low", expectedFilter: domain.DishFilter{MaxPrice: floatPtr(10)}},
		{name: "medium", budget: "medium", expectedFilter: domain.DishFilter{MinPrice: floatPtr(11), MaxPrice: floatPtr(20)}},
		{name: "high", budget: "HIGH", expectedFilter: domain.DishFilter{MinPrice: floatPtr(20)}},
		{name: "unknown_ignored", budget: "luxury", expectedFilter: domain.DishFilter{}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			dishRepo := mocks.NewDishRepository(t)
			prefRepo := mocks.NewPreferenceRepository(t)
			svc := service.NewPlanService(dishRepo, prefRepo)

			dishRepo.On("FindDishes", testCase.expectedFilter).Return(dishCatalog(9), nil).Once()

			plan, err := svc.Generate(7, service.PlanOptions{Budget: testCase.budget})
			assert.NoError(t, err)
			assert.Len(t, plan, 3)
		})
	}
}

func TestPlanService_Generate_DietAndAvoidFilters(t *testing.T) {
	dishRepo := mocks.NewDishRepository(t)
	prefRepo := mocks.NewPreferenceRepository(t)
	svc := service.NewPlanService(dishRepo, prefRepo)

	catalog := []domain.Dish{
		{ID: 1, Name: "Grilled Chicken Rice"},
		{ID: 2, Name: "Beef Noodles"},
		{ID: 3, Name: "Tofu Salad"},
		{ID: 4, Name: "Spicy Chicken Wings", Description: "very spicy"},
	}
	dishRepo.On("FindDishes", domain.DishFilter{}).Return(catalog, nil).Once()

	plan, err := svc.Generate(7, service.PlanOptions{
		Days:  2,
		Diet:  "protein",
		Avoid: []string{"spicy"},
	})
	assert.NoError(t, err)

	// Diet keeps 1, 2, 4; avoid then drops 4.
	ids := planDishIDs(plan)
	assert.False(t, ids[3])
	assert.False(t, ids[4])
	for id := range ids {
		assert.Contains(t, []int{1, 2}, id)
	}
}

func TestPlanService_Generate_DietFallbackKeepsAvoid(t *testing.T) {
	dishRepo := mocks.NewDishRepository(t)
	prefRepo := mocks.NewPreferenceRepository(t)
	svc := service.NewPlanService(dishRepo, prefRepo)

	// Nothing matches the vegetarian vocabulary, so the diet constraint is
	// dropped while avoid stays in force. No refetch happens at this level.
	catalog := []domain.Dish{
		{ID: 1, Name: "Grilled Chicken Rice"},
		{ID: 2, Name: "Spicy Beef Noodles"},
	}
	dishRepo.On("FindDishes", domain.DishFilter{}).Return(catalog, nil).Once()

	plan, err := svc.Generate(7, service.PlanOptions{
		Days:  1,
		Diet:  "vegetarian",
		Avoid: []string{"spicy"},
	})
	assert.NoError(t, err)

	ids := planDishIDs(plan)
	assert.True(t, ids[1])
	assert.False(t, ids[2])
}

func TestPlanService_Generate_FinalFallbackRefetches(t *testing.T) {
	dishRepo := mocks.NewDishRepository(t)
	prefRepo := mocks.NewPreferenceRepository(t)
	svc := service.NewPlanService(dishRepo, prefRepo)

	halal := true
	budgetFilter := domain.DishFilter{Halal: &halal, MaxPrice: floatPtr(10)}

	// The budgeted fetch comes back empty, so the cascade refetches the whole
	// catalog. An explicit halal=true and the avoid list survive the refetch.
	dishRepo.On("FindDishes", budgetFilter).Return(nil, nil).Once()
	dishRepo.On("FindDishes", domain.DishFilter{}).Return([]domain.Dish{
		{ID: 1, Name: "Chicken Rice", Halal: true},
		{ID: 2, Name: "Pork Belly", Halal: false},
		{ID: 3, Name: "Spicy Laksa", Halal: true},
	}, nil).Once()

	plan, err := svc.Generate(7, service.PlanOptions{
		Days:   1,
		Halal:  &halal,
		Budget: "low",
		Avoid:  []string{"spicy"},
	})
	assert.NoError(t, err)

	ids := planDishIDs(plan)
	assert.True(t, ids[1])
	assert.False(t, ids[2])
	assert.False(t, ids[3])
}

func TestPlanService_Generate_NoDishesAnywhere(t *testing.T) {
	dishRepo := mocks.NewDishRepository(t)
	prefRepo := mocks.NewPreferenceRepository(t)
	svc := service.NewPlanService(dishRepo, prefRepo)

	dishRepo.On("FindDishes", domain.DishFilter{}).Return(nil, nil).Twice()

	plan, err := svc.Generate(7, service.PlanOptions{})
	assert.ErrorIs(t, err, service.ErrNoDishes)
	assert.Nil(t, plan)
}

func TestPlanService_Generate_AllDishesAvoided(t *testing.T) {
	dishRepo := mocks.NewDishRepository(t)
	prefRepo := mocks.NewPreferenceRepository(t)
	svc := service.NewPlanService(dishRepo, prefRepo)

	// Every dish trips the avoid keyword, at every cascade level. The outcome
	// is a clean not-found, never a plan containing an avoided dish.
	catalog := []domain.Dish{
		{ID: 1, Name: "Spicy Chicken"},
		{ID: 2, Name: "Laksa", Description: "spicy broth"},
	}
	dishRepo.On("FindDishes", domain.DishFilter{}).Return(catalog, nil).Twice()

	plan, err := svc.Generate(7, service.PlanOptions{Avoid: []string{"spicy"}})
	assert.ErrorIs(t, err, service.ErrNoDishes)
	assert.Nil(t, plan)
}

func TestPlanService_Generate_VegetarianAvoidScenario(t *testing.T) {
	dishRepo := mocks.NewDishRepository(t)
	prefRepo := mocks.NewPreferenceRepository(t)
	svc := service.NewPlanService(dishRepo, prefRepo)

	catalog := []domain.Dish{
		{ID: 1, Name: "Chicken Rice", Price: 7, Halal: true},
		{ID: 2, Name: "Tofu Salad", Price: 6, Halal: true},
		{ID: 3, Name: "Beef Burger", Price: 15},
		{ID: 4, Name: "Mushroom Soup", Price: 5, Halal: true},
	}
	dishRepo.On("FindDishes", domain.DishFilter{}).Return(catalog, nil).Once()

	// Vegetarian keeps {2, 4}; avoid removes 4; the one survivor fills all
	// three slots by repetition.
	plan, err := svc.Generate(7, service.PlanOptions{
		Days:  1,
		Diet:  "vegetarian",
		Avoid: []string{"mushroom"},
	})
	assert.NoError(t, err)
	assert.Len(t, plan, 1)
	for _, meal := range plan[0].Meals {
		assert.Equal(t, 2, meal.Dish.DishID)
	}
}

func TestPlanService_Generate_SingleCandidateFillsEverySlot(t *testing.T) {
	dishRepo := mocks.NewDishRepository(t)
	prefRepo := mocks.NewPreferenceRepository(t)
	svc := service.NewPlanService(dishRepo, prefRepo)

	dishRepo.On("FindDishes", domain.DishFilter{}).Return([]domain.Dish{
		{ID: 42, Name: "Nasi Goreng"},
	}, nil).Once()

	plan, err := svc.Generate(7, service.PlanOptions{Days: 2})
	assert.NoError(t, err)
	for _, day := range plan {
		for _, meal := range day.Meals {
			assert.Equal(t, 42, meal.Dish.DishID)
		}
	}
}

func TestPlanService_Generate_SkipsNamelessDishes(t *testing.T) {
	dishRepo := mocks.NewDishRepository(t)
	prefRepo := mocks.NewPreferenceRepository(t)
	svc := service.NewPlanService(dishRepo, prefRepo)

	dishRepo.On("FindDishes", domain.DishFilter{}).Return([]domain.Dish{
		{ID: 1, Name: ""},
		{ID: 2, Name: "Mee Goreng"},
	}, nil).Once()

	plan, err := svc.Generate(7, service.PlanOptions{Days: 1})
	assert.NoError(t, err)
	ids := planDishIDs(plan)
	assert.False(t, ids[1])
	assert.True(t, ids[2])
}

func TestPlanService_GenerateSimple_PositionalFill(t *testing.T) {
	dishRepo := mocks.NewDishRepository(t)
	prefRepo := mocks.NewPreferenceRepository(t)
	svc := service.NewPlanService(dishRepo, prefRepo)

	prefRepo.On("FindPreferences", 7).Return(nil, nil).Once()
	dishRepo.On("FindDishes", domain.DishFilter{Limit: 6}).Return(dishCatalog(6), nil).Once()

	plan, err := svc.GenerateSimple(7, 2)
	assert.NoError(t, err)
	assert.Len(t, plan, 2)

	// Slot (day, meal) takes dish day*3+meal while the fetch lasts.
	assert.Equal(t, 1, plan[0].Meals[0].Dish.DishID)
	assert.Equal(t, 2, plan[0].Meals[1].Dish.DishID)
	assert.Equal(t, 3, plan[0].Meals[2].Dish.DishID)
	assert.Equal(t, 4, plan[1].Meals[0].Dish.DishID)
	assert.Equal(t, 5, plan[1].Meals[1].Dish.DishID)
	assert.Equal(t, 6, plan[1].Meals[2].Dish.DishID)
}

func TestPlanService_GenerateSimple_ShortCatalogWrapsAround(t *testing.T) {
	dishRepo := mocks.NewDishRepository(t)
	prefRepo := mocks.NewPreferenceRepository(t)
	svc := service.NewPlanService(dishRepo, prefRepo)

	prefRepo.On("FindPreferences", 7).Return(nil, nil).Once()
	dishRepo.On("FindDishes", domain.DishFilter{Limit: 6}).Return(dishCatalog(2), nil).Once()

	plan, err := svc.GenerateSimple(7, 2)
	assert.NoError(t, err)

	// Positional fill covers (0,0) and (0,1); the rest wrap via (day+meal) mod 2.
	assert.Equal(t, 1, plan[0].Meals[0].Dish.DishID)
	assert.Equal(t, 2, plan[0].Meals[1].Dish.DishID)
	assert.Equal(t, 1, plan[0].Meals[2].Dish.DishID)
	assert.Equal(t, 2, plan[1].Meals[0].Dish.DishID)
	assert.Equal(t, 1, plan[1].Meals[1].Dish.DishID)
	assert.Equal(t, 2, plan[1].Meals[2].Dish.DishID)
}

func TestPlanService_GenerateSimple_EmptyCatalogLeavesSlotsNil(t *testing.T) {
	dishRepo := mocks.NewDishRepository(t)
	prefRepo := mocks.NewPreferenceRepository(t)
	svc := service.NewPlanService(dishRepo, prefRepo)

	prefRepo.On("FindPreferences", 7).Return(nil, nil).Once()
	dishRepo.On("FindDishes", domain.DishFilter{Limit: 3}).Return(nil, nil).Once()

	plan, err := svc.GenerateSimple(7, 1)
	assert.NoError(t, err)
	assert.Len(t, plan, 1)
	for _, meal := range plan[0].Meals {
		assert.Nil(t, meal.Dish)
	}
}

func TestPlanService_GenerateSimple_AppliesStoredHalalPreference(t *testing.T) {
	dishRepo := mocks.NewDishRepository(t)
	prefRepo := mocks.NewPreferenceRepository(t)
	svc := service.NewPlanService(dishRepo, prefRepo)

	halal := true
	prefRepo.On("FindPreferences", 7).
		Return(&domain.UserPreferences{UserID: 7, Halal: &halal}, nil).Once()
	dishRepo.On("FindDishes", domain.DishFilter{Halal: &halal, Limit: 3}).
		Return(dishCatalog(3), nil).Once()

	plan, err := svc.GenerateSimple(7, 1)
	assert.NoError(t, err)
	assert.Len(t, plan, 1)
}
