package storage

import (
	"database/sql"
	"testing"
	"time"

	"bitechoice/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func setupTestRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return NewPostgresRepository(mockDB), mock, func() { mockDB.Close() }
}

func dishRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "restaurant_id", "name", "description", "price", "halal",
		"avg_rating", "created_at",
		"r_id", "r_name", "r_address", "r_cuisine", "r_halal",
		"r_lat", "r_lng", "r_avg_price", "r_created_at",
	})
}

func TestFindDishes_NoFilter(t *testing.T) {
	repo, mock, cleanup := setupTestRepo(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("FROM dishes d JOIN restaurants r ON d.restaurant_id = r.id ORDER BY d.id").
		WillReturnRows(dishRows().
			AddRow(1, 10, "Nasi Lemak", "coconut rice", 6.5, true, 4.5, now,
				10, "Warung Kita", "Jln Satu", "malaysian", true, 2.3, 111.8, 12, now))

	dishes, err := repo.FindDishes(domain.DishFilter{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(dishes) != 1 {
		t.Fatalf("expected 1 dish, got %d", len(dishes))
	}
	if dishes[0].Restaurant == nil || dishes[0].Restaurant.Name != "Warung Kita" {
		t.Fatalf("expected resolved restaurant, got %+v", dishes[0].Restaurant)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFindDishes_BuildsWhereClause(t *testing.T) {
	repo, mock, cleanup := setupTestRepo(t)
	defer cleanup()

	halal := true
	min, max := 5.0, 20.0
	mock.ExpectQuery(`WHERE d\.halal = \$1 AND d\.price >= \$2 AND d\.price <= \$3 AND LOWER\(r\.cuisine_type\) = LOWER\(\$4\) ORDER BY d\.id LIMIT 6`).
		WithArgs(true, 5.0, 20.0, "thai").
		WillReturnRows(dishRows())

	_, err := repo.FindDishes(domain.DishFilter{
		Halal:    &halal,
		MinPrice: &min,
		MaxPrice: &max,
		Cuisine:  "thai",
		Limit:    6,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFindPreferences_AbsentRowIsNotAnError(t *testing.T) {
	repo, mock, cleanup := setupTestRepo(t)
	defer cleanup()

	mock.ExpectQuery("FROM user_preferences").
		WithArgs(7).
		WillReturnError(sql.ErrNoRows)

	prefs, err := repo.FindPreferences(7)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if prefs != nil {
		t.Fatalf("expected nil preferences, got %+v", prefs)
	}
}

func TestUpsertPreferences(t *testing.T) {
	repo, mock, cleanup := setupTestRepo(t)
	defer cleanup()

	halal := true
	budgetMax := 20
	mock.ExpectQuery(`ON CONFLICT \(user_id\) DO UPDATE`).
		WithArgs(7, &halal, nil, &budgetMax, "malaysian").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	prefs := &domain.UserPreferences{
		UserID: 7, Halal: &halal, BudgetMax: &budgetMax, PreferredCuisines: "malaysian",
	}
	if err := repo.UpsertPreferences(prefs); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if prefs.ID != 3 {
		t.Fatalf("expected id 3, got %d", prefs.ID)
	}
}

func TestInsertReview_NullsZeroTargets(t *testing.T) {
	repo, mock, cleanup := setupTestRepo(t)
	defer cleanup()

	mock.ExpectQuery("INSERT INTO reviews").
		WithArgs(7, 0, 1, 5, "Great!").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))

	review := &domain.Review{UserID: 7, DishID: 1, Rating: 5, ReviewText: "Great!"}
	if err := repo.InsertReview(review); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if review.ID != 1 {
		t.Fatalf("expected id 1, got %d", review.ID)
	}
}

func TestInsertHistory(t *testing.T) {
	repo, mock, cleanup := setupTestRepo(t)
	defer cleanup()

	eatenAt := time.Now()
	mock.ExpectQuery("INSERT INTO meal_history").
		WithArgs(7, 3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "eaten_at"}).AddRow(5, eatenAt))

	entry := &domain.MealHistoryEntry{UserID: 7, DishID: 3}
	if err := repo.InsertHistory(entry); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if entry.ID != 5 || !entry.EatenAt.Equal(eatenAt) {
		t.Fatalf("unexpected entry %+v", entry)
	}
}

func TestSearchDishesPaged_CountsThenPages(t *testing.T) {
	repo, mock, cleanup := setupTestRepo(t)
	defer cleanup()

	halal := true
	now := time.Now()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM dishes d JOIN restaurants r`).
		WithArgs("%asam%laksa%", true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`WHERE \(d\.name ILIKE \$1 OR d\.description ILIKE \$1\) AND d\.halal = \$2 ORDER BY d\.name LIMIT \$3 OFFSET \$4`).
		WithArgs("%asam%laksa%", true, 10, 10).
		WillReturnRows(dishRows().
			AddRow(3, 10, "Asam Laksa", "sour fish broth", 9.0, true, 4.2, now,
				10, "Warung Kita", "Jln Satu", "malaysian", true, 2.3, 111.8, 12, now))

	dishes, total, err := repo.SearchDishesPaged("asam laksa", &halal, 10, 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if total != 12 {
		t.Fatalf("expected total 12, got %d", total)
	}
	if len(dishes) != 1 || dishes[0].Restaurant == nil {
		t.Fatalf("expected 1 dish with restaurant, got %+v", dishes)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSearchRestaurantsPaged(t *testing.T) {
	repo, mock, cleanup := setupTestRepo(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM restaurants`).
		WithArgs("%thai%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`ORDER BY name LIMIT \$2 OFFSET \$3`).
		WithArgs("%thai%", 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "address", "cuisine_type", "is_halal",
			"latitude", "longitude", "average_price", "created_at",
		}).AddRow(2, "Thai Corner", "Jln Dua", "thai", false, 2.3, 111.8, 15, time.Now()))

	restaurants, total, err := repo.SearchRestaurantsPaged("thai", nil, 10, 0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if total != 1 || len(restaurants) != 1 {
		t.Fatalf("expected 1 restaurant with total 1, got %d and %+v", total, restaurants)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsertMealPlan(t *testing.T) {
	repo, mock, cleanup := setupTestRepo(t)
	defer cleanup()

	createdAt := time.Now()
	mock.ExpectQuery("INSERT INTO meal_plans").
		WithArgs(7, "Ramadan week").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(2, createdAt))

	plan := &domain.MealPlan{UserID: 7, PlanName: "Ramadan week"}
	if err := repo.InsertMealPlan(plan); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if plan.ID != 2 || !plan.CreatedAt.Equal(createdAt) {
		t.Fatalf("unexpected plan %+v", plan)
	}
}

func TestGetMealPlan_LoadsItemsWithDishes(t *testing.T) {
	repo, mock, cleanup := setupTestRepo(t)
	defer cleanup()

	now := time.Now()
	mealDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM meal_plans WHERE id = \\$1").
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "plan_name", "created_at"}).
			AddRow(2, 7, "Lunches", now))
	mock.ExpectQuery("FROM meal_plan_items i").
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "plan_id", "dish_id", "meal_date", "meal_type",
			"d_id", "d_restaurant_id", "d_name", "d_description", "d_price", "d_halal",
			"d_avg_rating", "d_created_at",
			"r_id", "r_name", "r_address", "r_cuisine", "r_halal",
			"r_lat", "r_lng", "r_avg_price", "r_created_at",
		}).AddRow(4, 2, 3, mealDate, "lunch",
			3, 10, "Asam Laksa", "sour fish broth", 9.0, true, 4.2, now,
			10, "Warung Kita", "Jln Satu", "malaysian", true, 2.3, 111.8, 12, now))

	plan, err := repo.GetMealPlan(2)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if plan.UserID != 7 || len(plan.Items) != 1 {
		t.Fatalf("unexpected plan %+v", plan)
	}
	if plan.Items[0].Dish == nil || plan.Items[0].Dish.Name != "Asam Laksa" {
		t.Fatalf("expected resolved dish, got %+v", plan.Items[0].Dish)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFindUserMealPlan_AbsentRowIsNotAnError(t *testing.T) {
	repo, mock, cleanup := setupTestRepo(t)
	defer cleanup()

	mock.ExpectQuery("FROM meal_plans WHERE id = \\$1 AND user_id = \\$2").
		WithArgs(2, 8).
		WillReturnError(sql.ErrNoRows)

	plan, err := repo.FindUserMealPlan(2, 8)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if plan != nil {
		t.Fatalf("expected nil plan, got %+v", plan)
	}
}

func TestEnsureSchemaExecutesStatements(t *testing.T) {
	repo, mock, cleanup := setupTestRepo(t)
	defer cleanup()

	for i := 0; i < 8; i++ {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS").
			WillReturnResult(sqlmock.NewResult(0, 0))
	}

	if err := repo.EnsureSchema(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
