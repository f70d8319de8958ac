package storage

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"bitechoice/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

const dishColumns = `
	d.id, d.restaurant_id, d.name, COALESCE(d.description, ''), d.price, d.halal,
	COALESCE(d.avg_rating, 0), d.created_at,
	r.id, r.name, COALESCE(r.address, ''), COALESCE(r.cuisine_type, ''), COALESCE(r.is_halal, FALSE),
	COALESCE(r.latitude, 0), COALESCE(r.longitude, 0), COALESCE(r.average_price, 0), r.created_at`

func scanDishWithRestaurant(rows interface{ Scan(...interface{}) error }) (domain.Dish, error) {
	var dish domain.Dish
	var rest domain.Restaurant
	err := rows.Scan(
		&dish.ID, &dish.RestaurantID, &dish.Name, &dish.Description, &dish.Price, &dish.Halal,
		&dish.AvgRating, &dish.CreatedAt,
		&rest.ID, &rest.Name, &rest.Address, &rest.CuisineType, &rest.Halal,
		&rest.Latitude, &rest.Longitude, &rest.AveragePrice, &rest.CreatedAt,
	)
	if err != nil {
		return dish, err
	}
	dish.Restaurant = &rest
	return dish, nil
}

// FindDishes fetches restaurant-resolved dishes matching the filter, in the
// store's natural id order.
func (r *PostgresRepository) FindDishes(filter domain.DishFilter) ([]domain.Dish, error) {
	var conditions []string
	var args []interface{}

	add := func(cond string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter.Halal != nil {
		add("d.halal = $%d", *filter.Halal)
	}
	if filter.MinPrice != nil {
		add("d.price >= $%d", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		add("d.price <= $%d", *filter.MaxPrice)
	}
	if filter.Cuisine != "" {
		add("LOWER(r.cuisine_type) = LOWER($%d)", filter.Cuisine)
	}

	query := "SELECT " + dishColumns + " FROM dishes d JOIN restaurants r ON d.restaurant_id = r.id"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY d.id"
	if filter.Limit > 0 {
		query += " LIMIT " + strconv.Itoa(filter.Limit)
	}

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []domain.Dish
	for rows.Next() {
		dish, err := scanDishWithRestaurant(rows)
		if err != nil {
			continue
		}
		dishes = append(dishes, dish)
	}
	return dishes, rows.Err()
}

func (r *PostgresRepository) GetDish(id int) (*domain.Dish, error) {
	row := r.DB.QueryRow(
		"SELECT "+dishColumns+" FROM dishes d JOIN restaurants r ON d.restaurant_id = r.id WHERE d.id = $1", id)
	dish, err := scanDishWithRestaurant(row)
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *PostgresRepository) ListRestaurantDishes(restaurantID int) ([]domain.Dish, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, name, COALESCE(description, ''), price, halal, COALESCE(avg_rating, 0), created_at
		FROM dishes
		WHERE restaurant_id = $1
		ORDER BY id`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []domain.Dish
	for rows.Next() {
		var dish domain.Dish
		if err := rows.Scan(&dish.ID, &dish.RestaurantID, &dish.Name, &dish.Description,
			&dish.Price, &dish.Halal, &dish.AvgRating, &dish.CreatedAt); err != nil {
			continue
		}
		dishes = append(dishes, dish)
	}
	return dishes, rows.Err()
}

func (r *PostgresRepository) ListRestaurants() ([]domain.Restaurant, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, COALESCE(address, ''), COALESCE(cuisine_type, ''), COALESCE(is_halal, FALSE),
		       COALESCE(latitude, 0), COALESCE(longitude, 0), COALESCE(average_price, 0), created_at
		FROM restaurants
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRestaurants(rows)
}

func (r *PostgresRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow(`
		SELECT id, name, COALESCE(address, ''), COALESCE(cuisine_type, ''), COALESCE(is_halal, FALSE),
		       COALESCE(latitude, 0), COALESCE(longitude, 0), COALESCE(average_price, 0), created_at
		FROM restaurants
		WHERE id = $1`, id).
		Scan(&rest.ID, &rest.Name, &rest.Address, &rest.CuisineType, &rest.Halal,
			&rest.Latitude, &rest.Longitude, &rest.AveragePrice, &rest.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) SearchRestaurants(query string) ([]domain.Restaurant, error) {
	pattern := "%" + strings.ReplaceAll(strings.TrimSpace(query), " ", "%") + "%"
	rows, err := r.DB.Query(`
		SELECT id, name, COALESCE(address, ''), COALESCE(cuisine_type, ''), COALESCE(is_halal, FALSE),
		       COALESCE(latitude, 0), COALESCE(longitude, 0), COALESCE(average_price, 0), created_at
		FROM restaurants
		WHERE name ILIKE $1 OR cuisine_type ILIKE $1 OR address ILIKE $1
		ORDER BY name`, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRestaurants(rows)
}

// SearchDishesPaged matches the pattern against dish name and description
// and returns one page plus the total match count.
func (r *PostgresRepository) SearchDishesPaged(query string, halal *bool, limit, offset int) ([]domain.Dish, int, error) {
	pattern := "%" + strings.ReplaceAll(strings.TrimSpace(query), " ", "%") + "%"
	where := "(d.name ILIKE $1 OR d.description ILIKE $1)"
	args := []interface{}{pattern}
	if halal != nil {
		args = append(args, *halal)
		where += fmt.Sprintf(" AND d.halal = $%d", len(args))
	}

	var total int
	err := r.DB.QueryRow(
		"SELECT COUNT(*) FROM dishes d JOIN restaurants r ON d.restaurant_id = r.id WHERE "+where, args...,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	rows, err := r.DB.Query(
		"SELECT "+dishColumns+" FROM dishes d JOIN restaurants r ON d.restaurant_id = r.id WHERE "+where+
			fmt.Sprintf(" ORDER BY d.name LIMIT $%d OFFSET $%d", len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var dishes []domain.Dish
	for rows.Next() {
		dish, err := scanDishWithRestaurant(rows)
		if err != nil {
			continue
		}
		dishes = append(dishes, dish)
	}
	return dishes, total, rows.Err()
}

func (r *PostgresRepository) SearchRestaurantsPaged(query string, halal *bool, limit, offset int) ([]domain.Restaurant, int, error) {
	pattern := "%" + strings.ReplaceAll(strings.TrimSpace(query), " ", "%") + "%"
	where := "(name ILIKE $1 OR cuisine_type ILIKE $1 OR address ILIKE $1)"
	args := []interface{}{pattern}
	if halal != nil {
		args = append(args, *halal)
		where += fmt.Sprintf(" AND COALESCE(is_halal, FALSE) = $%d", len(args))
	}

	var total int
	err := r.DB.QueryRow("SELECT COUNT(*) FROM restaurants WHERE "+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	rows, err := r.DB.Query(`
		SELECT id, name, COALESCE(address, ''), COALESCE(cuisine_type, ''), COALESCE(is_halal, FALSE),
		       COALESCE(latitude, 0), COALESCE(longitude, 0), COALESCE(average_price, 0), created_at
		FROM restaurants
		WHERE `+where+fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	restaurants, err := collectRestaurants(rows)
	return restaurants, total, err
}

func collectRestaurants(rows *sql.Rows) ([]domain.Restaurant, error) {
	var restaurants []domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.CuisineType, &rest.Halal,
			&rest.Latitude, &rest.Longitude, &rest.AveragePrice, &rest.CreatedAt); err != nil {
			continue
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) FindRecentHistory(userID, limit int) ([]domain.MealHistoryEntry, error) {
	rows, err := r.DB.Query(`
		SELECT id, user_id, dish_id, eaten_at
		FROM meal_history
		WHERE user_id = $1
		ORDER BY eaten_at DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.MealHistoryEntry
	for rows.Next() {
		var entry domain.MealHistoryEntry
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.DishID, &entry.EatenAt); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *PostgresRepository) ListHistory(userID int) ([]domain.MealHistoryEntry, error) {
	rows, err := r.DB.Query(`
		SELECT mh.id, mh.user_id, mh.dish_id, mh.eaten_at,
		       d.id, d.restaurant_id, d.name, COALESCE(d.description, ''), d.price, d.halal,
		       COALESCE(d.avg_rating, 0), d.created_at
		FROM meal_history mh
		JOIN dishes d ON mh.dish_id = d.id
		WHERE mh.user_id = $1
		ORDER BY mh.eaten_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.MealHistoryEntry
	for rows.Next() {
		var entry domain.MealHistoryEntry
		var dish domain.Dish
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.DishID, &entry.EatenAt,
			&dish.ID, &dish.RestaurantID, &dish.Name, &dish.Description, &dish.Price, &dish.Halal,
			&dish.AvgRating, &dish.CreatedAt); err != nil {
			continue
		}
		entry.Dish = &dish
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *PostgresRepository) InsertHistory(entry *domain.MealHistoryEntry) error {
	return r.DB.QueryRow(
		"INSERT INTO meal_history (user_id, dish_id) VALUES ($1, $2) RETURNING id, eaten_at",
		entry.UserID, entry.DishID,
	).Scan(&entry.ID, &entry.EatenAt)
}

// FindPreferences returns (nil, nil) when the user has no stored record;
// absence is a valid state, not an error.
func (r *PostgresRepository) FindPreferences(userID int) (*domain.UserPreferences, error) {
	var prefs domain.UserPreferences
	err := r.DB.QueryRow(`
		SELECT id, user_id, halal, budget_min, budget_max, COALESCE(preferred_cuisines, '')
		FROM user_preferences
		WHERE user_id = $1`, userID).
		Scan(&prefs.ID, &prefs.UserID, &prefs.Halal, &prefs.BudgetMin, &prefs.BudgetMax, &prefs.PreferredCuisines)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (r *PostgresRepository) UpsertPreferences(prefs *domain.UserPreferences) error {
	return r.DB.QueryRow(`
		INSERT INTO user_preferences (user_id, halal, budget_min, budget_max, preferred_cuisines)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET halal = EXCLUDED.halal,
		    budget_min = EXCLUDED.budget_min,
		    budget_max = EXCLUDED.budget_max,
		    preferred_cuisines = EXCLUDED.preferred_cuisines
		RETURNING id`,
		prefs.UserID, prefs.Halal, prefs.BudgetMin, prefs.BudgetMax, prefs.PreferredCuisines,
	).Scan(&prefs.ID)
}

func (r *PostgresRepository) InsertReview(review *domain.Review) error {
	return r.DB.QueryRow(`
		INSERT INTO reviews (user_id, restaurant_id, dish_id, rating, review_text)
		VALUES ($1, NULLIF($2, 0), NULLIF($3, 0), $4, $5)
		RETURNING id, created_at`,
		review.UserID, review.RestaurantID, review.DishID, review.Rating, review.ReviewText,
	).Scan(&review.ID, &review.CreatedAt)
}

func (r *PostgresRepository) ListDishReviews(dishID int) ([]domain.Review, error) {
	return r.listReviews("dish_id", dishID)
}

func (r *PostgresRepository) ListRestaurantReviews(restaurantID int) ([]domain.Review, error) {
	return r.listReviews("restaurant_id", restaurantID)
}

func (r *PostgresRepository) listReviews(column string, id int) ([]domain.Review, error) {
	rows, err := r.DB.Query(`
		SELECT id, user_id, COALESCE(restaurant_id, 0), COALESCE(dish_id, 0), rating, COALESCE(review_text, ''), created_at
		FROM reviews
		WHERE `+column+` = $1
		ORDER BY created_at DESC`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(&review.ID, &review.UserID, &review.RestaurantID, &review.DishID,
			&review.Rating, &review.ReviewText, &review.CreatedAt); err != nil {
			continue
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

func (r *PostgresRepository) InsertMealPlan(plan *domain.MealPlan) error {
	return r.DB.QueryRow(
		"INSERT INTO meal_plans (user_id, plan_name) VALUES ($1, $2) RETURNING id, created_at",
		plan.UserID, plan.PlanName,
	).Scan(&plan.ID, &plan.CreatedAt)
}

func (r *PostgresRepository) ListMealPlans(userID int) ([]domain.MealPlan, error) {
	rows, err := r.DB.Query(`
		SELECT id, user_id, plan_name, created_at
		FROM meal_plans
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []domain.MealPlan
	for rows.Next() {
		var plan domain.MealPlan
		if err := rows.Scan(&plan.ID, &plan.UserID, &plan.PlanName, &plan.CreatedAt); err != nil {
			continue
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range plans {
		items, err := r.listMealPlanItems(plans[i].ID)
		if err != nil {
			return nil, err
		}
		plans[i].Items = items
	}
	return plans, nil
}

func (r *PostgresRepository) GetMealPlan(id int) (*domain.MealPlan, error) {
	var plan domain.MealPlan
	err := r.DB.QueryRow(
		"SELECT id, user_id, plan_name, created_at FROM meal_plans WHERE id = $1", id,
	).Scan(&plan.ID, &plan.UserID, &plan.PlanName, &plan.CreatedAt)
	if err != nil {
		return nil, err
	}
	items, err := r.listMealPlanItems(plan.ID)
	if err != nil {
		return nil, err
	}
	plan.Items = items
	return &plan, nil
}

// FindUserMealPlan returns (nil, nil) when no plan with that id belongs to
// the user, whether the plan is missing or owned by someone else.
func (r *PostgresRepository) FindUserMealPlan(planID, userID int) (*domain.MealPlan, error) {
	var plan domain.MealPlan
	err := r.DB.QueryRow(
		"SELECT id, user_id, plan_name, created_at FROM meal_plans WHERE id = $1 AND user_id = $2",
		planID, userID,
	).Scan(&plan.ID, &plan.UserID, &plan.PlanName, &plan.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *PostgresRepository) InsertMealPlanItem(item *domain.MealPlanItem) error {
	return r.DB.QueryRow(
		"INSERT INTO meal_plan_items (plan_id, dish_id, meal_date, meal_type) VALUES ($1, $2, $3, $4) RETURNING id",
		item.PlanID, item.DishID, item.MealDate, item.MealType,
	).Scan(&item.ID)
}

func (r *PostgresRepository) listMealPlanItems(planID int) ([]domain.MealPlanItem, error) {
	rows, err := r.DB.Query(`
		SELECT i.id, i.plan_id, i.dish_id, i.meal_date, i.meal_type, `+dishColumns+`
		FROM meal_plan_items i
		JOIN dishes d ON i.dish_id = d.id
		JOIN restaurants r ON d.restaurant_id = r.id
		WHERE i.plan_id = $1
		ORDER BY i.meal_date ASC`, planID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MealPlanItem
	for rows.Next() {
		var item domain.MealPlanItem
		var dish domain.Dish
		var rest domain.Restaurant
		if err := rows.Scan(&item.ID, &item.PlanID, &item.DishID, &item.MealDate, &item.MealType,
			&dish.ID, &dish.RestaurantID, &dish.Name, &dish.Description, &dish.Price, &dish.Halal,
			&dish.AvgRating, &dish.CreatedAt,
			&rest.ID, &rest.Name, &rest.Address, &rest.CuisineType, &rest.Halal,
			&rest.Latitude, &rest.Longitude, &rest.AveragePrice, &rest.CreatedAt); err != nil {
			continue
		}
		dish.Restaurant = &rest
		item.Dish = &dish
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) SaveChatMessage(msg *domain.ChatMessage) error {
	return r.DB.QueryRow(
		"INSERT INTO chat_history (user_id, role, message) VALUES ($1, $2, $3) RETURNING id, created_at",
		msg.UserID, msg.Role, msg.Message,
	).Scan(&msg.ID, &msg.CreatedAt)
}

func (r *PostgresRepository) ListChatHistory(userID, limit int) ([]domain.ChatMessage, error) {
	rows, err := r.DB.Query(`
		SELECT id, user_id, role, message, created_at
		FROM chat_history
		WHERE user_id = $1
		ORDER BY created_at ASC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.ChatMessage
	for rows.Next() {
		var msg domain.ChatMessage
		if err := rows.Scan(&msg.ID, &msg.UserID, &msg.Role, &msg.Message, &msg.CreatedAt); err != nil {
			continue
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

func (r *PostgresRepository) ClearChatHistory(userID int) error {
	_, err := r.DB.Exec("DELETE FROM chat_history WHERE user_id = $1", userID)
	return err
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT,
			cuisine_type TEXT,
			is_halal BOOLEAN DEFAULT FALSE,
			latitude DOUBLE PRECISION,
			longitude DOUBLE PRECISION,
			average_price INTEGER,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS dishes (
			id SERIAL PRIMARY KEY,
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			description TEXT,
			price NUMERIC(8,2) NOT NULL CHECK (price >= 0),
			halal BOOLEAN NOT NULL DEFAULT FALSE,
			avg_rating NUMERIC(3,2),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS user_preferences (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL UNIQUE,
			halal BOOLEAN,
			budget_min INTEGER,
			budget_max INTEGER,
			preferred_cuisines TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS meal_history (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL,
			dish_id INTEGER NOT NULL REFERENCES dishes(id) ON DELETE CASCADE,
			eaten_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL,
			restaurant_id INTEGER REFERENCES restaurants(id) ON DELETE CASCADE,
			dish_id INTEGER REFERENCES dishes(id) ON DELETE CASCADE,
			rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
			review_text TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS meal_plans (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL,
			plan_name TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS meal_plan_items (
			id SERIAL PRIMARY KEY,
			plan_id INTEGER NOT NULL REFERENCES meal_plans(id) ON DELETE CASCADE,
			dish_id INTEGER NOT NULL REFERENCES dishes(id) ON DELETE CASCADE,
			meal_date DATE NOT NULL,
			meal_type TEXT NOT NULL CHECK (meal_type IN ('breakfast', 'lunch', 'dinner'))
		)`,
		`CREATE TABLE IF NOT EXISTS chat_history (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL,
			role TEXT NOT NULL,
			message TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
