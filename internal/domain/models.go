package domain

import "time"

type Restaurant struct {
	ID           int       `json:"restaurant_id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	CuisineType  string    `json:"cuisine_type"`
	Halal        bool      `json:"is_halal"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	AveragePrice int       `json:"average_price"`
	CreatedAt    time.Time `json:"created_at"`
}

type Dish struct {
	ID           int         `json:"dish_id"`
	RestaurantID int         `json:"restaurant_id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Price        float64     `json:"price"`
	Halal        bool        `json:"halal"`
	AvgRating    float64     `json:"avg_rating"`
	CreatedAt    time.Time   `json:"created_at"`
	Restaurant   *Restaurant `json:"restaurant,omitempty"`
}

// RestaurantSummary is the flattened restaurant block nested inside
// suggestion and plan responses.
type RestaurantSummary struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Cuisine string `json:"cuisine"`
}

type DishSummary struct {
	DishID     int                `json:"dish_id"`
	Name       string             `json:"name"`
	Price      float64            `json:"price"`
	Halal      bool               `json:"halal"`
	Restaurant *RestaurantSummary `json:"restaurant"`
}

// UserPreferences are soft defaults. Nil pointer fields mean "no preference"
// and are distinct from an explicit false/zero.
type UserPreferences struct {
	ID                int    `json:"preference_id"`
	UserID            int    `json:"user_id"`
	Halal             *bool  `json:"halal"`
	BudgetMin         *int   `json:"budget_min"`
	BudgetMax         *int   `json:"budget_max"`
	PreferredCuisines string `json:"preferred_cuisines"`
}

type MealHistoryEntry struct {
	ID      int       `json:"history_id"`
	UserID  int       `json:"user_id"`
	DishID  int       `json:"dish_id"`
	EatenAt time.Time `json:"eaten_at"`
	Dish    *Dish     `json:"dish,omitempty"`
}

type Review struct {
	ID           int       `json:"review_id"`
	UserID       int       `json:"user_id"`
	RestaurantID int       `json:"restaurant_id,omitempty"`
	DishID       int       `json:"dish_id,omitempty"`
	Rating       int       `json:"rating"`
	ReviewText   string    `json:"review_text"`
	CreatedAt    time.Time `json:"created_at"`
}

type ChatMessage struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Role      string    `json:"role"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// DishFilter is the predicate handed to the dish store. Nil fields impose
// no constraint; Limit == 0 means unbounded.
type DishFilter struct {
	Halal    *bool
	MinPrice *float64
	MaxPrice *float64
	Cuisine  string
	Limit    int
}

type PlanDish struct {
	DishID      int                `json:"dish_id"`
	Name        string             `json:"name"`
	Price       float64            `json:"price"`
	Halal       bool               `json:"halal"`
	Description string             `json:"description,omitempty"`
	Restaurant  *RestaurantSummary `json:"restaurant"`
}

type PlanMeal struct {
	MealType string    `json:"meal_type"`
	Dish     *PlanDish `json:"dish"`
}

type PlanDay struct {
	Day   int        `json:"day"`
	Meals []PlanMeal `json:"meals"`
}

// MealPlan is a named, user-owned plan that meals are pinned to by date.
type MealPlan struct {
	ID        int            `json:"plan_id"`
	UserID    int            `json:"user_id"`
	PlanName  string         `json:"plan_name"`
	CreatedAt time.Time      `json:"created_at"`
	Items     []MealPlanItem `json:"items"`
}

type MealPlanItem struct {
	ID       int       `json:"item_id"`
	PlanID   int       `json:"plan_id"`
	DishID   int       `json:"dish_id"`
	MealDate time.Time `json:"meal_date"`
	MealType string    `json:"meal_type"`
	Dish     *Dish     `json:"dish,omitempty"`
}

// SearchResult is the combined envelope returned by the unified search.
// Items holds DishSearchItem and RestaurantSearchItem values depending on
// the requested type.
type SearchResult struct {
	Query string        `json:"query"`
	Type  string        `json:"type"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
	Total int           `json:"total"`
	Items []interface{} `json:"items"`
}

type DishSearchItem struct {
	Kind        string               `json:"kind"`
	DishID      int                  `json:"dish_id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Price       float64              `json:"price"`
	Halal       bool                 `json:"halal"`
	Restaurant  *SearchRestaurantRef `json:"restaurant"`
}

type SearchRestaurantRef struct {
	ID      int    `json:"restaurant_id"`
	Name    string `json:"name"`
	Cuisine string `json:"cuisine_type"`
	Halal   bool   `json:"is_halal"`
}

type RestaurantSearchItem struct {
	Kind         string  `json:"kind"`
	RestaurantID int     `json:"restaurant_id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Cuisine      string  `json:"cuisine_type"`
	Halal        bool    `json:"is_halal"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

type NearbyRestaurant struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Cuisine    string  `json:"cuisine"`
	Halal      bool    `json:"is_halal"`
	Address    string  `json:"address"`
	DistanceKm float64 `json:"distance_km"`
}

type DishAnalytics struct {
	DishID       int     `json:"dish_id"`
	DishName     string  `json:"dish_name"`
	RestaurantID int     `json:"restaurant_id"`
	Score        float64 `json:"score"`
}

// EventMessage is the payload published to the bitechoice-events topic for
// both meal_logged and new_review events.
type EventMessage struct {
	Type      string    `json:"type"`
	UserID    int       `json:"user_id,omitempty"`
	DishID    int       `json:"dish_id"`
	Rating    int       `json:"rating,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
