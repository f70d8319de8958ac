package httpapi

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"bitechoice/internal/domain"
	"bitechoice/internal/service"

	"github.com/gorilla/mux"
)

// Bot is the slice of the chatbot engine the HTTP layer needs.
type Bot interface {
	Ask(ctx context.Context, userID int, message string, lat, lng float64) (string, error)
	History(userID int) ([]domain.ChatMessage, error)
	ClearHistory(userID int) error
}

type Handler struct {
	Suggestions service.SuggestionServiceInterface
	Plans       service.PlanServiceInterface
	Reviews     service.ReviewServiceInterface
	History     service.HistoryServiceInterface
	Preferences service.PreferenceServiceInterface
	Restaurants service.RestaurantServiceInterface
	Dishes      service.DishServiceInterface
	MealPlans   service.MealPlanServiceInterface
	Search      service.SearchServiceInterface
	Analytics   service.AnalyticsInterface
	Chatbot     Bot
}

func (h *Handler) RegisterPublicRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/search", h.searchRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/nearby", h.getNearbyRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/qrcode", h.getRestaurantQRCode).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/dishes", h.getRestaurantDishes).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/reviews", h.getRestaurantReviews).Methods("GET")

	r.HandleFunc("/api/dishes/{id}", h.getDish).Methods("GET")
	r.HandleFunc("/api/dishes/{id}/reviews", h.getDishReviews).Methods("GET")

	r.HandleFunc("/api/search", h.search).Methods("GET")

	r.HandleFunc("/api/wheel/spin", h.spinWheel).Methods("GET")
	r.HandleFunc("/api/analytics/top-today", h.getTopToday).Methods("GET")
	r.HandleFunc("/api/analytics/top-alltime", h.getTopAllTime).Methods("GET")
}

func (h *Handler) RegisterProtectedRoutes(r *mux.Router) {
	r.HandleFunc("/api/suggestions", h.getSuggestions).Methods("GET")
	// generate must be registered ahead of the {id} route.
	r.HandleFunc("/api/meal-plans/generate", h.generateMealPlan).Methods("GET")
	r.HandleFunc("/api/meal-plans", h.createMealPlan).Methods("POST")
	r.HandleFunc("/api/meal-plans", h.getMealPlans).Methods("GET")
	r.HandleFunc("/api/meal-plans/{id}", h.getMealPlan).Methods("GET")
	r.HandleFunc("/api/meal-plans/{id}/items", h.addMealPlanItem).Methods("POST")
	r.HandleFunc("/api/preferences", h.getPreferences).Methods("GET")
	r.HandleFunc("/api/preferences", h.updatePreferences).Methods("PUT")
	r.HandleFunc("/api/history", h.getMealHistory).Methods("GET")
	r.HandleFunc("/api/history", h.addMealHistory).Methods("POST")
	r.HandleFunc("/api/reviews", h.createReview).Methods("POST")
	r.HandleFunc("/api/chatbot/ask", h.askBot).Methods("POST")
	r.HandleFunc("/api/chatbot/history", h.getChatHistory).Methods("GET")
	r.HandleFunc("/api/chatbot/history", h.clearChatHistory).Methods("DELETE")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "bitechoice",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getSuggestions(w http.ResponseWriter, r *http.Request) {
	opts := service.SuggestOptions{
		Halal:    parseBoolParam(r.URL.Query().Get("halal")),
		MaxPrice: parseFloatParam(r.URL.Query().Get("max_price")),
		Cuisine:  r.URL.Query().Get("cuisine"),
	}

	suggestions, err := h.Suggestions.Suggest(userIDFrom(r), opts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"suggestions": suggestions})
}

func (h *Handler) generateMealPlan(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	days := 3
	if raw := q.Get("days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			days = parsed
		}
	}

	opts := service.PlanOptions{
		Days:   days,
		Halal:  parseBoolParam(q.Get("halal")),
		Budget: strings.ToLower(q.Get("budget")),
		Diet:   strings.ToLower(q.Get("diet")),
		Avoid:  parseCSVParam(q.Get("avoid")),
	}

	plan, err := h.Plans.Generate(userIDFrom(r), opts)
	if err != nil {
		if errors.Is(err, service.ErrNoDishes) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Generated meal plan",
		"user_id": userIDFrom(r),
		"filters": map[string]interface{}{
			"days":   opts.Days,
			"halal":  opts.Halal,
			"budget": opts.Budget,
			"diet":   opts.Diet,
			"avoid":  opts.Avoid,
		},
		"plan": plan,
	})
}

func (h *Handler) createMealPlan(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		PlanName string `json:"plan_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	plan, err := h.MealPlans.Create(userIDFrom(r), payload.PlanName)
	if err != nil {
		if errors.Is(err, service.ErrMissingPlanName) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Meal plan created",
		"plan":    plan,
	})
}

func (h *Handler) getMealPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.MealPlans.List(userIDFrom(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"plans": plans})
}

func (h *Handler) getMealPlan(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	plan, err := h.MealPlans.Get(userIDFrom(r), id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			http.Error(w, "Meal plan not found", http.StatusNotFound)
		case errors.Is(err, service.ErrPlanNotOwned):
			http.Error(w, err.Error(), http.StatusForbidden)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"plan": plan})
}

func (h *Handler) addMealPlanItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var payload struct {
		MealDate string `json:"meal_date"`
		MealType string `json:"meal_type"`
		DishID   int    `json:"dish_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.MealPlans.AddItem(userIDFrom(r), id, parseDateParam(payload.MealDate), payload.MealType, payload.DishID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingItemFields), errors.Is(err, service.ErrInvalidMealType):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrPlanNotOwned):
			http.Error(w, err.Error(), http.StatusForbidden)
		case errors.Is(err, sql.ErrNoRows):
			http.Error(w, "Dish not found", http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Meal added to plan",
		"item":    item,
	})
}

func (h *Handler) getPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.Preferences.Get(userIDFrom(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if prefs == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{"preferences": map[string]interface{}{}})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"preferences": prefs})
}

func (h *Handler) updatePreferences(w http.ResponseWriter, r *http.Request) {
	var prefs domain.UserPreferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.Preferences.Update(userIDFrom(r), &prefs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Preferences updated",
		"preferences": updated,
	})
}

func (h *Handler) getMealHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.History.List(userIDFrom(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"history": history})
}

func (h *Handler) addMealHistory(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		DishID int `json:"dish_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry, err := h.History.Log(r.Context(), userIDFrom(r), payload.DishID)
	if err != nil {
		if errors.Is(err, service.ErrMissingDish) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Meal added to history",
		"item":    entry,
	})
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var review domain.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	review.UserID = userIDFrom(r)

	if err := h.Reviews.Create(r.Context(), &review); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating), errors.Is(err, service.ErrMissingTarget):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrDuplicateReview):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Review added",
		"review":  review,
	})
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	restaurant, dishes, err := h.Restaurants.Get(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Restaurant not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"restaurant": restaurant,
		"dishes":     dishes,
	})
}

func (h *Handler) searchRestaurants(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		http.Error(w, "Search query required", http.StatusBadRequest)
		return
	}

	restaurants, err := h.Restaurants.Search(query)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	opts := service.SearchOptions{
		Type:  strings.ToLower(q.Get("type")),
		Page:  page,
		Limit: limit,
		Halal: parseBoolParam(q.Get("halal")),
	}

	result, err := h.Search.Search(q.Get("q"), opts)
	if err != nil {
		if errors.Is(err, service.ErrMissingQuery) || errors.Is(err, service.ErrInvalidSearchType) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) getNearbyRestaurants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(q.Get("lng"), 64)
	if latErr != nil || lngErr != nil {
		http.Error(w, "lat and lng are required", http.StatusBadRequest)
		return
	}
	radius, _ := strconv.ParseFloat(q.Get("radius"), 64)

	nearby, err := h.Restaurants.Nearby(lat, lng, radius)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, nearby)
}

func (h *Handler) getRestaurantQRCode(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	png, err := h.Restaurants.ShareQRCode(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Restaurant not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) getRestaurantDishes(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	dishes, err := h.Dishes.ListForRestaurant(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"dishes": dishes})
}

func (h *Handler) getDish(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	dish, err := h.Dishes.Get(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Dish not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"dish": dish})
}

func (h *Handler) getDishReviews(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	reviews, err := h.Reviews.ListDishReviews(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"reviews": reviews})
}

func (h *Handler) getRestaurantReviews(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	reviews, err := h.Reviews.ListRestaurantReviews(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"reviews": reviews})
}

func (h *Handler) spinWheel(w http.ResponseWriter, r *http.Request) {
	dish, err := h.Dishes.Spin()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if dish == nil {
		http.Error(w, "No dishes available", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"dish": dish})
}

func (h *Handler) getTopToday(w http.ResponseWriter, r *http.Request) {
	top, err := h.Analytics.TopToday()
	if err != nil {
		writeJSON(w, http.StatusOK, []interface{}{})
		return
	}
	writeJSON(w, http.StatusOK, top)
}

func (h *Handler) getTopAllTime(w http.ResponseWriter, r *http.Request) {
	top, err := h.Analytics.TopAllTime()
	if err != nil {
		writeJSON(w, http.StatusOK, []interface{}{})
		return
	}
	writeJSON(w, http.StatusOK, top)
}

func (h *Handler) askBot(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message string  `json:"message"`
		Lat     float64 `json:"lat"`
		Lng     float64 `json:"lng"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(payload.Message) == "" {
		http.Error(w, "message required", http.StatusBadRequest)
		return
	}

	reply, err := h.Chatbot.Ask(r.Context(), userIDFrom(r), payload.Message, payload.Lat, payload.Lng)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"reply": reply})
}

func (h *Handler) getChatHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.Chatbot.History(userIDFrom(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"history": history})
}

func (h *Handler) clearChatHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.Chatbot.ClearHistory(userIDFrom(r)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Chat history cleared"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// parseBoolParam keeps the original tri-state query convention:
// "true"/"1" and "false"/"0" are explicit, anything else means unset.
func parseBoolParam(raw string) *bool {
	switch raw {
	case "true", "1":
		v := true
		return &v
	case "false", "0":
		v := false
		return &v
	}
	return nil
}

func parseFloatParam(raw string) *float64 {
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		return nil
	}
	return &value
}

// parseDateParam accepts a plain date or a full timestamp; a zero time
// signals the caller that the field was missing or malformed.
func parseDateParam(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	if parsed, err := time.Parse("2006-01-02", raw); err == nil {
		return parsed
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed
	}
	return time.Time{}
}

func parseCSVParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.ToLower(strings.TrimSpace(part)); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	return keywords
}
