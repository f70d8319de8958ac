package chatbot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bitechoice/internal/domain"
	"bitechoice/internal/service"
)

var ErrEmptyMessage = errors.New("message required")

const chatHistoryLimit = 50

// Engine produces scripted, intent-routed replies. It never calls an
// external model; every answer is templated over the core services.
type Engine struct {
	suggestions service.SuggestionServiceInterface
	plans       service.PlanServiceInterface
	restaurants service.RestaurantServiceInterface
	chats       service.ChatRepository
}

func NewEngine(
	suggestions service.SuggestionServiceInterface,
	plans service.PlanServiceInterface,
	restaurants service.RestaurantServiceInterface,
	chats service.ChatRepository,
) *Engine {
	return &Engine{
		suggestions: suggestions,
		plans:       plans,
		restaurants: restaurants,
		chats:       chats,
	}
}

// Ask generates a reply for the message and records both sides of the
// exchange in chat history.
func (e *Engine) Ask(ctx context.Context, userID int, message string, lat, lng float64) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	reply, err := e.reply(userID, message, lat, lng)
	if err != nil {
		return "", err
	}

	_ = e.chats.SaveChatMessage(&domain.ChatMessage{UserID: userID, Role: "user", Message: message})
	_ = e.chats.SaveChatMessage(&domain.ChatMessage{UserID: userID, Role: "assistant", Message: reply})

	return reply, nil
}

func (e *Engine) History(userID int) ([]domain.ChatMessage, error) {
	return e.chats.ListChatHistory(userID, chatHistoryLimit)
}

func (e *Engine) ClearHistory(userID int) error {
	return e.chats.ClearChatHistory(userID)
}

func (e *Engine) reply(userID int, message string, lat, lng float64) (string, error) {
	result := Classify(message)

	switch result.Intent {
	case IntentGreeting:
		return "Hey there! I'm BiteChoice, your food helper. I can suggest meals, share simple recipes, or find restaurants near you. What are you craving today?", nil

	case IntentRecipe:
		suggestions, err := e.suggestions.Suggest(userID, service.SuggestOptions{})
		if err != nil {
			return "", err
		}
		if len(suggestions) == 0 {
			return "I couldn't find a dish to base a recipe on. Tell me a food you like and I can help from there!", nil
		}
		top := suggestions[0]
		return fmt.Sprintf("Sure! Here's a simple recipe for %s:\n\n1) Prepare your ingredients.\n2) Saute onions and garlic.\n3) Add %s.\n4) Season and cook until it's ready.\n\nEnjoy your meal!", top.Name, top.Name), nil

	case IntentNearby:
		if lat == 0 || lng == 0 {
			return "I need your latitude and longitude to look up nearby restaurants. Can you send them?", nil
		}
		nearby, err := e.restaurants.Nearby(lat, lng, 10)
		if err != nil {
			return "", err
		}
		if len(nearby) == 0 {
			return "I checked around, but I couldn't find any restaurants nearby. Maybe try expanding your area?", nil
		}
		lines := make([]string, 0, 3)
		for _, r := range nearby {
			lines = append(lines, fmt.Sprintf("%s (%s, ~%.2f km away)", r.Name, r.Cuisine, r.DistanceKm))
			if len(lines) == 3 {
				break
			}
		}
		return fmt.Sprintf("Here are some nearby places you might like:\n%s\n\nWant me to suggest a dish from one of these?", strings.Join(lines, ", ")), nil

	case IntentSuggestion:
		suggestions, err := e.suggestions.Suggest(userID, service.SuggestOptions{})
		if err != nil {
			return "", err
		}
		if len(suggestions) == 0 {
			return "I tried my best, but I couldn't find a good suggestion. Maybe try adjusting your budget or telling me what cuisine you prefer?", nil
		}
		lines := make([]string, 0, 3)
		for _, d := range suggestions {
			lines = append(lines, fmt.Sprintf("%s - RM%.2f at %s", d.Name, d.Price, restaurantName(d.Restaurant)))
			if len(lines) == 3 {
				break
			}
		}
		return "Here are some options I think you'll enjoy:\n- " + strings.Join(lines, "\n- "), nil

	case IntentMealPlan:
		plan, err := e.plans.GenerateSimple(userID, 3)
		if err != nil {
			return "", err
		}
		var out strings.Builder
		out.WriteString("Here's a simple 3-day meal plan just for you!\n\n")
		for _, day := range plan {
			fmt.Fprintf(&out, "Day %d:\n", day.Day)
			for _, meal := range day.Meals {
				name := "No dish available"
				if meal.Dish != nil {
					name = meal.Dish.Name
				}
				fmt.Fprintf(&out, " - %s: %s\n", meal.MealType, name)
			}
			out.WriteString("\n")
		}
		return strings.TrimSpace(out.String()), nil

	case IntentBudget:
		opts := service.SuggestOptions{}
		ceiling := result.BudgetMax
		if ceiling == 0 {
			ceiling = result.BudgetMin
		}
		if ceiling > 0 {
			maxPrice := float64(ceiling)
			opts.MaxPrice = &maxPrice
		}
		suggestions, err := e.suggestions.Suggest(userID, opts)
		if err != nil {
			return "", err
		}
		if len(suggestions) == 0 {
			return "Looks like nothing fits that budget. Maybe try increasing it a little?", nil
		}
		lines := make([]string, 0, 5)
		for _, d := range suggestions {
			lines = append(lines, fmt.Sprintf("%s (RM%.2f)", d.Name, d.Price))
			if len(lines) == 5 {
				break
			}
		}
		return "Here are some options within your budget:\n" + strings.Join(lines, ", "), nil

	case IntentFilter:
		if result.Halal {
			halal := true
			suggestions, err := e.suggestions.Suggest(userID, service.SuggestOptions{Halal: &halal})
			if err != nil {
				return "", err
			}
			if len(suggestions) == 0 {
				return "I couldn't find any halal options yet. Maybe we need to add more data.", nil
			}
			lines := make([]string, 0, 3)
			for _, d := range suggestions {
				lines = append(lines, fmt.Sprintf("%s at %s", d.Name, restaurantName(d.Restaurant)))
				if len(lines) == 3 {
					break
				}
			}
			return "Here are some halal-friendly choices:\n" + strings.Join(lines, "\n"), nil
		}
		return "Got it! I'll remember your preference.", nil

	case IntentHealth:
		return "For something lighter, try salads, grilled dishes, or anything steamed. Ask me for suggestions and I'll keep your budget in mind!", nil

	default:
		suggestions, err := e.suggestions.Suggest(userID, service.SuggestOptions{})
		if err != nil {
			return "", err
		}
		if len(suggestions) > 0 {
			top := suggestions[0]
			return fmt.Sprintf("How about %s? It's RM%.2f and quite popular.", top.Name, top.Price), nil
		}
		return "I'm not too sure yet. Try asking for suggestions, recipes, or nearby restaurants!", nil
	}
}

func restaurantName(r *domain.RestaurantSummary) string {
	if r == nil {
		return "an unknown spot"
	}
	return r.Name
}
