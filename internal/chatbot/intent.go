package chatbot

import (
	"regexp"
	"strconv"
	"strings"
)

type Intent string

const (
	IntentGreeting   Intent = "greeting"
	IntentRecipe     Intent = "recipe"
	IntentMealPlan   Intent = "meal_plan"
	IntentNearby     Intent = "nearby_restaurant"
	IntentSuggestion Intent = "suggestion"
	IntentBudget     Intent = "budget"
	IntentFilter     Intent = "filter"
	IntentHealth     Intent = "health"
	IntentUnknown    Intent = "unknown"
)

type IntentResult struct {
	Intent    Intent `json:"intent"`
	BudgetMin int    `json:"budget_min,omitempty"`
	BudgetMax int    `json:"budget_max,omitempty"`
	Halal     bool   `json:"halal,omitempty"`
}

var (
	greetingRe   = regexp.MustCompile(`\b(hi|hello|hey|hai|apa khabar|salam)\b`)
	recipeRe     = regexp.MustCompile(`\b(recipe|how to cook|resepi|cara masak)\b`)
	mealPlanRe   = regexp.MustCompile(`\b(plan|meal plan|weekly plan|3-day|7-day|week plan)\b`)
	nearbyRe     = regexp.MustCompile(`\b(nearby|near me|nearby restaurant|sibu|near)\b`)
	suggestionRe = regexp.MustCompile(`\b(suggest|what should i eat|i want|i feel like|recommend)\b`)
	budgetRe     = regexp.MustCompile(`(?:rm\s?)?\s?(\d{1,3})(?:\s?-\s?(?:rm\s?)?(\d{1,3}))?`)
	halalRe      = regexp.MustCompile(`\bhalal\b`)
	healthRe     = regexp.MustCompile(`\b(healthy|health|diet|low calorie|kurus)\b`)
)

// Classify maps free text to the first matching intent. The order is a
// priority list, not independent classification: the budget pattern matches
// any 1-3 digit number, so it must run after the keyword intents or it would
// swallow messages like "suggest something for RM 20". That also means any
// stray short number (a date, a phone fragment) classifies as budget before
// the unknown fallback.
func Classify(text string) IntentResult {
	msg := strings.ToLower(text)

	switch {
	case greetingRe.MatchString(msg):
		return IntentResult{Intent: IntentGreeting}
	case recipeRe.MatchString(msg):
		return IntentResult{Intent: IntentRecipe}
	case mealPlanRe.MatchString(msg):
		return IntentResult{Intent: IntentMealPlan}
	case nearbyRe.MatchString(msg):
		return IntentResult{Intent: IntentNearby}
	case suggestionRe.MatchString(msg):
		return IntentResult{Intent: IntentSuggestion}
	}

	if m := budgetRe.FindStringSubmatch(msg); m != nil {
		result := IntentResult{Intent: IntentBudget}
		result.BudgetMin, _ = strconv.Atoi(m[1])
		if m[2] != "" {
			result.BudgetMax, _ = strconv.Atoi(m[2])
		}
		return result
	}

	if halalRe.MatchString(msg) {
		return IntentResult{Intent: IntentFilter, Halal: true}
	}
	if healthRe.MatchString(msg) {
		return IntentResult{Intent: IntentHealth}
	}
	return IntentResult{Intent: IntentUnknown}
}
