package tests

import (
	"testing"

	"bitechoice/internal/chatbot"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected chatbot.IntentResult
	}{
		{
			name:     "greeting",
			message:  "Hello there!",
			expected: chatbot.IntentResult{Intent: chatbot.IntentGreeting},
		},
		{
			name:     "malay_greeting",
			message:  "apa khabar",
			expected: chatbot.IntentResult{Intent: chatbot.IntentGreeting},
		},
		{
			name:    "greeting_wins_over_suggestion_and_budget",
			message: "hi, can you suggest something for RM 20",
			// First keyword match wins even when later patterns also apply.
			expected: chatbot.IntentResult{Intent: chatbot.IntentGreeting},
		},
		{
			name:     "recipe",
			message:  "any recipe for laksa?",
			expected: chatbot.IntentResult{Intent: chatbot.IntentRecipe},
		},
		{
			name:     "meal_plan",
			message:  "make me a 7-day meal plan",
			expected: chatbot.IntentResult{Intent: chatbot.IntentMealPlan},
		},
		{
			name:     "nearby",
			message:  "restaurants near me please",
			expected: chatbot.IntentResult{Intent: chatbot.IntentNearby},
		},
		{
			name:     "suggestion",
			message:  "suggest something cheap",
			expected: chatbot.IntentResult{Intent: chatbot.IntentSuggestion},
		},
		{
			name:     "budget_range",
			message:  "around RM 10-15",
			expected: chatbot.IntentResult{Intent: chatbot.IntentBudget, BudgetMin: 10, BudgetMax: 15},
		},
		{
			name:     "budget_single_number",
			message:  "under 20 ringgit",
			expected: chatbot.IntentResult{Intent: chatbot.IntentBudget, BudgetMin: 20},
		},
		{
			name:    "budget_false_positive_on_stray_number",
			message: "see you at 7",
			// Any 1-3 digit number reads as a budget once the keyword
			// intents have passed on the message.
			expected: chatbot.IntentResult{Intent: chatbot.IntentBudget, BudgetMin: 7},
		},
		{
			name:     "halal_filter",
			message:  "halal food only",
			expected: chatbot.IntentResult{Intent: chatbot.IntentFilter, Halal: true},
		},
		{
			name:     "health",
			message:  "something healthy tonight",
			expected: chatbot.IntentResult{Intent: chatbot.IntentHealth},
		},
		{
			name:     "unknown",
			message:  "asdf qwerty",
			expected: chatbot.IntentResult{Intent: chatbot.IntentUnknown},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, chatbot.Classify(testCase.message))
		})
	}
}
