package tests

import (
	"context"
	"errors"
	"testing"

	"bitechoice/internal/domain"
	"bitechoice/internal/mocks"
	"bitechoice/internal/service"
)

func TestConsumer_Process(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		message      domain.EventMessage
		prepareMocks func(store *mocks.ConsumerStore)
	}{
		{
			name:    "meal_logged_bumps_counter",
			message: domain.EventMessage{Type: "meal_logged", UserID: 7, DishID: 3},
			prepareMocks: func(store *mocks.ConsumerStore) {
				store.On("IncrMealCount", ctx, 3).Return(nil).Once()
			},
		},
		{
			name:    "new_review_recomputes_rating",
			message: domain.EventMessage{Type: "new_review", UserID: 7, DishID: 3, Rating: 5},
			prepareMocks: func(store *mocks.ConsumerStore) {
				store.On("UpdateDishRating", 3).Return(nil).Once()
			},
		},
		{
			name:         "missing_dish_id_skipped",
			message:      domain.EventMessage{Type: "meal_logged", UserID: 7},
			prepareMocks: func(store *mocks.ConsumerStore) {},
		},
		{
			name:         "unknown_type_skipped",
			message:      domain.EventMessage{Type: "dish_deleted", DishID: 3},
			prepareMocks: func(store *mocks.ConsumerStore) {},
		},
		{
			name:    "store_error_is_swallowed",
			message: domain.EventMessage{Type: "meal_logged", DishID: 3},
			prepareMocks: func(store *mocks.ConsumerStore) {
				store.On("IncrMealCount", ctx, 3).Return(errors.New("redis down")).Once()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := mocks.NewConsumerStore(t)
			testCase.prepareMocks(store)

			consumer := service.NewConsumer(nil, store)
			consumer.Process(ctx, testCase.message)
		})
	}
}
