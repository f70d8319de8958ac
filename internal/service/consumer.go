package service

import (
	"context"
	"encoding/json"
	"log"

	"bitechoice/internal/domain"

	"github.com/segmentio/kafka-go"
)

// Consumer folds bitechoice-events messages into the analytics store:
// meal_logged bumps popularity counters, new_review recomputes the dish's
// average rating.
type Consumer struct {
	Reader *kafka.Reader
	Store  ConsumerStore
}

func NewConsumer(reader *kafka.Reader, store ConsumerStore) *Consumer {
	return &Consumer{Reader: reader, Store: store}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting events consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("Error reading message: %v", err)
			continue
		}

		var msg domain.EventMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.Process(ctx, msg)
	}
}

func (c *Consumer) Process(ctx context.Context, msg domain.EventMessage) {
	if msg.DishID == 0 {
		return
	}

	switch msg.Type {
	case "meal_logged":
		if err := c.Store.IncrMealCount(ctx, msg.DishID); err != nil {
			log.Printf("Error updating meal count for dish %d: %v", msg.DishID, err)
		}
	case "new_review":
		if err := c.Store.UpdateDishRating(msg.DishID); err != nil {
			log.Printf("Error updating rating for dish %d: %v", msg.DishID, err)
		}
	}
}
