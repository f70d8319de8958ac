package service

import (
	"context"
	"errors"
	"time"

	"bitechoice/internal/domain"
)

var ErrMissingDish = errors.New("dish_id is required")

type HistoryService struct {
	repository HistoryRepository
	publisher  EventPublisher
}

func NewHistoryService(repository HistoryRepository, publisher EventPublisher) *HistoryService {
	return &HistoryService{repository: repository, publisher: publisher}
}

// Log appends a meal to the user's history and emits a meal_logged event for
// the popularity consumer. Publishing is fire-and-forget; the append is not
// rolled back when the broker is down.
func (s *HistoryService) Log(ctx context.Context, userID, dishID int) (*domain.MealHistoryEntry, error) {
	if dishID == 0 {
		return nil, ErrMissingDish
	}

	entry := &domain.MealHistoryEntry{UserID: userID, DishID: dishID}
	if err := s.repository.InsertHistory(entry); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.PublishEvent(ctx, domain.EventMessage{
			Type:      "meal_logged",
			UserID:    userID,
			DishID:    dishID,
			Timestamp: time.Now(),
		})
	}

	return entry, nil
}

func (s *HistoryService) List(userID int) ([]domain.MealHistoryEntry, error) {
	return s.repository.ListHistory(userID)
}

var _ HistoryServiceInterface = (*HistoryService)(nil)
