package service

import (
	"context"
	"errors"
	"time"

	"bitechoice/internal/domain"
)

var (
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrMissingTarget   = errors.New("restaurant_id or dish_id is required")
	ErrDuplicateReview = errors.New("review already exists for this dish")
)

type ReviewService struct {
	repository ReviewRepository
	cache      MarkerCache
	publisher  EventPublisher
}

func NewReviewService(repository ReviewRepository, cache MarkerCache, publisher EventPublisher) *ReviewService {
	return &ReviewService{
		repository: repository,
		cache:      cache,
		publisher:  publisher,
	}
}

// Create validates and stores a review. Dish reviews are guarded against
// duplicates with a Redis marker; the marker is best-effort, the row itself
// is the source of truth.
func (s *ReviewService) Create(ctx context.Context, review *domain.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return ErrInvalidRating
	}
	if review.RestaurantID == 0 && review.DishID == 0 {
		return ErrMissingTarget
	}

	var markerKey string
	if review.DishID != 0 && s.cache != nil {
		markerKey = s.cache.ReviewMarkerKey(review.UserID, review.DishID)
		if exists, _ := s.cache.Exists(ctx, markerKey); exists {
			return ErrDuplicateReview
		}
	}

	if err := s.repository.InsertReview(review); err != nil {
		return err
	}

	if markerKey != "" {
		_ = s.cache.SetMarker(ctx, markerKey)
	}

	if s.publisher != nil && review.DishID != 0 {
		_ = s.publisher.PublishEvent(ctx, domain.EventMessage{
			Type:      "new_review",
			UserID:    review.UserID,
			DishID:    review.DishID,
			Rating:    review.Rating,
			Timestamp: time.Now(),
		})
	}

	return nil
}

func (s *ReviewService) ListDishReviews(dishID int) ([]domain.Review, error) {
	return s.repository.ListDishReviews(dishID)
}

func (s *ReviewService) ListRestaurantReviews(restaurantID int) ([]domain.Review, error) {
	return s.repository.ListRestaurantReviews(restaurantID)
}

var _ ReviewServiceInterface = (*ReviewService)(nil)
