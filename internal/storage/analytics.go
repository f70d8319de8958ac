package storage

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// AnalyticsStore is the write side of popularity tracking: the events
// consumer feeds it, the analytics service reads the keys it maintains.
type AnalyticsStore struct {
	db  *sql.DB
	rdb *redis.Client
}

func NewAnalyticsStore(db *sql.DB, rdb *redis.Client) *AnalyticsStore {
	return &AnalyticsStore{db: db, rdb: rdb}
}

func (s *AnalyticsStore) IncrMealCount(ctx context.Context, dishID int) error {
	member := strconv.Itoa(dishID)

	dailyKey := "popular:daily:" + time.Now().Format("2006-01-02")
	if err := s.rdb.ZIncrBy(ctx, dailyKey, 1, member).Err(); err != nil {
		return err
	}
	s.rdb.Expire(ctx, dailyKey, 7*24*time.Hour)

	return s.rdb.ZIncrBy(ctx, "popular:alltime", 1, member).Err()
}

// UpdateDishRating recomputes the dish's average from its reviews.
func (s *AnalyticsStore) UpdateDishRating(dishID int) error {
	_, err := s.db.Exec(`
		UPDATE dishes
		SET avg_rating = (
			SELECT ROUND(AVG(rating::numeric), 2)
			FROM reviews
			WHERE dish_id = $1
		)
		WHERE id = $1`, dishID)
	return err
}
