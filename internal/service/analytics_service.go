package service

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"bitechoice/internal/domain"

	"github.com/redis/go-redis/v9"
)

const topDishesLimit = 10

// AnalyticsService reads the popularity ZSETs maintained by the events
// consumer and resolves dish names from Postgres.
type AnalyticsService struct {
	db  *sql.DB
	rdb *redis.Client
	ctx context.Context
}

func NewAnalyticsService(db *sql.DB, rdb *redis.Client) *AnalyticsService {
	return &AnalyticsService{
		db:  db,
		rdb: rdb,
		ctx: context.Background(),
	}
}

func (s *AnalyticsService) TopToday() ([]domain.DishAnalytics, error) {
	key := "popular:daily:" + time.Now().Format("2006-01-02")
	return s.topFromZSet(key)
}

func (s *AnalyticsService) TopAllTime() ([]domain.DishAnalytics, error) {
	return s.topFromZSet("popular:alltime")
}

func (s *AnalyticsService) topFromZSet(key string) ([]domain.DishAnalytics, error) {
	members, err := s.rdb.ZRevRangeWithScores(s.ctx, key, 0, topDishesLimit-1).Result()
	if err != nil || len(members) == 0 {
		return s.topFromDB()
	}

	top := make([]domain.DishAnalytics, 0, len(members))
	for _, member := range members {
		dishID, _ := strconv.Atoi(member.Member.(string))
		var name string
		var restaurantID int
		if err := s.db.QueryRow("SELECT name, restaurant_id FROM dishes WHERE id = $1", dishID).
			Scan(&name, &restaurantID); err != nil {
			continue
		}
		top = append(top, domain.DishAnalytics{
			DishID:       dishID,
			DishName:     name,
			RestaurantID: restaurantID,
			Score:        member.Score,
		})
	}
	return top, nil
}

// topFromDB recounts from meal_history when Redis is cold or unavailable.
func (s *AnalyticsService) topFromDB() ([]domain.DishAnalytics, error) {
	rows, err := s.db.Query(`
		SELECT d.id, d.name, d.restaurant_id, COUNT(mh.id) AS score
		FROM dishes d
		JOIN meal_history mh ON mh.dish_id = d.id
		GROUP BY d.id, d.name, d.restaurant_id
		ORDER BY score DESC
		LIMIT $1`, topDishesLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var top []domain.DishAnalytics
	for rows.Next() {
		var d domain.DishAnalytics
		if err := rows.Scan(&d.DishID, &d.DishName, &d.RestaurantID, &d.Score); err != nil {
			continue
		}
		top = append(top, d)
	}
	return top, nil
}

type AnalyticsInterface interface {
	TopToday() ([]domain.DishAnalytics, error)
	TopAllTime() ([]domain.DishAnalytics, error)
}

var _ AnalyticsInterface = (*AnalyticsService)(nil)
