package main

import (
	"context"
	"log"
	"time"

	"bitechoice/config"
	httpapi "bitechoice/internal/api/http"
	"bitechoice/internal/chatbot"
	"bitechoice/internal/service"
	"bitechoice/internal/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	writer := config.NewKafkaWriter(config.EventsTopic)
	defer writer.Close()
	publisher := storage.NewKafkaPublisher(writer)

	cache := storage.NewRedisCache(rdb, 7*24*time.Hour)

	suggestions := service.NewSuggestionService(repo, repo, repo)
	plans := service.NewPlanService(repo, repo)
	reviews := service.NewReviewService(repo, cache, publisher)
	history := service.NewHistoryService(repo, publisher)
	preferences := service.NewPreferenceService(repo)
	restaurants := service.NewRestaurantService(repo, repo, config.Getenv("PUBLIC_URL", "http://localhost"))
	dishes := service.NewDishService(repo)
	mealPlans := service.NewMealPlanService(repo, repo)
	search := service.NewSearchService(repo)
	analytics := service.NewAnalyticsService(db, rdb)
	bot := chatbot.NewEngine(suggestions, plans, restaurants, repo)

	reader := config.NewKafkaReader(config.EventsTopic, "bitechoice-analytics")
	defer reader.Close()
	consumer := service.NewConsumer(reader, storage.NewAnalyticsStore(db, rdb))
	go consumer.Start(context.Background())

	handler := &httpapi.Handler{
		Suggestions: suggestions,
		Plans:       plans,
		Reviews:     reviews,
		History:     history,
		Preferences: preferences,
		Restaurants: restaurants,
		Dishes:      dishes,
		MealPlans:   mealPlans,
		Search:      search,
		Analytics:   analytics,
		Chatbot:     bot,
	}

	httpapi.StartServer(":"+config.Getenv("PORT", "8080"), httpapi.NewRouter(handler))
}
