package main

import (
	"context"
	"time"

	"groupdine/config"
	httpapi "groupdine/internal/api/http"
	"groupdine/internal/service"
	"groupdine/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	cache := storage.NewGenerationCache(rdb, 24*time.Hour)

	kafkaWriter := config.NewKafkaWriter("recommendations")
	defer kafkaWriter.Close()
	publisher := storage.NewKafkaPublisher(kafkaWriter)

	extractorCfg := config.LoadExtractorSettings()
	var extractor service.PreferenceExtractor
	if extractorCfg.BaseURL != "" {
		extractor = storage.NewExtractorClient(extractorCfg.BaseURL, extractorCfg.APIKey, extractorCfg.Model, 30*time.Second)
	}

	qrGen := service.DefaultInviteQRGenerator{BaseURL: config.PublicBaseURL()}
	eventService := service.NewEventService(repo, qrGen)
	userService := service.NewUserService(repo)
	dislikeService := service.NewDislikeService(repo)
	plannerService := service.NewPlannerService(repo, repo, repo, repo, repo, cache, publisher, extractor, extractorCfg.Model)

	// Background consumer turns published recommendation signals into
	// booking tasks for the follow-up call workflow.
	kafkaReader := config.NewKafkaReader("recommendations", "booking-dispatch")
	defer kafkaReader.Close()
	consumer := service.NewConsumer(kafkaReader, repo)
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(eventService, userService, dislikeService, plannerService)
	httpapi.StartServer(config.ServerAddr(), httpapi.NewRouter(handler))
}
