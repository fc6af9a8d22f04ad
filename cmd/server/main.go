package main

import (
	"log"

	"github.com/jengzang/tripsheet-backend-go/internal/api"
	"github.com/jengzang/tripsheet-backend-go/internal/config"
	"github.com/jengzang/tripsheet-backend-go/internal/database"
	"github.com/jengzang/tripsheet-backend-go/internal/handler"
	"github.com/jengzang/tripsheet-backend-go/internal/repository"
	"github.com/jengzang/tripsheet-backend-go/internal/service"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化数据库
	dbConfig := database.Config{
		Path: cfg.DBPath,
	}
	if err := database.Init(dbConfig); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	db := database.GetDB()

	// 仓储层
	geoCacheRepo := repository.NewGeoCacheRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// 服务层
	itinerarySvc := service.NewItineraryService(service.NewHTTPSheetFetcher(), settingsRepo)
	settingsSvc := service.NewSettingsService(settingsRepo, itinerarySvc)
	geocodeSvc := service.NewGeocodingService(
		geoCacheRepo,
		service.NewIntervalPacer(cfg.GeocodeInterval),
		cfg.NominatimURL,
	)

	// 首次启动时从环境变量写入 sheet URL
	if err := settingsSvc.Seed(cfg.SheetURL); err != nil {
		log.Printf("Failed to seed sheet url: %v", err)
	}

	// 初始化路由
	router := api.SetupRouter(cfg, api.Handlers{
		Itinerary: handler.NewItineraryHandler(itinerarySvc),
		Geocode:   handler.NewGeocodeHandler(geocodeSvc),
		Settings:  handler.NewSettingsHandler(settingsSvc),
	})

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
