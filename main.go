package main

import (
	"log"

	"github.com/joho/godotenv"

	"wifispots-server/config"
	"wifispots-server/db"
	"wifispots-server/externals"
	"wifispots-server/handlers"
	"wifispots-server/internals"
	"wifispots-server/webapp"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
	cfg := config.LoadConfig()

	// init db
	database, err := db.InitDB(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer func() {
		sqlDB, err := database.DB()
		if err != nil {
			log.Println("Failed to get DB from gorm: ", err)
			return
		}
		err = sqlDB.Close()
		if err != nil {
			log.Println("Failed closing connection: ", err)
		}
	}()

	// API tier
	store := db.NewStore(database)
	resolver := externals.NewUserAuthorResolver(db.NewUserDAO(database))
	engine := internals.NewReviewEngine(store, resolver)
	locationHandler := handlers.NewLocationHandler(store)
	reviewHandler := handlers.NewReviewHandler(engine)

	// web tier, relaying to the API over HTTP
	controller := webapp.NewController(
		webapp.NewAPIClient(cfg.API.BaseURL),
		webapp.NewTemplateRenderer(),
		webapp.SearchOrigin{
			Lng:         cfg.Search.Lng,
			Lat:         cfg.Search.Lat,
			MaxDistance: cfg.Search.MaxDistance,
		},
	)

	webServer := SetupWebServer(cfg.Server.WebAddress, controller)
	go func() {
		log.Printf("Starting web server on %s", cfg.Server.WebAddress)
		err := webServer.ListenAndServe()
		if err != nil {
			log.Fatalf("Web server stopped: %v", err)
		}
	}()

	apiServer := SetupAPIServer(cfg.Server.APIAddress, locationHandler, reviewHandler)
	log.Printf("Starting API server on %s", cfg.Server.APIAddress)
	err = apiServer.ListenAndServe()
	if err != nil {
		log.Fatalf("API server stopped: %v", err)
	}
}
