package main

import (
	"net/http"
	"time"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
	"github.com/rs/cors"

	"wifispots-server/handlers"
	"wifispots-server/webapp"
)

func SetupAPIServer(addr string, locationHandler *handlers.LocationHandler, reviewHandler *handlers.ReviewHandler) *http.Server {
	standardMiddleware := alice.New(recoverPanic, logRequest, secureHeaders)
	apiMiddleware := standardMiddleware.Append(makeResponseJSON)

	mux := pat.New()

	mux.Get("/api/locations", apiMiddleware.ThenFunc(locationHandler.ListNearby))
	mux.Post("/api/locations", apiMiddleware.ThenFunc(locationHandler.CreateLocation))
	mux.Get("/api/locations/:locationid", apiMiddleware.ThenFunc(locationHandler.GetLocation))

	mux.Post("/api/locations/:locationid/reviews", apiMiddleware.ThenFunc(reviewHandler.CreateReview))
	mux.Get("/api/locations/:locationid/reviews/:reviewid", apiMiddleware.ThenFunc(reviewHandler.ReadReview))
	mux.Put("/api/locations/:locationid/reviews/:reviewid", apiMiddleware.ThenFunc(reviewHandler.UpdateReview))
	mux.Del("/api/locations/:locationid/reviews/:reviewid", apiMiddleware.ThenFunc(reviewHandler.DeleteReview))

	corsHandler := cors.New(cors.Options{
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	return &http.Server{
		Addr:         addr,
		Handler:      corsHandler.Handler(mux),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}

func SetupWebServer(addr string, controller *webapp.Controller) *http.Server {
	standardMiddleware := alice.New(recoverPanic, logRequest, secureHeaders)

	mux := pat.New()

	mux.Get("/", standardMiddleware.ThenFunc(controller.HomeList))
	mux.Get("/location/:locationid", standardMiddleware.ThenFunc(controller.LocationInfo))
	mux.Get("/location/:locationid/review/new", standardMiddleware.ThenFunc(controller.AddReviewForm))
	mux.Post("/location/:locationid/review", standardMiddleware.ThenFunc(controller.DoAddReview))

	return &http.Server{
		Addr:         addr,
		Handler:      mux,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}
