package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"wifispots-server/internals"
)

type ReviewHandler struct {
	engine *internals.ReviewEngine
}

func NewReviewHandler(engine *internals.ReviewEngine) *ReviewHandler {
	return &ReviewHandler{engine: engine}
}

type reviewRequest struct {
	Author     string `json:"author"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"reviewText"`
}

func bearerIdentity(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func (handler *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	locationID := r.URL.Query().Get(":locationid")

	var body reviewRequest
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation", "Invalid request body")
		return
	}

	// the author display name comes from the resolved identity, not the body
	review, ratingOutcome, err := handler.engine.CreateReview(r.Context(), locationID, bearerIdentity(r), body.Rating, body.ReviewText)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	logRatingOutcome(locationID, ratingOutcome)

	writeJSON(w, http.StatusCreated, review)
}

func (handler *ReviewHandler) ReadReview(w http.ResponseWriter, r *http.Request) {
	locationID := r.URL.Query().Get(":locationid")
	reviewID := r.URL.Query().Get(":reviewid")

	locatedReview, err := handler.engine.GetReview(r.Context(), locationID, reviewID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, locatedReview)
}

func (handler *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	locationID := r.URL.Query().Get(":locationid")
	reviewID := r.URL.Query().Get(":reviewid")

	var body reviewRequest
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation", "Invalid request body")
		return
	}

	review, ratingOutcome, err := handler.engine.UpdateReview(r.Context(), locationID, reviewID, body.Author, body.Rating, body.ReviewText)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	logRatingOutcome(locationID, ratingOutcome)

	writeJSON(w, http.StatusOK, review)
}

func (handler *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	locationID := r.URL.Query().Get(":locationid")
	reviewID := r.URL.Query().Get(":reviewid")

	ratingOutcome, err := handler.engine.DeleteReview(r.Context(), locationID, reviewID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	logRatingOutcome(locationID, ratingOutcome)

	w.WriteHeader(http.StatusNoContent)
}

func logRatingOutcome(locationID string, outcome internals.RatingOutcome) {
	if outcome.Err != nil {
		// the review mutation already succeeded, only the derived rating
		// write failed; the next successful mutation repairs it
		log.Printf("Rating recompute failed for location %s: %v", locationID, outcome.Err)
		return
	}
	if outcome.Updated {
		log.Printf("Average rating for location %s updated to %d", locationID, outcome.Rating)
	}
}
