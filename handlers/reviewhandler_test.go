package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wifispots-server/internals"
	"wifispots-server/model"
)

type stubStore struct {
	locations map[string]*model.Location
}

func newStubStore(locations ...*model.Location) *stubStore {
	store := &stubStore{locations: make(map[string]*model.Location)}
	for _, location := range locations {
		store.locations[location.ID] = location
	}
	return store
}

func (store *stubStore) GetLocationByID(ctx context.Context, locationID string) (model.Location, error) {
	location, ok := store.locations[locationID]
	if !ok {
		return model.Location{}, model.ErrLocationNotFound
	}
	snapshot := *location
	snapshot.Reviews = append([]model.Review(nil), location.Reviews...)
	return snapshot, nil
}

func (store *stubStore) SaveReview(ctx context.Context, review *model.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", model.ErrValidation)
	}
	location := store.locations[review.LocationID]
	for i := range location.Reviews {
		if location.Reviews[i].ID == review.ID {
			location.Reviews[i] = *review
			return nil
		}
	}
	location.Reviews = append(location.Reviews, *review)
	return nil
}

func (store *stubStore) DeleteReview(ctx context.Context, locationID, reviewID string) error {
	location, ok := store.locations[locationID]
	if !ok {
		return model.ErrLocationNotFound
	}
	for i := range location.Reviews {
		if location.Reviews[i].ID == reviewID {
			location.Reviews = append(location.Reviews[:i], location.Reviews[i+1:]...)
			return nil
		}
	}
	return model.ErrReviewNotFound
}

func (store *stubStore) UpdateRating(ctx context.Context, locationID string, rating int) error {
	location, ok := store.locations[locationID]
	if !ok {
		return model.ErrLocationNotFound
	}
	location.Rating = rating
	return nil
}

type stubResolver struct{}

func (stubResolver) Resolve(ctx context.Context, identity string) (string, error) {
	if identity != "simon@example.com" {
		return "", model.ErrIdentityNotFound
	}
	return "Simon Holmes", nil
}

func newTestHandler(locations ...*model.Location) (*ReviewHandler, *stubStore) {
	store := newStubStore(locations...)
	engine := internals.NewReviewEngine(store, stubResolver{})
	return NewReviewHandler(engine), store
}

func decodeError(t *testing.T, body *strings.Reader) errorPayload {
	t.Helper()
	var payload errorPayload
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		t.Fatalf("error body not decodable: %v", err)
	}
	return payload
}

func TestCreateReviewHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		handler, store := newTestHandler(&model.Location{ID: "loc-1", Name: "Starcups"})

		r := httptest.NewRequest(http.MethodPost, "/api/locations/loc-1/reviews?:locationid=loc-1",
			strings.NewReader(`{"rating": 4, "reviewText": "good coffee"}`))
		r.Header.Set("Authorization", "Bearer simon@example.com")
		w := httptest.NewRecorder()

		handler.CreateReview(w, r)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var review model.Review
		if err := json.NewDecoder(w.Body).Decode(&review); err != nil {
			t.Fatalf("response not decodable: %v", err)
		}
		if review.Author != "Simon Holmes" {
			t.Fatalf("expected the resolved author, got %q", review.Author)
		}
		if store.locations["loc-1"].Rating != 4 {
			t.Fatalf("expected rating 4, got %d", store.locations["loc-1"].Rating)
		}
	})

	t.Run("location not found", func(t *testing.T) {
		handler, _ := newTestHandler()

		r := httptest.NewRequest(http.MethodPost, "/api/locations/missing/reviews?:locationid=missing",
			strings.NewReader(`{"rating": 4, "reviewText": "good"}`))
		r.Header.Set("Authorization", "Bearer simon@example.com")
		w := httptest.NewRecorder()

		handler.CreateReview(w, r)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		payload := decodeError(t, strings.NewReader(w.Body.String()))
		if payload.Message == "" || payload.Kind != "not_found" {
			t.Fatalf("expected a stable not_found payload, got %+v", payload)
		}
	})

	t.Run("missing identity", func(t *testing.T) {
		handler, _ := newTestHandler(&model.Location{ID: "loc-1"})

		r := httptest.NewRequest(http.MethodPost, "/api/locations/loc-1/reviews?:locationid=loc-1",
			strings.NewReader(`{"rating": 4, "reviewText": "good"}`))
		w := httptest.NewRecorder()

		handler.CreateReview(w, r)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		payload := decodeError(t, strings.NewReader(w.Body.String()))
		if payload.Kind != "identity" {
			t.Fatalf("expected an identity payload, got %+v", payload)
		}
	})

	t.Run("store validation", func(t *testing.T) {
		handler, _ := newTestHandler(&model.Location{ID: "loc-1"})

		r := httptest.NewRequest(http.MethodPost, "/api/locations/loc-1/reviews?:locationid=loc-1",
			strings.NewReader(`{"rating": 9, "reviewText": "good"}`))
		r.Header.Set("Authorization", "Bearer simon@example.com")
		w := httptest.NewRecorder()

		handler.CreateReview(w, r)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		payload := decodeError(t, strings.NewReader(w.Body.String()))
		if payload.Kind != "validation" {
			t.Fatalf("expected a validation payload, got %+v", payload)
		}
	})
}

func TestReadReviewHandler(t *testing.T) {
	handler, _ := newTestHandler(&model.Location{
		ID:   "loc-1",
		Name: "Starcups",
		Reviews: []model.Review{
			{ID: "rev-1", LocationID: "loc-1", Author: "Charlie", Rating: 5, ReviewText: "great"},
		},
	})

	r := httptest.NewRequest(http.MethodGet, "/api/locations/loc-1/reviews/rev-1?:locationid=loc-1&:reviewid=rev-1", nil)
	w := httptest.NewRecorder()

	handler.ReadReview(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var located model.LocatedReview
	if err := json.NewDecoder(w.Body).Decode(&located); err != nil {
		t.Fatalf("response not decodable: %v", err)
	}
	if located.Location.Name != "Starcups" || located.Review.ID != "rev-1" {
		t.Fatalf("expected the composite read, got %+v", located)
	}
}

func TestUpdateReviewHandlerReplacesFields(t *testing.T) {
	handler, store := newTestHandler(&model.Location{
		ID: "loc-1",
		Reviews: []model.Review{
			{ID: "rev-1", LocationID: "loc-1", Author: "Charlie", Rating: 5, ReviewText: "great"},
		},
	})

	r := httptest.NewRequest(http.MethodPut, "/api/locations/loc-1/reviews/rev-1?:locationid=loc-1&:reviewid=rev-1",
		strings.NewReader(`{"author": "Charles", "rating": 2, "reviewText": "went downhill"}`))
	w := httptest.NewRecorder()

	handler.UpdateReview(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	stored := store.locations["loc-1"].Reviews[0]
	if stored.Author != "Charles" || stored.Rating != 2 || stored.ReviewText != "went downhill" {
		t.Fatalf("expected a full replace, got %+v", stored)
	}
	if store.locations["loc-1"].Rating != 2 {
		t.Fatalf("expected rating 2, got %d", store.locations["loc-1"].Rating)
	}
}

func TestDeleteReviewHandlerNoContent(t *testing.T) {
	handler, store := newTestHandler(&model.Location{
		ID: "loc-1",
		Reviews: []model.Review{
			{ID: "rev-1", LocationID: "loc-1", Author: "Charlie", Rating: 5, ReviewText: "great"},
		},
	})

	r := httptest.NewRequest(http.MethodDelete, "/api/locations/loc-1/reviews/rev-1?:locationid=loc-1&:reviewid=rev-1", nil)
	w := httptest.NewRecorder()

	handler.DeleteReview(w, r)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Fatalf("expected an empty body, got %q", w.Body.String())
	}
	if len(store.locations["loc-1"].Reviews) != 0 {
		t.Fatal("expected the review removed")
	}
}

func TestDeleteReviewHandlerNotFound(t *testing.T) {
	handler, _ := newTestHandler(&model.Location{ID: "loc-1"})

	r := httptest.NewRequest(http.MethodDelete, "/api/locations/loc-1/reviews/missing?:locationid=loc-1&:reviewid=missing", nil)
	w := httptest.NewRecorder()

	handler.DeleteReview(w, r)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
