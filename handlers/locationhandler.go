package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"wifispots-server/model"
)

type locationFinder interface {
	GetLocationByID(ctx context.Context, locationID string) (model.Location, error)
	GetLocationsNear(ctx context.Context, lng, lat, maxDistance float64) ([]model.LocationSummary, error)
	CreateLocation(ctx context.Context, location *model.Location) error
}

type LocationHandler struct {
	locations locationFinder
}

func NewLocationHandler(locations locationFinder) *LocationHandler {
	return &LocationHandler{locations: locations}
}

func (handler *LocationHandler) ListNearby(w http.ResponseWriter, r *http.Request) {
	lng, err := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation", "lng must be a number")
		return
	}
	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation", "lat must be a number")
		return
	}
	maxDistance, err := strconv.ParseFloat(r.URL.Query().Get("maxDistance"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation", "maxDistance must be a number")
		return
	}

	summaries, err := handler.locations.GetLocationsNear(r.Context(), lng, lat, maxDistance)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summaries)
}

func (handler *LocationHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	locationID := r.URL.Query().Get(":locationid")

	location, err := handler.locations.GetLocationByID(r.Context(), locationID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, location)
}

type locationRequest struct {
	Name    string    `json:"name"`
	Address string    `json:"address"`
	Coords  []float64 `json:"coords"`
}

func (handler *LocationHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var body locationRequest
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation", "Invalid request body")
		return
	}
	if len(body.Coords) != 2 {
		writeError(w, http.StatusBadRequest, "validation", "coords must be [lng, lat]")
		return
	}

	location := model.Location{
		Name:    body.Name,
		Address: body.Address,
		Lng:     body.Coords[0],
		Lat:     body.Coords[1],
	}
	err = handler.locations.CreateLocation(r.Context(), &location)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, location)
}
