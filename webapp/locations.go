package webapp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	lookupFailedMessage = "Error looking up nearby places"
	noResultsMessage    = "No places found nearby"
)

// wire shapes of the API tier

type apiLocationSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Rating   int     `json:"rating"`
	Distance float64 `json:"distance"`
}

type apiReview struct {
	ID         string    `json:"id"`
	Author     string    `json:"author"`
	Rating     int       `json:"rating"`
	ReviewText string    `json:"reviewText"`
	CreatedOn  time.Time `json:"createdOn"`
}

type apiLocationDetail struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Address string      `json:"address"`
	Rating  int         `json:"rating"`
	Coords  []float64   `json:"coords"`
	Reviews []apiReview `json:"reviews"`
}

type apiError struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

type reviewPayload struct {
	Author     string `json:"author"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"reviewText"`
}

// view models handed to the Renderer

type locationView struct {
	ID       string
	Name     string
	Address  string
	Rating   int
	Distance string
}

type coordsView struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

type locationDetailView struct {
	ID      string
	Name    string
	Address string
	Rating  int
	Coords  coordsView
	Reviews []apiReview
}

type homeListView struct {
	Title     string
	Locations []locationView
	Message   string
}

type reviewFormView struct {
	Title      string
	LocationID string
	Name       string
	Error      string
}

type errorView struct {
	Title   string
	Content string
}

// SearchOrigin is the point and radius the home page searches around.
type SearchOrigin struct {
	Lng         float64
	Lat         float64
	MaxDistance float64
}

// Controller is the front-end tier: it relays browser requests to the API
// tier and turns each outcome into a rendered page or a redirect.
type Controller struct {
	api    *APIClient
	render Renderer
	origin SearchOrigin
}

func NewController(api *APIClient, render Renderer, origin SearchOrigin) *Controller {
	return &Controller{api: api, render: render, origin: origin}
}

// formatDistance renders a raw distance in meters for display: above 1000 it
// becomes kilometers with one decimal, 1000 and below stays in whole meters.
func formatDistance(meters float64) string {
	if meters > 1000 {
		return strconv.FormatFloat(meters/1000, 'f', 1, 64) + "km"
	}
	return strconv.Itoa(int(math.Floor(meters))) + "m"
}

// listNearby returns the reshaped location list and a page message. A failed
// lookup and an empty result are distinct outcomes: both yield an empty list,
// but with different messages.
func (controller *Controller) listNearby(ctx context.Context) ([]locationView, string) {
	query := url.Values{}
	query.Set("lng", strconv.FormatFloat(controller.origin.Lng, 'f', -1, 64))
	query.Set("lat", strconv.FormatFloat(controller.origin.Lat, 'f', -1, 64))
	query.Set("maxDistance", strconv.FormatFloat(controller.origin.MaxDistance, 'f', -1, 64))

	resp, err := controller.api.get(ctx, "/api/locations", query)
	if err != nil {
		log.Println("API lookup transport failure: ", err)
		return []locationView{}, lookupFailedMessage
	}
	if resp.status != http.StatusOK {
		log.Printf("API lookup returned status %d", resp.status)
		return []locationView{}, lookupFailedMessage
	}

	var summaries []apiLocationSummary
	err = json.Unmarshal(resp.body, &summaries)
	if err != nil {
		log.Println("Error decoding API response: ", err)
		return []locationView{}, lookupFailedMessage
	}

	if len(summaries) == 0 {
		// the search worked, nothing matched
		return []locationView{}, noResultsMessage
	}

	views := make([]locationView, 0, len(summaries))
	for _, summary := range summaries {
		views = append(views, locationView{
			ID:       summary.ID,
			Name:     summary.Name,
			Address:  summary.Address,
			Rating:   summary.Rating,
			Distance: formatDistance(summary.Distance),
		})
	}

	return views, ""
}

func (controller *Controller) HomeList(w http.ResponseWriter, r *http.Request) {
	locations, message := controller.listNearby(r.Context())

	controller.render.Render(w, "locations-list", homeListView{
		Title:     "Find a place to work with wifi",
		Locations: locations,
		Message:   message,
	})
}

// getLocationDetail fetches and reshapes one location. A zero second return
// value means success; any other value is the status the error page must
// carry: 503 for a transport failure, otherwise the API's own status.
func (controller *Controller) getLocationDetail(ctx context.Context, locationID string) (locationDetailView, int) {
	resp, err := controller.api.get(ctx, "/api/locations/"+locationID, nil)
	if err != nil {
		log.Println("API detail transport failure: ", err)
		return locationDetailView{}, http.StatusServiceUnavailable
	}
	if resp.status != http.StatusOK {
		return locationDetailView{}, resp.status
	}

	var detail apiLocationDetail
	err = json.Unmarshal(resp.body, &detail)
	if err != nil {
		log.Println("Error decoding API response: ", err)
		return locationDetailView{}, http.StatusInternalServerError
	}

	view := locationDetailView{
		ID:      detail.ID,
		Name:    detail.Name,
		Address: detail.Address,
		Rating:  detail.Rating,
		Reviews: detail.Reviews,
	}
	if len(detail.Coords) == 2 {
		view.Coords = coordsView{Longitude: detail.Coords[0], Latitude: detail.Coords[1]}
	}

	return view, 0
}

func (controller *Controller) LocationInfo(w http.ResponseWriter, r *http.Request) {
	locationID := r.URL.Query().Get(":locationid")

	detail, errStatus := controller.getLocationDetail(r.Context(), locationID)
	if errStatus != 0 {
		controller.showError(w, errStatus)
		return
	}

	controller.render.Render(w, "location-info", detail)
}

func (controller *Controller) AddReviewForm(w http.ResponseWriter, r *http.Request) {
	locationID := r.URL.Query().Get(":locationid")

	detail, errStatus := controller.getLocationDetail(r.Context(), locationID)
	if errStatus != 0 {
		controller.showError(w, errStatus)
		return
	}

	controller.render.Render(w, "location-review-form", reviewFormView{
		Title:      "Review " + detail.Name,
		LocationID: detail.ID,
		Name:       detail.Name,
		Error:      r.URL.Query().Get("err"),
	})
}

func (controller *Controller) DoAddReview(w http.ResponseWriter, r *http.Request) {
	locationID := r.URL.Query().Get(":locationid")

	err := r.ParseForm()
	if err != nil {
		http.Redirect(w, r, validationRedirect(locationID), http.StatusFound)
		return
	}
	author := r.PostFormValue("name")
	rating, _ := strconv.Atoi(r.PostFormValue("rating"))
	reviewText := r.PostFormValue("review")

	// client-side validation: nothing leaves this process when a field is
	// missing
	if author == "" || rating == 0 || reviewText == "" {
		http.Redirect(w, r, validationRedirect(locationID), http.StatusFound)
		return
	}

	payload := reviewPayload{Author: author, Rating: rating, ReviewText: reviewText}
	resp, err := controller.api.postJSON(r.Context(), "/api/locations/"+locationID+"/reviews", payload, r.Header.Get("Authorization"))
	if err != nil {
		log.Println("API review post transport failure: ", err)
		controller.showError(w, http.StatusServiceUnavailable)
		return
	}

	switch {
	case resp.status == http.StatusCreated:
		http.Redirect(w, r, "/location/"+locationID, http.StatusFound)
	case resp.status == http.StatusBadRequest && isValidationRejection(resp.body):
		// converges with the client-side short circuit above
		http.Redirect(w, r, validationRedirect(locationID), http.StatusFound)
	default:
		controller.showError(w, resp.status)
	}
}

func validationRedirect(locationID string) string {
	return "/location/" + locationID + "/review/new?err=val"
}

func isValidationRejection(body []byte) bool {
	var payload apiError
	err := json.Unmarshal(body, &payload)
	if err != nil {
		return false
	}
	return payload.Kind == "validation"
}

// showError renders the error page for a status: 404 gets its own text, any
// other status the generic one.
func (controller *Controller) showError(w http.ResponseWriter, status int) {
	title := fmt.Sprintf("%d, something's gone wrong", status)
	content := "Something, somewhere, has gone just a little bit wrong."
	if status == http.StatusNotFound {
		title = "404, page not found"
		content = "Oh dear. Looks like you can't find this page. Sorry."
	}

	w.WriteHeader(status)
	controller.render.Render(w, "generic-text", errorView{Title: title, Content: content})
}
