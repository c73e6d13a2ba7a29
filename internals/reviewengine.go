package internals

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wifispots-server/externals"
	"wifispots-server/model"
)

// LocationStore is the persistence surface the engine mutates through.
// db.Store satisfies it.
type LocationStore interface {
	GetLocationByID(ctx context.Context, locationID string) (model.Location, error)
	SaveReview(ctx context.Context, review *model.Review) error
	DeleteReview(ctx context.Context, locationID, reviewID string) error
	UpdateRating(ctx context.Context, locationID string, rating int) error
}

// ReviewEngine owns a location's embedded review collection: every structural
// change goes through it, and every change recomputes the derived rating.
type ReviewEngine struct {
	store    LocationStore
	resolver externals.AuthorResolver
}

func NewReviewEngine(store LocationStore, resolver externals.AuthorResolver) *ReviewEngine {
	return &ReviewEngine{store: store, resolver: resolver}
}

// RatingOutcome reports what happened to the derived rating after a review
// mutation. A failed recompute never fails the mutation that triggered it;
// the caller decides whether to log it.
type RatingOutcome struct {
	Updated bool
	Rating  int
	Err     error
}

func (engine *ReviewEngine) CreateReview(ctx context.Context, locationID, identity string, rating int, reviewText string) (model.Review, RatingOutcome, error) {
	author, err := engine.resolver.Resolve(ctx, identity)
	if err != nil {
		return model.Review{}, RatingOutcome{}, err
	}

	location, err := engine.store.GetLocationByID(ctx, locationID)
	if err != nil {
		return model.Review{}, RatingOutcome{}, err
	}

	review := model.Review{
		ID:         uuid.NewString(),
		LocationID: location.ID,
		Author:     author,
		Rating:     rating,
		ReviewText: reviewText,
		CreatedOn:  time.Now().UTC(),
	}
	err = engine.store.SaveReview(ctx, &review)
	if err != nil {
		return model.Review{}, RatingOutcome{}, err
	}

	outcome := engine.RecomputeRating(ctx, locationID)

	return review, outcome, nil
}

func (engine *ReviewEngine) GetReview(ctx context.Context, locationID, reviewID string) (model.LocatedReview, error) {
	location, err := engine.store.GetLocationByID(ctx, locationID)
	if err != nil {
		return model.LocatedReview{}, err
	}

	review, err := findReview(location, reviewID)
	if err != nil {
		return model.LocatedReview{}, err
	}

	return model.LocatedReview{
		Location: model.LocationHeader{Name: location.Name, ID: location.ID},
		Review:   review,
	}, nil
}

func (engine *ReviewEngine) UpdateReview(ctx context.Context, locationID, reviewID, author string, rating int, reviewText string) (model.Review, RatingOutcome, error) {
	location, err := engine.store.GetLocationByID(ctx, locationID)
	if err != nil {
		return model.Review{}, RatingOutcome{}, err
	}

	review, err := findReview(location, reviewID)
	if err != nil {
		return model.Review{}, RatingOutcome{}, err
	}

	// full replace: whatever the caller supplied becomes the new value,
	// absent fields included
	review.Author = author
	review.Rating = rating
	review.ReviewText = reviewText
	err = engine.store.SaveReview(ctx, &review)
	if err != nil {
		return model.Review{}, RatingOutcome{}, err
	}

	outcome := engine.RecomputeRating(ctx, locationID)

	return review, outcome, nil
}

func (engine *ReviewEngine) DeleteReview(ctx context.Context, locationID, reviewID string) (RatingOutcome, error) {
	location, err := engine.store.GetLocationByID(ctx, locationID)
	if err != nil {
		return RatingOutcome{}, err
	}

	_, err = findReview(location, reviewID)
	if err != nil {
		return RatingOutcome{}, err
	}

	err = engine.store.DeleteReview(ctx, locationID, reviewID)
	if err != nil {
		return RatingOutcome{}, err
	}

	return engine.RecomputeRating(ctx, locationID), nil
}

// RecomputeRating reloads the location and persists the integer-truncated
// mean of its review ratings as a second, separate write. The sequence is
// read-modify-write: two mutations racing on the same location can leave the
// rating computed from a stale snapshot until the next mutation lands. An
// empty collection skips the write and keeps the prior rating.
func (engine *ReviewEngine) RecomputeRating(ctx context.Context, locationID string) RatingOutcome {
	location, err := engine.store.GetLocationByID(ctx, locationID)
	if err != nil {
		return RatingOutcome{Err: err}
	}

	rating, ok := ComputeAggregateRating(location.Reviews)
	if !ok {
		return RatingOutcome{}
	}

	err = engine.store.UpdateRating(ctx, locationID, rating)
	if err != nil {
		return RatingOutcome{Err: err}
	}

	return RatingOutcome{Updated: true, Rating: rating}
}

func findReview(location model.Location, reviewID string) (model.Review, error) {
	for _, review := range location.Reviews {
		if review.ID == reviewID {
			return review, nil
		}
	}
	return model.Review{}, model.ErrReviewNotFound
}
