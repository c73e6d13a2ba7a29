package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"wifispots-server/model"
)

type ReviewDAO struct {
	db *gorm.DB
}

func NewReviewDAO(db *gorm.DB) *ReviewDAO {
	return &ReviewDAO{db: db}
}

// SaveReview inserts a new review row or fully overwrites an existing one.
// Field checks live here: the store, not the aggregation engine, rejects bad
// writes.
func (reviewDAO *ReviewDAO) SaveReview(ctx context.Context, review *model.Review) error {
	err := validateReview(review)
	if err != nil {
		return err
	}

	result := reviewDAO.db.WithContext(ctx).Save(review)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

func validateReview(review *model.Review) error {
	if review.Author == "" {
		return fmt.Errorf("%w: author is required", model.ErrValidation)
	}
	if review.Rating < 1 || review.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", model.ErrValidation)
	}
	if review.ReviewText == "" {
		return fmt.Errorf("%w: reviewText is required", model.ErrValidation)
	}
	return nil
}

func (reviewDAO *ReviewDAO) DeleteReview(ctx context.Context, locationID, reviewID string) error {
	result := reviewDAO.db.WithContext(ctx).
		Where("location_id = ? AND id = ?", locationID, reviewID).
		Delete(&model.Review{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrReviewNotFound
	}

	return nil
}

// UpdateRating persists the derived rating as its own write, separate from
// the review mutation that triggered it.
func (reviewDAO *ReviewDAO) UpdateRating(ctx context.Context, locationID string, rating int) error {
	result := reviewDAO.db.WithContext(ctx).
		Model(&model.Location{}).
		Where("id = ?", locationID).
		Update("rating", rating)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrLocationNotFound
	}

	return nil
}
