package internals

import "wifispots-server/model"

// ComputeAggregateRating returns the integer-truncated mean of the review
// ratings. The second return value is false when there is nothing to compute:
// an empty collection keeps the previously stored rating.
func ComputeAggregateRating(reviews []model.Review) (int, bool) {
	if len(reviews) == 0 {
		return 0, false
	}

	total := 0
	for _, review := range reviews {
		total += review.Rating
	}

	return total / len(reviews), true
}
