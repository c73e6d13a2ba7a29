package internals

import (
	"testing"

	"wifispots-server/model"
)

func ratingsOnly(ratings ...int) []model.Review {
	reviews := make([]model.Review, 0, len(ratings))
	for _, rating := range ratings {
		reviews = append(reviews, model.Review{Rating: rating})
	}
	return reviews
}

func TestComputeAggregateRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    int
	}{
		{"single review", []int{4}, 4},
		{"exact mean", []int{5, 3}, 4},
		{"truncates down", []int{5, 4}, 4},
		{"truncates not rounds", []int{2, 2, 3}, 2},
		{"truncates near top", []int{4, 4, 5}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ComputeAggregateRating(ratingsOnly(tt.ratings...))
			if !ok {
				t.Fatal("expected a computed rating")
			}
			if got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestComputeAggregateRatingEmpty(t *testing.T) {
	_, ok := ComputeAggregateRating(nil)
	if ok {
		t.Fatal("expected no rating for an empty collection")
	}
}
