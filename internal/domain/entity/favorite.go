package entity

import (
	"strings"
	"time"
)

// Rating bounds, both inclusive.
const (
	MinRating = 0
	MaxRating = 10
)

// FavoriteCar is a buyer's bookmark of a catalog car. It optionally carries a
// review (rating and/or comment) and a price-alert subscription.
type FavoriteCar struct {
	ID                 int64     // Surrogate identifier.
	BuyerID            int64     // Owning buyer.
	CarID              int64     // Bookmarked car.
	Rating             *int      // Optional rating in [MinRating, MaxRating].
	Comment            *string   // Optional comment, never blank when set.
	NotifyPriceChanges bool      // Price-alert subscription.
	AddedAt            time.Time // Creation timestamp.
	UpdatedAt          time.Time // Timestamp of the last modification.
}

// IsReviewed reports whether the favorite carries a rating or a non-blank comment.
func (f *FavoriteCar) IsReviewed() bool {
	return f.Rating != nil || (f.Comment != nil && strings.TrimSpace(*f.Comment) != "")
}

// ValidRating reports whether r lies within the accepted rating range.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

// CarReviewSummary aggregates the reviews left on one car.
type CarReviewSummary struct {
	CarID         int64          `json:"car_id"`
	TotalReviews  int            `json:"total_reviews"`
	AverageRating float64        `json:"average_rating"`
	Reviews       []*FavoriteCar `json:"reviews"`
}

// SummarizeReviews builds the review summary of a car. Count and average cover
// the favorites with a rating; Reviews lists every reviewed favorite.
func SummarizeReviews(carID int64, favorites []*FavoriteCar) CarReviewSummary {
	summary := CarReviewSummary{CarID: carID, Reviews: make([]*FavoriteCar, 0, len(favorites))}

	total := 0
	for _, f := range favorites {
		if !f.IsReviewed() {
			continue
		}
		summary.Reviews = append(summary.Reviews, f)
		if f.Rating != nil {
			summary.TotalReviews++
			total += *f.Rating
		}
	}
	if summary.TotalReviews > 0 {
		summary.AverageRating = float64(total) / float64(summary.TotalReviews)
	}

	return summary
}
