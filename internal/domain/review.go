package domain

import "time"

// Review is a customer rating attached to a product.
type Review struct {
	ID       string    `json:"id"`
	UserName string    `json:"userName"`
	Rating   int       `json:"rating"`
	Comment  string    `json:"comment"`
	Date     time.Time `json:"date"`
}

// Validate checks the rating bounds and required fields.
func (r *Review) Validate() error {
	if r.UserName == "" {
		return &ValidationError{Field: "userName", Message: "user name is required"}
	}
	if r.Rating < 1 || r.Rating > 5 {
		return &ValidationError{Field: "rating", Message: "rating must be between 1 and 5"}
	}
	return nil
}

// AverageRating derives the mean rating; it is never stored on the product.
// Returns 0 for an empty list.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}
