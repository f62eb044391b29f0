package review

// DefaultVisibleCount is how many reviews are shown before the guest expands
// the full list.
const DefaultVisibleCount = 6

// AverageRating computes the mean of all ratings, 0 for an empty list.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}

// VisibleSlice returns the reviews to display: the first DefaultVisibleCount
// unless showAll is set. Order is preserved as received, no sorting or
// deduplication.
func VisibleSlice(reviews []Review, showAll bool) []Review {
	if showAll || len(reviews) <= DefaultVisibleCount {
		return reviews
	}
	return reviews[:DefaultVisibleCount]
}

// HasMore reports whether the list is truncated by the default view.
func HasMore(reviews []Review) bool {
	return len(reviews) > DefaultVisibleCount
}
