package response

import (
	"stayfinder/internal/usecase/queries"
)

type ReviewResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Avatar  string `json:"avatar"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

type ReviewPageResponse struct {
	Reviews       []ReviewResponse `json:"reviews"`
	AverageRating float64          `json:"averageRating"`
	TotalReviews  int              `json:"totalReviews"`
	HasMore       bool             `json:"hasMore"`
}

func FromReviewView(view queries.ReviewView) ReviewResponse {
	return ReviewResponse{
		ID:      view.ID,
		Name:    view.Name,
		Avatar:  view.Avatar,
		Rating:  view.Rating,
		Comment: view.Comment,
		Date:    view.Date,
	}
}

func FromReviewList(views []queries.ReviewView) []ReviewResponse {
	items := make([]ReviewResponse, 0, len(views))
	for _, view := range views {
		items = append(items, FromReviewView(view))
	}
	return items
}

func FromReviewPage(page *queries.ReviewPage) *ReviewPageResponse {
	return &ReviewPageResponse{
		Reviews:       FromReviewList(page.Reviews),
		AverageRating: page.AverageRating,
		TotalReviews:  page.TotalReviews,
		HasMore:       page.HasMore,
	}
}
