package api

import (
	"net/http"
	"strconv"

	resdto "stayfinder/internal/handler/dto/response"
	"stayfinder/internal/handler/httperr"
	"stayfinder/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	q queries.ReviewQueries
}

func NewReviewHandler(q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{q: q}
}

// @Summary List property reviews
// @Description List reviews for a property in source order
// @Tags reviews
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 500 {object} map[string]string
// @Router /properties/{id}/reviews [get]
func (h *ReviewHandler) ListByProperty(c *gin.Context) {
	views, err := h.q.ListByProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reviews", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewList(views))
}

// @Summary Property review summary
// @Description Aggregated review panel: average rating, total count and the visible slice (first 6 unless all=true)
// @Tags reviews
// @Produce json
// @Param id path string true "Property ID"
// @Param all query bool false "Show the full review list"
// @Success 200 {object} resdto.ReviewPageResponse
// @Failure 500 {object} map[string]string
// @Router /properties/{id}/reviews/summary [get]
func (h *ReviewHandler) Summary(c *gin.Context) {
	showAll := false
	if v := c.Query("all"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			showAll = b
		}
	}
	page, err := h.q.PageByProperty(c.Request.Context(), c.Param("id"), showAll)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reviews", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewPage(page))
}
