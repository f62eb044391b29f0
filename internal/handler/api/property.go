package api

import (
	"net/http"

	resdto "stayfinder/internal/handler/dto/response"
	"stayfinder/internal/handler/httperr"
	"stayfinder/internal/pkg/errs"
	"stayfinder/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	q queries.PropertyQueries
}

func NewPropertyHandler(q queries.PropertyQueries) *PropertyHandler {
	return &PropertyHandler{q: q}
}

// @Summary Get property
// @Description Get a property listing by ID
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /properties/{id} [get]
func (h *PropertyHandler) Get(c *gin.Context) {
	view, err := h.q.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errs.Is(err, queries.ErrPropertyNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load property", nil)
		return
	}
	resp, err := resdto.FromPropertyView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load property", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
