package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/series-catalog-service/internal/model"
	"github.com/maxviazov/series-catalog-service/internal/pagination"
	"github.com/maxviazov/series-catalog-service/internal/service"
	"github.com/maxviazov/series-catalog-service/pkg/response"
)

type SeriesHandler struct {
	svc             service.SeriesService
	defaultPageSize int
}

func NewSeriesHandler(svc service.SeriesService, defaultPageSize int) *SeriesHandler {
	return &SeriesHandler{svc: svc, defaultPageSize: defaultPageSize}
}

func (h *SeriesHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/series")
	{
		g.POST("", h.create)
		g.GET("/:series_id", h.getByID)
		g.GET("", h.list)
	}
}

func (h *SeriesHandler) create(c *gin.Context) {
	var req service.CreateSeriesInput
	if err := c.ShouldBindJSON(&req); err != nil {
		// parse details stay internal
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	s, err := h.svc.CreateSeries(c.Request.Context(), req)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, s)
}

func (h *SeriesHandler) getByID(c *gin.Context) {
	// unparseable ids become 0 and are rejected by the service
	id, _ := strconv.ParseInt(c.Param("series_id"), 10, 64)
	s, err := h.svc.GetSeries(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, s)
}

// list serves GET /series?page=&page_size=&genre=.
func (h *SeriesHandler) list(c *gin.Context) {
	req, err := pagination.ParseRequest(c.Query("page"), c.Query("page_size"), h.defaultPageSize)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	res, err := h.svc.ListSeries(c.Request.Context(), model.SeriesFilter{Genre: c.Query("genre")}, req)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}
