package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/maxviazov/series-catalog-service/internal/service"
)

// Register mounts all public routes on the given engine.
// defaultPageSize applies to listings that omit page_size.
func Register(r *gin.Engine, repo Pinger, seriesSvc service.SeriesService, defaultPageSize int) {
	h := NewHealthHandler(repo)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewSeriesHandler(seriesSvc, defaultPageSize).Register(api)
	}
}
