// internal/ui/rest/router/technical.go
package router

import (
	"github.com/LYN3S-CO-UK/API-Help-To-OpenAPI/pkg/monitoring"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterTechnicalRoutes wires health, diagnostics and metrics endpoints
// under the /api group. None of them are gated by the authorizer.
func RegisterTechnicalRoutes(api *gin.RouterGroup, checksHandler monitoring.Handler) {
	// Basic health/info
	api.GET("/livez", checksHandler.Livez())
	api.GET("/readyz", checksHandler.Readyz())
	api.GET("/healthz", checksHandler.Healthz())
	api.GET("/version", checksHandler.Version())

	// Server information
	api.GET("/server", checksHandler.ServerInfo())

	// Prometheus exposition
	api.GET("/metrics", gin.WrapH(promhttp.Handler()))

	checks := api.Group("/check")
	{
		checks.GET("/database", checksHandler.Check())
		checks.GET("/metrics", checksHandler.Metrics())
	}
}
