// internal/ui/rest/router/functional.go
package router

import (
	"github.com/LYN3S-CO-UK/API-Help-To-OpenAPI/internal/ui/rest/handlers"
	"github.com/gin-gonic/gin"
)

// RegisterFunctionalRoutes wires the business endpoints under the /api group.
// Every values route sits behind guard; tech/ops endpoints live in technical.go.
func RegisterFunctionalRoutes(api *gin.RouterGroup, valuesHandler handlers.Values, guard gin.HandlerFunc) {
	api.GET("/", handlers.Ping())

	values := api.Group("/values", guard)
	{
		values.GET("", valuesHandler.List())
		values.GET("/:id", valuesHandler.Get())
		values.POST("", valuesHandler.Create())
		values.PUT("/:id", valuesHandler.Update())
		values.DELETE("/:id", valuesHandler.Delete())
	}
}
