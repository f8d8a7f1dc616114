// internal/ui/rest/router/help.go
package router

import (
	"net/http"

	_ "github.com/LYN3S-CO-UK/API-Help-To-OpenAPI/docs" // registers the OpenAPI document
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const helpBasePath = "/help"

// RegisterHelpRoutes mounts the API help page (Swagger UI + doc.json).
// These are NOT under /api and are never gated by the authorizer.
func RegisterHelpRoutes(r *gin.Engine) {
	r.GET(helpBasePath, func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, helpBasePath+"/index.html")
	})
	r.GET(helpBasePath+"/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
