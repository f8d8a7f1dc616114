// internal/ui/rest/router/router.go
package router

import (
	"slices"
	"time"

	"github.com/LYN3S-CO-UK/API-Help-To-OpenAPI/internal/auth"
	"github.com/LYN3S-CO-UK/API-Help-To-OpenAPI/internal/ui/rest/handlers"
	"github.com/LYN3S-CO-UK/API-Help-To-OpenAPI/internal/ui/rest/middleware"
	"github.com/LYN3S-CO-UK/API-Help-To-OpenAPI/pkg/monitoring"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Options struct {
	TrustedProxies []string
	// CORSOrigins empty or containing "*" allows every origin.
	CORSOrigins []string
}

// Dependencies are the handlers and collaborators the router wires together.
type Dependencies struct {
	Logger     *zap.Logger
	Checks     monitoring.Handler
	Values     handlers.Values
	Authorizer auth.Authorizer
}

// CreateRouter builds the Gin engine and delegates route registration
// to the technical, functional, and help registrars.
func CreateRouter(deps Dependencies, opts ...Options) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	authorizer := deps.Authorizer
	if authorizer == nil {
		authorizer = auth.AllowAll{}
	}

	var opt Options
	if len(opts) > 0 {
		opt = opts[0]
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(cors.New(corsConfig(opt.CORSOrigins)))
	r.Use(middleware.Metrics())

	if len(opt.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(opt.TrustedProxies); err != nil {
			logger.Warn("ignoring trusted proxies", zap.Strings("proxies", opt.TrustedProxies), zap.Error(err))
		}
	} else {
		_ = r.SetTrustedProxies(nil)
	}

	// Group all backend routes under /api
	api := r.Group("/api")

	// Register endpoint families
	RegisterTechnicalRoutes(api, deps.Checks)
	RegisterFunctionalRoutes(api, deps.Values, middleware.Authorize(authorizer, logger))
	RegisterHelpRoutes(r)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
