// api/router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pulsecollective/pulse/api/config"
	"github.com/pulsecollective/pulse/api/controller"
	"github.com/pulsecollective/pulse/api/middleware"
	"github.com/pulsecollective/pulse/api/model"
	"github.com/pulsecollective/pulse/api/util"
)

func limiterConfig(group string) middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Group:          group,
		Limit:          config.GetInt("ratelimit." + group + ".limit"),
		Window:         config.GetDuration("ratelimit." + group + ".window"),
		SkipSuccessful: group == "auth",
	}
}

// SetupRouter assembles the request pipeline: logging and the general
// limiter on every route, then each controller declares its own auth, role,
// validation, cache and per-group limiter gates.
func SetupRouter(
	controllers *controller.Controllers,
	tokens *util.TokenService,
	cacheStore middleware.CacheStore,
	counterStore middleware.CounterStore,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(counterStore, limiterConfig("general")))

	defaultTTL := config.GetDuration("cache.ttl")

	gates := &controller.Gates{
		Authenticate: middleware.Authenticate(tokens),
		OptionalAuth: middleware.AuthenticateOptional(tokens),
		Staff:        middleware.RequireRoles(model.RoleEditor, model.RoleAdmin),
		Admin:        middleware.RequireRoles(model.RoleAdmin),
		Cache: func(ttl time.Duration) gin.HandlerFunc {
			if ttl <= 0 {
				ttl = defaultTTL
			}
			return middleware.CachePage(cacheStore, ttl)
		},
		Invalidate: func(patterns ...string) gin.HandlerFunc {
			return middleware.InvalidateCache(cacheStore, patterns...)
		},
		Limit: func(group string) gin.HandlerFunc {
			return middleware.RateLimiter(counterStore, limiterConfig(group))
		},
	}

	api := router.Group("/api/v1")

	controllers.Auth.RegisterRoutes(api, gates)
	controllers.Article.RegisterRoutes(api, gates)
	controllers.Playlist.RegisterRoutes(api, gates)
	controllers.Mix.RegisterRoutes(api, gates)
	controllers.Event.RegisterRoutes(api, gates)
	controllers.Product.RegisterRoutes(api, gates)
	controllers.Cart.RegisterRoutes(api, gates)
	controllers.Newsletter.RegisterRoutes(api, gates)
	controllers.Submission.RegisterRoutes(api, gates)
	controllers.Upload.RegisterRoutes(api, gates)
	controllers.Homepage.RegisterRoutes(api, gates)
	controllers.Settings.RegisterRoutes(api, gates)

	return router
}
