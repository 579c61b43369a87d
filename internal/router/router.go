// Package router wires handlers to routes. Each Register* function mounts one
// access scope: public browsing, bearer-gated mutation, the admin surface and
// the HTML pages.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/hbnb-project/hbnb-api/internal/config"
	"github.com/hbnb-project/hbnb-api/internal/handler"
	"github.com/hbnb-project/hbnb-api/internal/middleware"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Auth    *handler.AuthHandler
	Users   *handler.UserHandler
	Places  *handler.PlaceHandler
	Reviews *handler.ReviewHandler
	Amenity *handler.AmenityHandler
	Admin   *handler.AdminHandler
	Pages   *handler.PageHandler
}

// RegisterPublic mounts the unauthenticated API under /api/v1 plus the
// operational endpoints. Read endpoints sit behind the response cache and the
// rate limiter; both pass through untouched when Redis is absent.
func RegisterPublic(e *echo.Echo, h Handlers, rdb *redis.Client) {
	cacheCfg := config.LoadCacheConfig()
	rlCfg := config.LoadRateLimitConfig()

	g := e.Group("/api/v1", middleware.RateLimit(rlCfg, rdb))
	reads := g.Group("", middleware.Cache(cacheCfg, rdb))

	g.POST("/users", h.Users.Register)
	reads.GET("/users", h.Users.List)
	reads.GET("/users/:id", h.Users.Get)

	g.POST("/amenities", h.Amenity.Create)
	g.PUT("/amenities/:id", h.Amenity.Update)
	reads.GET("/amenities", h.Amenity.List)
	reads.GET("/amenities/:id", h.Amenity.Get)

	reads.GET("/places", h.Places.List)
	reads.GET("/places/:id", h.Places.Get)
	reads.GET("/places/:id/reviews", h.Places.ListReviews)

	reads.GET("/reviews", h.Reviews.List)
	reads.GET("/reviews/:id", h.Reviews.Get)

	g.POST("/auth/login", h.Auth.Login)

	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// RegisterProtected mounts the bearer-gated endpoints under /api/v1.
func RegisterProtected(e *echo.Echo, h Handlers, jwtSecret string) {
	g := e.Group("/api/v1", middleware.JWTAuth(jwtSecret))

	g.GET("/protected", h.Auth.Protected)

	g.PUT("/users/:id", h.Users.Update)

	g.POST("/places", h.Places.Create)
	g.PUT("/places/:id", h.Places.Update)

	g.POST("/reviews", h.Reviews.Create)
	g.PUT("/reviews/:id", h.Reviews.Update)
	g.DELETE("/reviews/:id", h.Reviews.Delete)
}

// RegisterAdmin mounts the admin surface under /api/v1/admin. Every route
// requires a valid token carrying is_admin.
func RegisterAdmin(e *echo.Echo, h Handlers, jwtSecret string) {
	g := e.Group(
		"/api/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireAdmin(),
	)

	g.POST("/users", h.Admin.CreateUser)
	g.PUT("/users/:id", h.Admin.UpdateUser)
	g.DELETE("/users/:id", h.Admin.DeleteUser)

	g.POST("/amenities", h.Admin.CreateAmenity)
	g.PUT("/amenities/:id", h.Admin.UpdateAmenity)
	g.DELETE("/amenities/:id", h.Admin.DeleteAmenity)

	g.PUT("/places/:id", h.Admin.UpdatePlace)
	g.DELETE("/places/:id", h.Admin.DeletePlace)
}

// RegisterPages mounts the server-rendered HTML pages at the root.
func RegisterPages(e *echo.Echo, h Handlers) {
	e.GET("/", h.Pages.Index)
	e.GET("/home", h.Pages.Index)
	e.GET("/login", h.Pages.Login)
	e.GET("/logout", h.Pages.Logout)
	e.GET("/place/:id", h.Pages.Place)
}
