package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/harentsoaR/doctors-portal/internal/metrics"
	"github.com/harentsoaR/doctors-portal/internal/middleware"
)

// RouterConfig holds the optional pieces of the HTTP stack. Nil fields are
// left out.
type RouterConfig struct {
	Logger      zerolog.Logger
	CORSOrigins []string
	RateLimiter *middleware.RateLimiter
	Collector   *metrics.Collector
	Gatherer    prometheus.Gatherer
}

func NewRouter(h *Handler, cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(cfg.Logger), middleware.RequestLogger())
	if cfg.Collector != nil {
		r.Use(cfg.Collector.Middleware())
	}
	// recovery must run inside the access log and metrics
	r.Use(middleware.Recovery(), cors.New(corsConfig(cfg.CORSOrigins)))

	// unauthenticated writes are the only ones worth throttling
	limit := func(c *gin.Context) { c.Next() }
	if cfg.RateLimiter != nil {
		limit = cfg.RateLimiter.Middleware()
	}
	verify := middleware.VerifyToken(h.Tokens)
	admin := middleware.RequireAdmin(h.Store.Users)

	r.GET("/", h.Home)
	r.GET("/health", h.Health)
	if cfg.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler(cfg.Gatherer)))
	}

	r.GET("/user", verify, h.ListUsers)
	r.GET("/admin/:email", h.CheckAdmin)
	r.PUT("/user/admin/:email", verify, admin, h.MakeAdmin)
	r.PUT("/user/:email", limit, h.UpsertUser)

	r.GET("/service", h.ListServices)
	r.GET("/available", h.ListAvailable)

	r.GET("/booking", verify, h.ListBookings)
	r.POST("/booking", limit, h.CreateBooking)

	doctors := r.Group("/doctor", verify, admin)
	{
		doctors.GET("", h.ListDoctors)
		doctors.POST("", h.AddDoctor)
		doctors.DELETE("/:email", h.DeleteDoctor)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
