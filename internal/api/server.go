package api

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/inlethq/leadgate/internal/config"
	"github.com/inlethq/leadgate/internal/telemetry"
)

// Default timeout values.
const (
	defaultReadTimeout  = 15 * time.Second
	defaultWriteTimeout = 30 * time.Second
	defaultIdleTimeout  = 120 * time.Second
)

// NewRouter builds the gin engine with all routes, the intake rate
// limiter, the metrics endpoint and the static intake form.
func NewRouter(handler *Handler, cfg *config.Config, tel *telemetry.Provider) *gin.Engine {
	if !cfg.Service.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	limiter := rate.NewLimiter(rate.Limit(cfg.Intake.RatePerSecond), cfg.Intake.Burst)
	SetupRoutes(router, handler, RateLimit(limiter, tel))

	router.GET("/metrics", gin.WrapH(tel.Handler()))

	if cfg.Intake.WebDir != "" {
		router.StaticFile("/", filepath.Join(cfg.Intake.WebDir, "index.html"))
	}

	return router
}

// NewServer wraps the router in an http.Server with sane timeouts.
func NewServer(router *gin.Engine, cfg *config.Config) *http.Server {
	readTimeout := cfg.Service.ReadTimeout
	if readTimeout == 0 {
		readTimeout = defaultReadTimeout
	}
	writeTimeout := cfg.Service.WriteTimeout
	if writeTimeout == 0 {
		writeTimeout = defaultWriteTimeout
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Service.Port),
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}
}
