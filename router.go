package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/judyrop/restaurant-pos/handlers"
	"github.com/judyrop/restaurant-pos/middlewares"
	"github.com/judyrop/restaurant-pos/models"
	"github.com/judyrop/restaurant-pos/storage"
)

// RouterConfig holds the HTTP concerns that sit in front of the handlers.
type RouterConfig struct {
	CORSOrigins []string
	RateLimit   string
	// Verifier enables bearer token checks on /api when set.
	Verifier *oidc.IDTokenVerifier
}

var registerValidations sync.Once

func SetupRouter(repo storage.Repository, log *slog.Logger, cfg RouterConfig) (*gin.Engine, error) {
	var err error
	registerValidations.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			err = models.RegisterValidations(v)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("register validations: %w", err)
	}

	limit, err := middlewares.RateLimit(cfg.RateLimit)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(log), middlewares.CORS(cfg.CORSOrigins))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api", limit)
	if cfg.Verifier != nil {
		api.Use(middlewares.Auth(cfg.Verifier))
	}
	handlers.New(repo, log).Register(api)

	return r, nil
}
