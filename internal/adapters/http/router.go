package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/rafaelleal24/ecommerce/internal/adapters/config"
	"github.com/rafaelleal24/ecommerce/internal/adapters/http/controllers"
	"github.com/rafaelleal24/ecommerce/internal/adapters/http/middleware"
)

type Router struct {
	healthController  *controllers.HealthController
	productController *controllers.ProductController
	rateLimiter       middleware.RateLimiter
	rateLimit         config.RateLimitConfig
	allowedOrigins    []string
}

// NewRouter wires the product routes. A nil rateLimiter disables rate
// limiting.
func NewRouter(
	healthController *controllers.HealthController,
	productController *controllers.ProductController,
	rateLimiter middleware.RateLimiter,
	rateLimit config.RateLimitConfig,
	allowedOrigins []string,
) *Router {
	return &Router{
		healthController:  healthController,
		productController: productController,
		rateLimiter:       rateLimiter,
		rateLimit:         rateLimit,
		allowedOrigins:    allowedOrigins,
	}
}

func (r *Router) limit() gin.HandlerFunc {
	if r.rateLimiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return middleware.RateLimit(r.rateLimiter, r.rateLimit.Requests, r.rateLimit.Window)
}

func (r *Router) SetupRoutes(engine *gin.Engine) {
	engine.Use(middleware.LogRequest(), middleware.CORS(r.allowedOrigins))

	engine.GET("/", r.healthController.Index)
	engine.GET("/health", r.healthController.Health)
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	products := engine.Group("/product", r.limit())
	{
		products.GET("", r.productController.GetAll)
		products.POST("", r.productController.CreateProduct)
		products.PUT("/:id", r.productController.UpdateProduct)
		products.DELETE("/:id", r.productController.DeleteProduct)
	}
}

// Handler builds a gin engine with every route registered.
func (r *Router) Handler() http.Handler {
	engine := gin.New()
	engine.Use(gin.Recovery())
	r.SetupRoutes(engine)
	return engine
}

func (r *Router) ListenAndServe(ctx context.Context, cfg config.HTTPConfig) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.BindInterface, cfg.Port),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
