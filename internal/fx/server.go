package fx

import (
	"context"

	"github.com/sabur-pro/rayan-admin/config"
	"github.com/sabur-pro/rayan-admin/internal/logger"
	"github.com/sabur-pro/rayan-admin/internal/middleware"
	"github.com/sabur-pro/rayan-admin/internal/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter() *gin.Engine {
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	rateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestID())

	router.GET("/health", handler.Health)

	api := router.Group("/api")
	api.Use(middleware.RateLimit(rateLimiter))
	{
		finance := api.Group("/finance")
		{
			finance.POST("/income", handler.CreateIncome)
			finance.POST("/expense", handler.CreateExpense)
			finance.GET("/transactions", handler.GetTransactions)
			finance.DELETE("/transactions/:id", handler.DeleteTransaction)
			finance.GET("/stats", handler.GetStats)

			accounts := finance.Group("/accounts")
			{
				accounts.POST("", handler.CreateAccount)
				accounts.GET("", handler.ListAccounts)
				accounts.PATCH("/:id", handler.UpdateAccount)
				accounts.DELETE("/:id", handler.DeleteAccount)
			}
		}

		platform := api.Group("/platform")
		{
			platform.GET("/users", handler.GetPlatformUsers)
			platform.GET("/subscriptions", handler.GetSubscriptions)
			platform.POST("/subscriptions/activate", handler.ActivateSubscription)
		}
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Server starting")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Server stopping...")
			return nil
		},
	})
}
