package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kryshchuk/super-pizza-order/internal/catalog"
	"github.com/kryshchuk/super-pizza-order/internal/middleware"
	"github.com/kryshchuk/super-pizza-order/internal/session"
)

func New(catalogHandler *catalog.Handler, sessionHandler *session.Handler) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:4200"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── PUBLIC ─────────────────────────
	r.GET("/catalog", catalogHandler.Get)

	// ───────────────────────── SESSIONS ─────────────────────────
	sessions := r.Group("/sessions")
	{
		sessions.POST("", sessionHandler.Create)
		sessions.DELETE("/:id", sessionHandler.Delete)
		sessions.POST("/:id/toppings/toggle", sessionHandler.ToggleTopping)
		sessions.PUT("/:id/items", sessionHandler.SetItemCount)
		sessions.GET("/:id/totals", sessionHandler.Totals)
		sessions.GET("/:id/quote/:size", sessionHandler.Quote)
	}

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole("ADMIN"),
	)
	{
		admin.POST("/catalog/reload", catalogHandler.Reload)
	}

	return r
}
