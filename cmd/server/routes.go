package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"alvezinc.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	accountHandler *handlers.AccountHandler
	userHandler    *handlers.UserHandler
	shopHandler    *handlers.ShopHandler
	authMiddleware gin.HandlerFunc
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Account routes (public)
		account := v1.Group("/account")
		{
			account.POST("", d.accountHandler.Register)
			account.POST("/login", d.accountHandler.Login)
			account.GET("/activate", d.accountHandler.Activate)
		}

		// Profile routes (protected)
		user := v1.Group("/user")
		user.Use(d.authMiddleware)
		{
			user.GET("/profile", d.userHandler.GetProfile)
			user.PUT("/profile", d.userHandler.UpdateProfile)
		}

		// Catalog routes (protected)
		shop := v1.Group("/shop")
		shop.Use(d.authMiddleware)
		{
			shop.GET("", d.shopHandler.ListProducts)
			shop.GET("/search", d.shopHandler.SearchProducts)
		}
	}
}
