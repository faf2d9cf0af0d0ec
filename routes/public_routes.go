package routes

import (
	"github.com/aditya-714/DevPorto/controllers"
	"github.com/gin-gonic/gin"
)

// initPublicRoutes initializes the storefront and portfolio routes
func initPublicRoutes(router *gin.RouterGroup) {
	// Portfolio content
	router.GET("/profile", controllers.GetProfile)
	router.GET("/projects", controllers.ListProjects)
	router.GET("/experiences", controllers.ListExperiences)
	router.GET("/social-media", controllers.ListSocialLinks)
	router.GET("/blogs", controllers.ListBlogs)
	router.GET("/blogs/:slug", controllers.GetBlogBySlug)

	// Storefront
	router.GET("/products", controllers.ListProducts)
	router.GET("/products/:id", controllers.GetProduct)

	// Guest cart (session backed)
	cart := router.Group("/cart")
	{
		cart.GET("", controllers.GetCart)
		cart.POST("", controllers.AddToCart)
		cart.PUT("", controllers.UpdateCartItem)
		cart.DELETE("/items/:id", controllers.RemoveCartItem)
		cart.DELETE("", controllers.ClearCart)
	}

	// Purchase flow
	router.POST("/checkout", controllers.Checkout)
	router.GET("/downloads/:token", controllers.DownloadProduct)

	// Payment gateway callbacks
	payments := router.Group("/payments/oy")
	{
		payments.GET("/callback", controllers.OYCallbackPing)
		payments.POST("/callback", controllers.HandleOYCallback)
	}
}
