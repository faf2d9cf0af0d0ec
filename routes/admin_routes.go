package routes

import (
	"github.com/aditya-714/DevPorto/controllers"
	"github.com/aditya-714/DevPorto/middleware"
	"github.com/gin-gonic/gin"
)

// initAdminRoutes initializes all admin-related routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		// Public admin routes
		admin.POST("/login", controllers.AdminLogin)
		admin.POST("/logout", controllers.AdminLogout)

		// Protected admin routes
		admin.Use(middleware.AdminAuthMiddleware())
		{
			// Profile management
			admin.PUT("/profile", controllers.UpdateProfile)

			// Product management
			admin.GET("/products", controllers.AdminListProducts)
			admin.POST("/products", controllers.CreateProduct)
			admin.PUT("/products/:id", controllers.UpdateProduct)
			admin.DELETE("/products/:id", controllers.DeleteProduct)

			// Blog management
			admin.POST("/blogs", controllers.CreateBlog)
			admin.PUT("/blogs/:id", controllers.UpdateBlog)
			admin.DELETE("/blogs/:id", controllers.DeleteBlog)

			// Project management
			admin.POST("/projects", controllers.CreateProject)
			admin.PUT("/projects/:id", controllers.UpdateProject)
			admin.DELETE("/projects/:id", controllers.DeleteProject)

			// Experience management
			admin.POST("/experiences", controllers.CreateExperience)
			admin.PUT("/experiences/:id", controllers.UpdateExperience)
			admin.DELETE("/experiences/:id", controllers.DeleteExperience)

			// Social link management
			admin.POST("/social-media", controllers.CreateSocialLink)
			admin.PUT("/social-media/:id", controllers.UpdateSocialLink)
			admin.DELETE("/social-media/:id", controllers.DeleteSocialLink)

			// Transactions and reports
			admin.GET("/transactions", controllers.AdminListTransactions)
			admin.GET("/transactions/:id", controllers.AdminGetTransaction)
			admin.GET("/transactions/:id/invoice", controllers.DownloadTransactionInvoice)
			admin.GET("/reports/sales/excel", controllers.DownloadSalesReportExcel)
			admin.GET("/reports/sales/pdf", controllers.DownloadSalesReportPDF)
		}
	}
}
