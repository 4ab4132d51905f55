package routes

import (
	"github.com/gin-gonic/gin"

	"cartlink/controllers"
	"cartlink/middleware"
)

func RegisterRoutes(r *gin.Engine) {

	api := r.Group("/api")
	{
		// Public storefront: catalog, settings, auth, checkout. Checkout is
		// open to guests; the customer snapshot travels with the order.
		api.GET("/products", controllers.GetProductsPublic)
		api.GET("/products/:slug", controllers.GetProductBySlug)
		api.GET("/categories", controllers.GetCategories)
		api.GET("/settings", controllers.GetSettings)

		api.POST("/register", controllers.Register)
		api.POST("/login", controllers.Login)
		api.POST("/logout", controllers.Logout)

		api.POST("/checkout", controllers.Checkout)
		api.POST("/payments/notification", controllers.PaymentNotification)

		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			admin := protected.Group("/admin")
			admin.Use(middleware.AdminMiddleware())
			{
				admin.GET("/products", controllers.GetProductsAdmin)
				admin.POST("/products", controllers.CreateProduct)
				admin.PUT("/products/:id", controllers.UpdateProduct)
				admin.DELETE("/products/:id", controllers.DeleteProduct)

				admin.POST("/categories", controllers.CreateCategory)
				admin.PUT("/categories/:id", controllers.UpdateCategory)
				admin.DELETE("/categories/:id", controllers.DeleteCategory)

				admin.GET("/orders", controllers.GetOrdersAdmin)
				admin.GET("/orders/:id", controllers.GetOrderByIDAdmin)
				admin.PUT("/orders/:id/status", controllers.UpdateOrderStatus)
				admin.DELETE("/orders/:id", controllers.DeleteOrderAdmin)

				admin.GET("/stats", controllers.GetDashboardStats)
				admin.PUT("/settings", controllers.UpdateSettings)
			}

			user := protected.Group("/user")
			{
				user.POST("/cart", controllers.AddToCart)
				user.GET("/cart", controllers.GetCart)
				user.PUT("/cart/:productId", controllers.UpdateCart)
				user.DELETE("/cart/:productId", controllers.RemoveFromCart)
				user.DELETE("/cart", controllers.ClearCart)

				user.GET("/wishlist", controllers.GetWishlist)
				user.POST("/wishlist/:productId", controllers.ToggleWishlist)

				user.GET("/orders", controllers.GetOrders)
				user.PUT("/orders/:id/cancel", controllers.CancelOrder)

				user.PUT("/profile", controllers.UpdateProfile)
				user.GET("/purchases", controllers.GetPurchases)
			}
		}
	}
}
