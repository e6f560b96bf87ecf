package web

import (
	"github.com/gin-gonic/gin"

	"iphones-store/internal/auth"
	"iphones-store/internal/logger"
	"iphones-store/internal/middleware"
)

// NewRouter wires every route behind the shared middleware stack.
func NewRouter(h *Handler, renderer *HTMLRenderer, sessions *auth.SessionProvider, limiter *middleware.RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logger.RequestID(), logger.Requests(), limiter.General())
	r.HTMLRender = renderer

	r.Static("/static", "web/static")

	// Storefront.
	r.GET("/", h.HomePage)
	r.GET("/iphones/:id", h.ProductDetailPage)
	r.GET("/checkout", h.CheckoutPage)
	r.POST("/checkout", h.PlaceOrder)
	r.GET("/order-confirmation", h.OrderConfirmationPage)

	// Dashboard authentication.
	r.GET("/dashboard/login", h.LoginPage)
	r.POST("/dashboard/login", limiter.Strict(), h.Login)
	r.POST("/dashboard/logout", h.Logout)

	// Dashboard, admin only.
	admin := r.Group("/dashboard", auth.RequireAdmin(sessions))
	{
		admin.GET("", h.DashboardPage)
		admin.GET("/products", h.AdminProductsPage)
		admin.GET("/products/new", h.NewProductPage)
		admin.POST("/products/new", h.CreateProduct)
		admin.GET("/products/edit/:id", h.EditProductPage)
		admin.POST("/products/edit/:id", h.UpdateProduct)
		admin.POST("/products/:id/delete", h.DeleteProduct)
		admin.GET("/orders", h.AdminOrdersPage)
		admin.POST("/orders/:id/status", h.UpdateOrderStatus)
		admin.POST("/orders/:id/delete", h.DeleteOrder)
	}

	return r
}
