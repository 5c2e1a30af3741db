package routes

import (
	"net/http"

	"dokan/auth"
	"dokan/compat"
	"dokan/describe"
	"dokan/feed"
	"dokan/middleware"
	"dokan/orders"
	"dokan/products"
	"dokan/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/productpic/*filepath", http.Dir("static/productpic"))
}

func AddProductRoutes(router *httprouter.Router, h *products.Handler) {
	router.GET("/api/products", h.GetProducts)
	router.GET("/api/categories", h.GetCategories)
	router.GET("/api/products/:productid", h.GetProduct)
	router.POST("/api/products", middleware.Authenticate(h.UpsertProduct))
	router.POST("/api/products/:productid/image", middleware.Authenticate(h.UploadProductImage))
	router.DELETE("/api/products/:productid", middleware.Authenticate(h.DeleteProduct))
}

func AddOrderRoutes(router *httprouter.Router, h *orders.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/orders", rl.Limit(h.PlaceOrder))
	router.GET("/api/orders", middleware.Authenticate(h.GetOrders))
	router.PATCH("/api/orders/:orderid/status", middleware.Authenticate(h.UpdateOrderStatus))
	router.DELETE("/api/orders/:orderid", middleware.Authenticate(h.DeleteOrder))
	router.GET("/api/orders/:orderid/invoice", middleware.Authenticate(h.PrintInvoice))
}

func AddAuthRoutes(router *httprouter.Router, h *auth.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/login", rl.Limit(h.Login))
}

func AddDescribeRoutes(router *httprouter.Router, g *describe.Generator, rl *ratelim.RateLimiter) {
	router.POST("/api/describe", rl.Limit(middleware.Authenticate(g.DescribeProduct)))
}

func AddFeedRoutes(router *httprouter.Router, hub *feed.Hub) {
	router.GET("/api/feed/orders", feed.WebSocketHandler(hub))
}

// AddCompatRoutes mounts the legacy single-endpoint contract.
func AddCompatRoutes(router *httprouter.Router, h *compat.Handler, rl *ratelim.RateLimiter) {
	router.GET("/api/store", h.Serve)
	router.POST("/api/store", rl.Limit(h.Serve))
}
