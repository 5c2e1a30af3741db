package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dokan/auth"
	"dokan/compat"
	"dokan/config"
	"dokan/db"
	"dokan/describe"
	"dokan/feed"
	"dokan/gateway"
	"dokan/orders"
	"dokan/products"
	"dokan/ratelim"
	"dokan/rdx"
	"dokan/routes"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func setupRouter(cfg config.Config, gw gateway.Gateway, hub *feed.Hub, rl *ratelim.RateLimiter) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", Index)

	routes.AddProductRoutes(router, products.NewHandler(gw))
	routes.AddOrderRoutes(router, orders.NewHandler(gw, hub), rl)
	routes.AddAuthRoutes(router, auth.NewHandler(cfg.AdminPassword, cfg.AdminPasswordHash), rl)
	routes.AddDescribeRoutes(router, describe.NewGenerator(cfg.GenAPIURL, cfg.GenAPIKey), rl)
	routes.AddFeedRoutes(router, hub)
	routes.AddCompatRoutes(router, compat.NewHandler(gw), rl)
	routes.AddStaticRoutes(router)

	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	cfg := config.Load()

	port := cfg.Port
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	// storage: Mongo when configured, setup mode otherwise
	var gw gateway.Gateway
	if cfg.Configured() {
		if err := db.Connect(context.Background(), cfg.MongoURI, cfg.MongoDB); err != nil {
			log.Fatalf("MongoDB connection failed: %v", err)
		}
		gw = gateway.NewMongoStore(db.ProductCollection, db.OrderCollection)
		log.Println("Storage: MongoDB")
	} else {
		gw = gateway.NewMemoryStore()
		log.Println("Storage: in-memory (setup mode, no MONGODB_URI configured)")
	}

	// redis cache is optional
	if err := rdx.Init(cfg.RedisURL, cfg.RedisPassword); err != nil {
		log.Printf("Redis unavailable, caching disabled: %v", err)
	}

	rateLimiter := ratelim.NewRateLimiter()

	hub := feed.NewHub()
	go hub.Run()

	router := setupRouter(cfg, gw, hub, rateLimiter)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		hub.Stop()
	})

	go func() {
		log.Printf("Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}
	db.Disconnect(context.Background())

	log.Println("Server stopped cleanly")
}
