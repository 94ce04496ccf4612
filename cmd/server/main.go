package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"koffiehuis-be/internal/auth"
	"koffiehuis-be/internal/category"
	"koffiehuis-be/internal/config"
	"koffiehuis-be/internal/handler"
	"koffiehuis-be/internal/logger"
	"koffiehuis-be/internal/middleware"
	"koffiehuis-be/internal/order"
	"koffiehuis-be/internal/product"
	"koffiehuis-be/internal/upload"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	log := logger.L()

	categoryRepo, err := category.NewRepository(cfg.DataDir)
	if err != nil {
		log.Fatal("failed to init categories collection", zap.Error(err))
	}
	productRepo, err := product.NewRepository(cfg.DataDir)
	if err != nil {
		log.Fatal("failed to init products collection", zap.Error(err))
	}
	orderRepo, err := order.NewRepository(cfg.DataDir)
	if err != nil {
		log.Fatal("failed to init orders collection", zap.Error(err))
	}

	uploads, err := upload.NewProcessor(cfg.UploadDir, cfg.MaxUploadSize)
	if err != nil {
		log.Fatal("failed to init upload dir", zap.Error(err))
	}

	categorySvc := category.NewService(categoryRepo)
	productSvc := product.NewService(productRepo)
	orderSvc := order.NewService(orderRepo)
	authSvc := auth.NewService(auth.Config{
		Username:     cfg.AdminUsername,
		PasswordHash: cfg.AdminPasswordHash,
		Secret:       []byte(cfg.JWTSecret),
		TokenTTL:     cfg.TokenTTL,
	})

	limiter := middleware.NewRateLimiter(100, 15*time.Minute)
	requireAdmin := middleware.RequireAdmin(authSvc)

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Use(limiter.Middleware)

		r.Get("/health", handler.HealthHandler())
		r.Get("/categories", handler.ListCategoriesHandler(categorySvc))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", handler.ListProductsHandler(productSvc))
			r.Get("/{id}", handler.GetProductHandler(productSvc))

			r.Group(func(r chi.Router) {
				r.Use(requireAdmin)
				r.Post("/", handler.CreateProductHandler(productSvc, uploads))
				r.Put("/{id}", handler.UpdateProductHandler(productSvc, uploads))
				r.Delete("/{id}", handler.DeleteProductHandler(productSvc, uploads))
			})
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/{id}", handler.GetOrderHandler(orderSvc))
			r.Post("/", handler.CreateOrderHandler(orderSvc))

			r.Group(func(r chi.Router) {
				r.Use(requireAdmin)
				r.Get("/", handler.ListOrdersHandler(orderSvc))
				r.Put("/{id}/status", handler.UpdateOrderStatusHandler(orderSvc))
			})
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", handler.LoginHandler(authSvc))
			r.Post("/verify", handler.VerifyTokenHandler(authSvc))
		})
	})

	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("server running", zap.String("port", cfg.AppPort), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}
