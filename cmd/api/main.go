package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/vinchivii/book-savvy-studio/internal/config"
	dbpkg "github.com/vinchivii/book-savvy-studio/internal/db"
	"github.com/vinchivii/book-savvy-studio/internal/payment"
	"github.com/vinchivii/book-savvy-studio/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	payments, err := payment.NewMercadoPago(cfg.MPAccessToken, cfg.PublicBaseURL)
	if err != nil {
		log.Fatalf("failed to init payment provider: %v", err)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, payments, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
