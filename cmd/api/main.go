package main

import (
	"log"
	"net/http"

	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/cache"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/config"
	dbpkg "github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/db"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/middleware"
	"github.com/Vladshmalii/adelante-crm-frontend-sub000/internal/routes"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	gridCache := cache.New(cfg)

	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, gridCache, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
