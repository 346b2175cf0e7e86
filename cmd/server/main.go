package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"hospital-records-api/internal/config"
	"hospital-records-api/internal/database"
	"hospital-records-api/internal/handler"
	"hospital-records-api/internal/repository"
	"hospital-records-api/internal/router"
	"hospital-records-api/internal/service"
	"hospital-records-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(cfg.JWT.Secret, cfg.JWT.TokenExpiry)

	// 3. Initialize database connection
	db := database.Connect(cfg)

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	hospitalRepo := repository.NewHospitalRepo(db)

	// 5. Initialize services
	authService := service.NewAuthService(userRepo)
	hospitalService := service.NewHospitalService(hospitalRepo)

	// 6. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 7. Build the route table and router
	r := router.New(cfg, router.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Hospital: handler.NewHospitalHandler(hospitalService),
	})

	// 8. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}
