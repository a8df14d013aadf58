package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resto-backend/config"
	"resto-backend/handlers"
	"resto-backend/middleware"
	"resto-backend/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.DebugMode)
	}

	if err := config.InitDB(config.Getenv("DB_PATH", "resto.db")); err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer config.Close()

	r := gin.Default()
	r.Use(middleware.CORS(), middleware.RequestID())

	r.GET("/", handlers.Welcome)
	r.GET("/health", handlers.Health)
	routes.SetupRoutes(r)

	srv := &http.Server{
		Addr:    ":" + config.Getenv("PORT", "8080"),
		Handler: r,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("Server running on http://localhost%s", srv.Addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal("Failed to start server: ", err)
	}
}
