package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/premium-auto/showroom-api/config"
	"github.com/premium-auto/showroom-api/internal/handler"
	"github.com/premium-auto/showroom-api/internal/mailer"
	"github.com/premium-auto/showroom-api/internal/middleware"
	"github.com/premium-auto/showroom-api/internal/repository"
	"github.com/premium-auto/showroom-api/internal/service"
	"github.com/premium-auto/showroom-api/pkg/database"
	"github.com/premium-auto/showroom-api/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// Optional event publisher: submission events for downstream consumers.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RABBITMQ_URL not set, event publishing disabled")
	}

	mail := mailer.New(cfg.EmailHost, cfg.EmailPort, cfg.EmailUser, cfg.EmailPass, cfg.EmailFrom)

	// Repositories
	bookingRepo := repository.NewBookingRepository(db)
	testDriveRepo := repository.NewTestDriveRepository(db)

	// Services
	bookingSvc := service.NewBookingService(bookingRepo, mail, publisher)
	testDriveSvc := service.NewTestDriveService(testDriveRepo, mail, publisher)

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/api/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":    "OK",
			"message":   "Vehicle Showroom API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e)
	handler.NewTestDriveHandler(testDriveSvc).RegisterRoutes(e)

	go func() {
		log.Printf("Showroom API starting on :%s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
