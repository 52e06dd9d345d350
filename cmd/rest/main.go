package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"storefront-be/internal/bootstrap"
	"storefront-be/internal/config"
	"storefront-be/internal/server"
	"storefront-be/internal/tracer"
	"storefront-be/pkg/database"
)

func main() {
	// 0. Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer("storefront-be")
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection, database.PoolConfig{
		MaxIdleConns: cfg.Database.MaxIdleConns,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		LogLevel:     cfg.Database.LogLevel,
	})
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Close()

	// 4. Start Background Services
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("Background: Starting cart line consumer...")
	if err := container.ConsumerService.Consume(ctx); err != nil {
		log.Fatalf("Cart line consumer failed to start: %v", err)
	}
	go container.NotificationService.Start()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		<-ctx.Done()
		log.Println("Shutting down...")
		if err := srv.Shutdown(); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// 6. Run Server
	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
