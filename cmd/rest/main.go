package main

import (
	"context"
	"log"

	"giftshop-chatbot-be/internal/bootstrap"
	"giftshop-chatbot-be/internal/config"
	"giftshop-chatbot-be/internal/server"
	"giftshop-chatbot-be/internal/tracer"
	"giftshop-chatbot-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	color.Cyan("🎁 Giftshop Chatbot Backend")

	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.Connect(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Persister Service...")
		if err := container.PersisterService.Consume(context.Background()); err != nil {
			log.Printf("Background Persister Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	color.Green("Listening on port %s (environment: %s)", cfg.App.Port, cfg.App.Environment)

	// 6. Run Server
	log.Fatal(srv.Run())
}
