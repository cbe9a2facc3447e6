package main

import (
	"context"
	"log"

	"notevision-be/internal/bootstrap"
	"notevision-be/internal/config"
	"notevision-be/internal/server"
	"notevision-be/internal/tracer"
	"notevision-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()
	if cfg.Keys.JWTSecret == "" {
		log.Fatal("Error: JWT_SECRET is not set")
	}

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
