package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nandaputra/storefront-service/config"
	"github.com/nandaputra/storefront-service/internal/app"

	postgresDriver "github.com/nandaputra/storefront-service/internal/infrastructure/database/postgres"
)

func main() {
	config := config.CreateNewConfig()
	db, err := postgresDriver.Connect(config.PostgreSQLConfig.DBUsername, config.PostgreSQLConfig.DBPassword, config.PostgreSQLConfig.DBHost, config.PostgreSQLConfig.DBPort, config.PostgreSQLConfig.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	defer db.Close()

	server := app.App{
		DB:     db,
		Config: config,
	}

	go server.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := server.StopServer(); err != nil {
		log.Fatalf("Failed to shut down gracefully: %v", err)
	}
}
