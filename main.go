package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"foodorderdb/config"
	"foodorderdb/database"
	"foodorderdb/seeder"
	"foodorderdb/utils"
)

const configPath = "config.yaml"

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}
}

func main() {
	conf, err := config.Parse(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	utils.InitLogger(conf.Logging.LogLevel)

	db, err := database.Open(conf)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	utils.InfoLogger.Println("Database connection established")

	ctx := context.Background()

	if conf.Database.Recreate {
		if err := database.Reset(db); err != nil {
			utils.ErrorLogger.Fatalf("Failed to drop tables: %v", err)
		}
		utils.InfoLogger.Println("Dropped existing tables")
	}
	if err := database.EnsureSchema(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to create schema: %v", err)
	}
	utils.InfoLogger.Println("Schema ready")

	if err := seeder.New(db, conf).Run(ctx); err != nil {
		utils.ErrorLogger.Fatalf("Seeding aborted: %v", err)
	}

	if err := seeder.Report(ctx, db, conf); err != nil {
		utils.ErrorLogger.Fatalf("Sanity check failed: %v", err)
	}
	utils.InfoLogger.Println("Sanity check passed")
}
