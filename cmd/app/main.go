package main

import (
	"log"

	"Smart-Fridge-Backend/cmd/config"
	migration "Smart-Fridge-Backend/cmd/database/migrate"
	"Smart-Fridge-Backend/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	app, sched, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to build application: %v", err)
	}
	defer sched.Stop()

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
