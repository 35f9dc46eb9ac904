package main

import (
	"Zero-Desperdicio/cmd/config"
	migration "Zero-Desperdicio/cmd/database/migrate"
	"Zero-Desperdicio/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("connecting database: %v", err)
	}
	if err := migration.Migrate(db); err != nil {
		log.Fatalf("migrating database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("building app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}
	log.Fatal(app.Listen(":" + port))
}
