package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/config"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/joho/godotenv"
)

func main() {
	// Parse command line flags
	reset := flag.Bool("reset", false, "Delete every restaurant, pizza and price before seeding")
	driver := flag.String("driver", "", "Database driver (sqlite or postgres), overrides DB_DRIVER")
	path := flag.String("path", "", "SQLite database file, overrides DB_PATH")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment variables")
	}

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	dbConfig := conf.Database()
	if *driver != "" {
		dbConfig.Driver = *driver
	}
	if *path != "" {
		dbConfig.Path = *path
	}

	db, err := database.InitDatabase(dbConfig)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if *reset {
		if err := database.Reset(db); err != nil {
			log.Fatal("Failed to reset database:", err)
		}
		if err := database.Seed(db); err != nil {
			log.Fatal("Failed to seed database:", err)
		}
		fmt.Printf("✓ Database %s reset and seeded\n", dbConfig.String())
		return
	}

	if err := database.SeedIfEmpty(db); err != nil {
		log.Fatal("Failed to seed database:", err)
	}
	fmt.Printf("✓ Database %s ready\n", dbConfig.String())
}
