package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"pilmart-be/internal/seed"
)

func main() {
	_ = godotenv.Load()

	dataDir := flag.String("data", "", "data directory (defaults to $DATA_DIR or ./data)")
	flag.Parse()

	dir := *dataDir
	if dir == "" {
		dir = os.Getenv("DATA_DIR")
	}
	if dir == "" {
		dir = "data"
	}

	if err := seed.Ensure(dir); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	log.Printf("✅ Data files ready in %s", dir)
}
