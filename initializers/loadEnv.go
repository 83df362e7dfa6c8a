package initializers

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv loads .env if present. Missing files are fine in deployed
// environments where config comes from real env vars.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded:", err)
	}
}
