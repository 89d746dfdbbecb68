package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kamalkharel2002/trackship/internal/app"
	"github.com/kamalkharel2002/trackship/internal/config"
)

func main() {
	// .env is optional; environment variables win over config.yml either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
