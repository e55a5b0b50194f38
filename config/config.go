package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// InitConfig loads a local .env file into the environment. Missing files are
// tolerated so the server runs with plain environment variables in deploys.
func InitConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
		return
	}
	log.Println("loaded environment variables from .env")
}

func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}
	return b, nil
}
