package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/sehat-labs/gapscan/internal/adapters/driving/cli"
	"github.com/sehat-labs/gapscan/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	// Load environment variables from .env file, if one exists.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("loading .env: %v", err)
	}

	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
