package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/tradetide/tradetide/cmd/tradetide/cmd"
)

func main() {
	// Optional .env with TRADETIDE_* overrides; missing file is fine.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
