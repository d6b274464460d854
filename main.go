package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/ysaito/tango/cmd"
)

func main() {
	// Optional .env for local overrides (TANGO_DB, TANGO_TZ).
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
