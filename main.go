package main

import (
	"github.com/joho/godotenv"
	"github.com/yamiarchive/yami/cmd"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Optional: YAMI_* overrides may live in a local .env file.
	_ = godotenv.Load()

	cmd.SetVersionInfo(version, commit, date)
	cmd.Execute()
}
