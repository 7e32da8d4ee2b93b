package main

import (
	"github.com/joho/godotenv"
)

// version is injected at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Best effort .env load so local runs can set the access code without
	// exporting it.
	_ = godotenv.Load()

	Execute()
}
