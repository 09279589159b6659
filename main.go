package main

import (
	"log"
	"os"

	"github.com/research-collab/collab-cli/cmd"
	"github.com/research-collab/collab-cli/internal/logging"
)

func main() {
	if err := logging.Init(); err != nil {
		log.Printf("Warning: logging disabled: %v", err)
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
