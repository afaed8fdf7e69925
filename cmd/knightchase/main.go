package main

import (
	"flag"
	"log"
	"os"

	"github.com/google/uuid"
)

func main() {
	cfg, err := parseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}

	runID := uuid.NewString()
	log.SetPrefix("[knightchase " + runID[:8] + "] ")

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatalf("run failed: %v", err)
	}
}
