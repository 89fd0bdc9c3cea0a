package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"travelagent/internal/ai"
	"travelagent/internal/config"
	"travelagent/internal/infra"
)

func main() {
	prompt := flag.String("prompt", "Explain about Agentic AI?", "prompt sent to the model")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := infra.NewLogger(cfg.Log)

	ctx := context.Background()
	if cfg.AI.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.AI.Timeout)
		defer cancel()
	}

	gen, closeGen, err := infra.NewGenerator(ctx, cfg.AI, logger)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer closeGen()

	fmt.Printf("User: %s\n", *prompt)
	reply, err := gen.Generate(ctx, ai.GenerateRequest{Prompt: *prompt})
	if err != nil {
		log.Fatalf("Error generating reply: %v", err)
	}
	fmt.Printf("AI Reply: %s\n", reply)
}
