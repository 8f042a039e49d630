package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/agentgenesis/api/internal/agentgen"
	"github.com/agentgenesis/api/internal/config"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Connecting to Gemini model:", cfg.GeminiModel)

	backend, err := agentgen.NewGeminiBackend(ctx, agentgen.GeminiConfig{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		BaseURL: cfg.GeminiBaseURL,
	})
	if err != nil {
		fmt.Printf("Error creating backend: %v\n", err)
		os.Exit(1)
	}

	if err := backend.Ping(ctx); err != nil {
		fmt.Printf("Error pinging (%s): %v\n", agentgen.KindOf(err), err)
		os.Exit(1)
	}

	fmt.Println("Connection successful!")
}
