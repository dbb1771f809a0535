package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/corrooli/passphrase-service/internal/app"
	"github.com/corrooli/passphrase-service/internal/config"
)

func main() {
	fmt.Println("Passphrase Generator")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create context that listens for the interrupt signal from the OS
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(cfg, nil)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	application.ShowProgress = true

	if err := application.LoadPool(ctx); err != nil {
		log.Fatalf("Failed to load word pool: %v", err)
	}
	fmt.Printf("\nWord pool ready (%d words)\n\n", application.PoolSize())

	// Ask for the two generation parameters
	req, err := app.PromptParams(os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("Invalid input: %v", err)
	}

	result, err := application.Generate(ctx, req)
	if err != nil {
		log.Fatalf("Failed to generate passphrases: %v", err)
	}

	// Output results
	switch cfg.Output.Format {
	case "json":
		var output []byte
		if cfg.Output.PrettyPrint {
			output, err = json.MarshalIndent(result, "", "    ")
		} else {
			output, err = json.Marshal(result)
		}
		if err != nil {
			log.Fatalf("Failed to marshal results: %v", err)
		}
		fmt.Println(string(output))
	default:
		fmt.Println()
		for _, phrase := range result.Passphrases {
			fmt.Println(phrase)
		}
	}
}
