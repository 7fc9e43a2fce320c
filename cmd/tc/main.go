package main

import (
	"fmt"
	"os"

	"time-conductor/internal/api"
	"time-conductor/internal/cli"
	"time-conductor/internal/config"
)

func main() {
	// Load configuration from defaults and environment
	loader := config.NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Create repository based on environment
	factory := NewRepositoryFactory(getEnvironment(), cfg)
	repo, err := factory.CreateRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating repository: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	// Create API instance with the active clock
	apiInstance := api.New(repo, clockFromConfig(cfg), cfg)

	// Create and run the root command
	root := cli.NewRootCommand(apiInstance, cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
