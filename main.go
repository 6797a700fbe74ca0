package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sheikhrachel/go-life/repl"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := loadConfigWithFallback("config.json")
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
	}

	board, pool := initializeGame(config)
	displayGameInfo(config, board)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down gracefully...")
		os.Exit(0)
	}()

	r := repl.New(board, config, pool, os.Stdout)
	r.Run(os.Stdin)
}
