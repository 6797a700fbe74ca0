package main

import (
	"fmt"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// loadConfigWithFallback loads config.json, falling back to defaults
func loadConfigWithFallback(filename string) (utils.Config, error) {
	config, err := utils.LoadConfig(filename)
	if err != nil {
		return utils.DefaultConfig(), err
	}
	return config, nil
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*model.Board, *model.BoardPool) {
	var pool *model.BoardPool
	if config.UseBoardPool {
		pool = model.NewBoardPool()
	}

	board := model.NewBoard(config.Width, config.Height)
	return board, pool
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, board *model.Board) {
	fmt.Printf("Board: %dx%d | Parallel: %v | Pool: %v\n",
		board.GetWidth(), board.GetHeight(), config.UseParallel, config.UseBoardPool)
	fmt.Println("Type 'help' for commands, 'exit' to quit")
	fmt.Println()
}
