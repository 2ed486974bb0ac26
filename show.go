package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ticket-board/services"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the board to the terminal",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	showCmd.Flags().Bool("no-color", false, "Disable colored output")
}

func runShow(cmd *cobra.Command, args []string) error {
	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Logs go to stderr so the board on stdout stays clean
	InitLogger(config, zapcore.AddSync(os.Stderr))
	defer func() { _ = Logger.Sync() }()

	noColor, err := cmd.Flags().GetBool("no-color")
	if err != nil {
		return err
	}

	timeout := time.Duration(config.Source.TimeoutSeconds+5) * time.Second
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	boardService := services.NewBoardService(services.NewTicketSource(config, Logger), Logger)
	if err := boardService.Load(ctx); err != nil {
		return fmt.Errorf("failed to fetch data: %w", err)
	}

	view, err := boardService.View(config.Board.Grouping, config.Board.Ordering)
	if err != nil {
		return err
	}

	Logger.Debug("Rendering board",
		zap.String("group", config.Board.Grouping.String()),
		zap.String("order", config.Board.Ordering.String()),
		zap.Int("columns", len(view.Columns)))

	renderer := services.NewTerminalRenderer(cmd.OutOrStdout(), !noColor && !color.NoColor)
	return renderer.Render(view)
}
