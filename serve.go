package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ticket-board/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the board as JSON over HTTP",
	Long: `Serve exposes GET /health and GET /board?group=<status|priority|user>&order=<priority|title>.
The ticket snapshot is fetched on the first board request and reused afterwards.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 8080, "Port to listen on")
}

func runServe(cmd *cobra.Command, args []string) error {
	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	InitLogger(config, zapcore.AddSync(os.Stdout))
	defer func() { _ = Logger.Sync() }()

	source := services.NewTicketSource(config, Logger)
	boardService := services.NewBoardService(source, Logger)
	handler := services.NewBoardHandler(boardService, config, Logger)

	// Get port from environment variable (for Cloud Run compatibility) or config
	port := config.Server.Port
	if envPort := os.Getenv("PORT"); envPort != "" {
		if envPortInt, err := strconv.Atoi(envPort); err == nil {
			port = envPortInt
		}
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		Logger.Info("Starting server", zap.Int("port", port),
			zap.String("group", config.Board.Grouping.String()),
			zap.String("order", config.Board.Ordering.String()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		Logger.Error("Server error", zap.Error(err))
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	Logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	Logger.Info("Server stopped")
	return nil
}
