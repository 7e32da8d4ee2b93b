package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fin-tools/depositmax/internal/server"
)

var (
	addressFlag       string
	maxUploadSizeFlag string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the allocation API and web UI",
	Run:   runServe,
}

func init() {
	serveCmd.Flags().StringVar(&addressFlag, "address", "", "listen address override, e.g. :8080")
	serveCmd.Flags().StringVar(&maxUploadSizeFlag, "max-upload-size", "", "upload size limit override, e.g. 256K or 1M")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, err := server.LoadConfig(configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", configLocation, err)
		return
	}

	logger, err := initializeLogger(cfg.Logging, logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	if addressFlag != "" {
		cfg.Address = addressFlag
	}
	if maxUploadSizeFlag != "" {
		size, err := server.ParseSize(maxUploadSizeFlag)
		if err != nil {
			logger.Fatal("invalid --max-upload-size",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		cfg.SetUploadSizeBytes(size)
	}

	handler := server.NewHandler(logger, cfg.UploadSizeBytes(), version, cfg.AccessCode)
	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("op", "main"),
			zap.String("address", cfg.Address),
			zap.Int64("maxUploadSize", cfg.UploadSizeBytes()),
			zap.Bool("accessGate", cfg.AccessCode != ""),
		)
		errCh <- srv.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		logger.Info("server stopped", zap.String("op", "main"))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}
