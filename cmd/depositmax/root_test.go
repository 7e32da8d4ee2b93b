package main

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/fin-tools/depositmax/internal/config"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name          string
		loggingConfig config.LoggingConfig
		override      string
		wantError     bool
		enabledLevel  zapcore.Level
		disabledLevel zapcore.Level
	}{
		{
			name:          "Defaults to info json",
			loggingConfig: config.LoggingConfig{},
			enabledLevel:  zapcore.InfoLevel,
			disabledLevel: zapcore.DebugLevel,
		},
		{
			name:          "Console debug",
			loggingConfig: config.LoggingConfig{Level: "debug", Format: "console"},
			enabledLevel:  zapcore.DebugLevel,
			disabledLevel: zapcore.DebugLevel - 1,
		},
		{
			name:          "Override wins over config",
			loggingConfig: config.LoggingConfig{Level: "debug"},
			override:      "error",
			enabledLevel:  zapcore.ErrorLevel,
			disabledLevel: zapcore.WarnLevel,
		},
		{
			name:          "Warning alias",
			loggingConfig: config.LoggingConfig{Level: "warning"},
			enabledLevel:  zapcore.WarnLevel,
			disabledLevel: zapcore.InfoLevel,
		},
		{
			name:          "Invalid level",
			loggingConfig: config.LoggingConfig{Level: "verbose"},
			wantError:     true,
		},
		{
			name:          "Invalid format",
			loggingConfig: config.LoggingConfig{Format: "xml"},
			wantError:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := initializeLogger(tt.loggingConfig, tt.override)
			if tt.wantError {
				if err == nil {
					t.Fatal("initializeLogger() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("initializeLogger() error = %v", err)
			}
			defer func() {
				_ = logger.Sync()
			}()

			if !logger.Core().Enabled(tt.enabledLevel) {
				t.Errorf("expected level %v to be enabled", tt.enabledLevel)
			}
			if logger.Core().Enabled(tt.disabledLevel) {
				t.Errorf("expected level %v to be disabled", tt.disabledLevel)
			}
		})
	}
}

func TestInitializeLoggerOutputFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", "depositmax.log")

	logger, err := initializeLogger(config.LoggingConfig{
		Level:      "info",
		Format:     "json",
		OutputFile: logPath,
	}, "")
	if err != nil {
		t.Fatalf("initializeLogger() error = %v", err)
	}

	logger.Info("log file smoke test")
	_ = logger.Sync()

	if _, err := os.Stat(logPath); err != nil {
		t.Fatalf("expected log file to exist: %v", err)
	}
}
