// Package server exposes the allocation engine over HTTP along with a small
// embedded web UI. Rate sheets are uploaded per request; nothing is persisted.
package server

import (
	"bytes"
	"crypto/subtle"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/fin-tools/depositmax/internal/allocator"
	"github.com/fin-tools/depositmax/internal/ratedata"
	"github.com/fin-tools/depositmax/pkg/constants"
	"github.com/fin-tools/depositmax/pkg/output"
	"github.com/fin-tools/depositmax/pkg/validation"
)

//go:embed static/*
var staticFiles embed.FS

// accessCodeHeader carries the shared secret when the access gate is enabled.
const accessCodeHeader = "X-Access-Code"

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
	accessCode    string
}

type optimizeOptions struct {
	TotalInvestment float64
	Compare         bool
}

// NewHandler constructs the HTTP handler that serves the web UI and the
// allocation API. An empty accessCode leaves the API open.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version, accessCode string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:        logger,
		maxUploadSize: maxUploadSize,
		version:       trimmedVersion,
		accessCode:    strings.TrimSpace(accessCode),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	// Allocation API endpoint (rate sheet upload)
	r.Post("/api/optimize", h.withAccess(h.handleOptimize))

	// Allocation API endpoint for editor-driven account sets
	r.Post("/api/editor/optimize", h.withAccess(h.handleOptimizeEditor))

	// Version endpoint for UI metadata
	r.Get("/api/version", h.handleVersion)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	r.Handle("/*", http.FileServer(http.FS(sub)))

	return r
}

type optimizeResponse struct {
	Accounts     []string              `json:"accounts"`
	Result       allocator.Result      `json:"result"`
	Comparison   *allocator.Comparison `json:"comparison,omitempty"`
	Requirements []string              `json:"requirements,omitempty"`
	CSV          string                `json:"csv"`
	Warnings     []string              `json:"warnings,omitempty"`
	Duration     string                `json:"duration"`
}

type editorRequest struct {
	Accounts []allocator.Account `json:"accounts"`
	Options  editorOptions       `json:"options"`
}

// editorOptions tolerates loosely typed values; browser editors send
// booleans as strings or numbers depending on the widget.
type editorOptions struct {
	TotalInvestment *float64    `json:"totalInvestment"`
	Compare         interface{} `json:"compare"`
}

// withAccess rejects requests without the shared access code. The check is
// constant time so the code cannot be probed byte by byte.
func (h *handler) withAccess(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.accessCode == "" {
			next(w, r)
			return
		}
		provided := r.Header.Get(accessCodeHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(h.accessCode)) != 1 {
			h.respondErrorWithOp(w, http.StatusUnauthorized, "missing or invalid access code", "server.withAccess")
			return
		}
		next(w, r)
	}
}

func (h *handler) handleOptimize(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize))
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "missing rate file")
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && h.logger != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", "server.handleOptimize"),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read rate file: %v", err))
		return
	}

	loader := ratedata.NewLoader(h.logger)
	var accounts []allocator.Account
	var warnings []string
	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".yaml", ".yml":
		accounts, warnings, err = loader.LoadYAML(&buf)
	default:
		// Sheets exported without an extension are treated as CSV.
		accounts, warnings, err = loader.LoadCSV(&buf)
	}
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("error reading rate data, %v", err))
		return
	}

	opts := optimizeOptions{TotalInvestment: constants.DefaultInvestmentAmount}
	if raw := strings.TrimSpace(r.FormValue("totalInvestment")); raw != "" {
		value, parseErr := strconv.ParseFloat(raw, 64)
		if parseErr != nil {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid totalInvestment %q", raw))
			return
		}
		opts.TotalInvestment = value
	}
	opts.Compare = coerceBool(r.FormValue("compare"))

	h.runOptimize(w, accounts, warnings, opts, start, "server.handleOptimize")
}

func (h *handler) handleOptimizeEditor(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	var payload editorRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxUploadSize), "server.handleOptimizeEditor")
			return
		}
		h.respondErrorWithOp(w, http.StatusBadRequest,
			fmt.Sprintf("failed to decode accounts: %v", err), "server.handleOptimizeEditor")
		return
	}

	if len(payload.Accounts) == 0 {
		h.respondErrorWithOp(w, http.StatusBadRequest, "no accounts provided", "server.handleOptimizeEditor")
		return
	}

	opts := optimizeOptions{TotalInvestment: constants.DefaultInvestmentAmount}
	if payload.Options.TotalInvestment != nil {
		opts.TotalInvestment = *payload.Options.TotalInvestment
	}
	opts.Compare = coerceBool(payload.Options.Compare)

	h.runOptimize(w, payload.Accounts, nil, opts, start, "server.handleOptimizeEditor")
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) runOptimize(w http.ResponseWriter, accounts []allocator.Account, warnings []string, opts optimizeOptions, start time.Time, op string) {
	warnings = append(warnings, validation.AccountWarnings(accounts)...)

	opt := allocator.New(h.logger)
	result := opt.OptimizeWithSalaryConstraint(accounts, opts.TotalInvestment)

	var comparison *allocator.Comparison
	if opts.Compare {
		c := opt.Compare(accounts, opts.TotalInvestment, result)
		comparison = &c
	}

	elapsed := time.Since(start)

	response := optimizeResponse{
		Accounts:     accountNames(accounts),
		Result:       result,
		Comparison:   comparison,
		Requirements: output.RequirementLines(accounts, result),
		CSV:          output.CsvString(result),
		Warnings:     warnings,
		Duration:     elapsed.String(),
	}

	if h.logger != nil {
		h.logger.Info("allocation computed",
			zap.String("op", op),
			zap.Int("accounts", len(accounts)),
			zap.Int("funded", len(result.Allocations)),
			zap.Duration("duration", elapsed),
		)
	}

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string) {
	h.respondErrorWithOp(w, status, msg, "server.handleOptimize")
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	if h.logger != nil {
		h.logger.Error("allocation request failed",
			zap.String("op", op),
			zap.Int("status", status),
			zap.String("error", msg),
		)
	}

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func accountNames(accounts []allocator.Account) []string {
	names := make([]string, 0, len(accounts))
	for _, account := range accounts {
		names = append(names, account.Name)
	}
	return names
}

func coerceBool(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return false
		}
		if parsed, err := strconv.ParseBool(trimmed); err == nil {
			return parsed
		}
	case float64:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	case json.Number:
		if parsed, err := strconv.ParseFloat(v.String(), 64); err == nil {
			return parsed != 0
		}
	}
	return false
}
