// Package server exposes the bootstrap fraction engine over HTTP: a design
// tool posts a YAML configuration and receives the evaluations as JSON.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fusionforge/plasma-bootstrap/internal/config"
	"github.com/fusionforge/plasma-bootstrap/internal/engine"
	"github.com/fusionforge/plasma-bootstrap/internal/sweep"
	"github.com/fusionforge/plasma-bootstrap/pkg/constants"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the evaluation API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
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

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/evaluate", h.handleEvaluate)
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type evaluateResponse struct {
	Evaluations []evaluationPayload `json:"evaluations"`
	Sweep       []sweepPayload      `json:"sweep,omitempty"`
	Warnings    []string            `json:"warnings,omitempty"`
	Duration    string              `json:"duration"`
}

type evaluationPayload struct {
	Name     string   `json:"name"`
	Fraction float64  `json:"fraction"`
	Strategy string   `json:"strategy"`
	Capped   bool     `json:"capped"`
	Fixed    bool     `json:"fixed"`
	Notes    []string `json:"notes,omitempty"`
}

type sweepPayload struct {
	Value    float64 `json:"value"`
	Fraction float64 `json:"fraction"`
	Capped   bool    `json:"capped"`
	Error    string  `json:"error,omitempty"`
}

func (h *handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r.Body); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize))
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to read configuration: %v", err))
		return
	}

	cfg, err := config.LoadConfigurationFromBytes(buf.Bytes())
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	warnings := cfg.ValidateConfiguration()

	results, err := engine.Run(h.logger, cfg)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("evaluation failed: %v", err))
		return
	}

	var sweepResults []sweepPayload
	if cfg.Sweep != nil {
		runner, runnerErr := sweep.NewRunner(h.logger, cfg)
		if runnerErr != nil {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to initialize sweep: %v", runnerErr))
			return
		}
		points, sweepErr := runner.Run()
		if sweepErr != nil {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("sweep execution failed: %v", sweepErr))
			return
		}
		sweepResults = buildSweepPayload(points)
	}

	elapsed := time.Since(start)

	response := evaluateResponse{
		Evaluations: buildEvaluationPayload(results),
		Sweep:       sweepResults,
		Warnings:    warnings,
		Duration:    elapsed.String(),
	}

	h.logger.Info("evaluation computed",
		zap.String("op", "server.handleEvaluate"),
		zap.Int("scenarios", len(response.Evaluations)),
		zap.Int("sweepPoints", len(response.Sweep)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func buildEvaluationPayload(results []engine.Evaluation) []evaluationPayload {
	payload := make([]evaluationPayload, 0, len(results))
	for _, evaluation := range results {
		payload = append(payload, evaluationPayload{
			Name:     evaluation.Name,
			Fraction: evaluation.Result.Fraction,
			Strategy: evaluation.Result.Strategy.String(),
			Capped:   evaluation.Result.Capped,
			Fixed:    evaluation.Result.Fixed,
			Notes:    append([]string(nil), evaluation.Notes...),
		})
	}
	return payload
}

func buildSweepPayload(points []sweep.Point) []sweepPayload {
	payload := make([]sweepPayload, 0, len(points))
	for _, point := range points {
		entry := sweepPayload{
			Value:    point.Value,
			Fraction: point.Result.Fraction,
			Capped:   point.Result.Capped,
		}
		if point.Err != nil {
			entry.Error = point.Err.Error()
		}
		payload = append(payload, entry)
	}
	return payload
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string) {
	h.logger.Error("evaluation request failed",
		zap.String("op", "server.handleEvaluate"),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
