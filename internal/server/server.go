package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bdabianco/marcolo-metrics/internal/advisor"
	"github.com/bdabianco/marcolo-metrics/internal/config"
	"github.com/bdabianco/marcolo-metrics/internal/engine"
	"github.com/bdabianco/marcolo-metrics/pkg/constants"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the metrics API.
func NewHandler(logger *zap.Logger, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxBodySize: maxBodySize, version: trimmedVersion}

	router := mux.NewRouter()

	// Metrics computation endpoint
	router.HandleFunc("/api/metrics", h.handleMetrics).Methods(http.MethodPost)

	// Advisor context serialization endpoint
	router.HandleFunc("/api/advisor/context", h.handleAdvisorContext).Methods(http.MethodPost)

	// Version endpoint for client metadata
	router.HandleFunc("/api/version", h.handleVersion).Methods(http.MethodGet)

	router.HandleFunc("/healthz", h.handleHealth).Methods(http.MethodGet)

	return router
}

type metricsRequest struct {
	profile   *config.Profile
	projectID string
	warnings  []string
}

type metricsResponse struct {
	Result   *engine.Result `json:"result"`
	Warnings []string       `json:"warnings,omitempty"`
	Duration string         `json:"duration"`
}

func (h *handler) handleMetrics(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	request, ok := h.decodeMetricsRequest(w, r, "server.handleMetrics")
	if !ok {
		return
	}

	result, err := engine.Compute(h.logger, request.profile, request.projectID)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleMetrics")
		return
	}

	elapsed := time.Since(start)
	h.logger.Info("metrics computed",
		zap.String("op", "server.handleMetrics"),
		zap.String("snapshotId", result.SnapshotID),
		zap.String("projectId", request.projectID),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, metricsResponse{
		Result:   result,
		Warnings: request.warnings,
		Duration: elapsed.String(),
	})
}

func (h *handler) handleAdvisorContext(w http.ResponseWriter, r *http.Request) {
	request, ok := h.decodeMetricsRequest(w, r, "server.handleAdvisorContext")
	if !ok {
		return
	}

	result, err := engine.Compute(h.logger, request.profile, request.projectID)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleAdvisorContext")
		return
	}

	data, err := advisor.Marshal(result)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleAdvisorContext")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("failed to write advisor context", zap.Error(err))
	}
}

// decodeMetricsRequest reads a JSON payload carrying a profile plus an
// optional projectId. The profile may sit under a "profile" key or form the
// whole body.
func (h *handler) decodeMetricsRequest(w http.ResponseWriter, r *http.Request, op string) (metricsRequest, bool) {
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), op)
			return metricsRequest{}, false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return metricsRequest{}, false
	}
	if payload == nil {
		payload = make(map[string]any)
	}

	profilePayload := payload
	if rawProfile, ok := payload["profile"]; ok {
		profileMap, ok := rawProfile.(map[string]any)
		if !ok {
			h.respondError(w, http.StatusBadRequest, "invalid profile payload: expected object", op)
			return metricsRequest{}, false
		}
		profilePayload = profileMap
	}

	var projectID string
	if rawProject, ok := payload["projectId"]; ok {
		projectID, _ = rawProject.(string)
	}

	profile, err := profileFromPayload(profilePayload)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return metricsRequest{}, false
	}

	return metricsRequest{
		profile:   profile,
		projectID: projectID,
		warnings:  profile.Validate(),
	}, true
}

func profileFromPayload(payload map[string]any) (*config.Profile, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile payload: %w", err)
	}

	var profile config.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("invalid profile payload: %w", err)
	}

	profile.EnsureIDs()
	return &profile, nil
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("metrics request failed",
		zap.String("op", op),
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
