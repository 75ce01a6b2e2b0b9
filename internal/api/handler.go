package api

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gyaneshwarpardhi/vaultaudit/internal/analyze"
	"github.com/gyaneshwarpardhi/vaultaudit/internal/config"
	"github.com/gyaneshwarpardhi/vaultaudit/internal/decode"
	"github.com/gyaneshwarpardhi/vaultaudit/internal/metrics"
)

// statusClientClosedRequest is the nginx convention for requests the client
// abandoned before a response could be written.
const statusClientClosedRequest = 499

// Handler holds all HTTP handler dependencies.
type Handler struct {
	analyzer *analyze.Analyzer
	loader   *config.Loader
	mux      *http.ServeMux
}

// New creates an HTTP handler and registers all routes.
func New(analyzer *analyze.Analyzer, loader *config.Loader) http.Handler {
	h := &Handler{analyzer: analyzer, loader: loader, mux: http.NewServeMux()}

	h.mux.HandleFunc("POST /v1/reports", h.buildReport)
	h.mux.HandleFunc("GET /v1/rules", h.listRules)
	h.mux.HandleFunc("POST /v1/rules/reload", h.reloadRules)
	h.mux.HandleFunc("GET /healthz", h.healthz)
	h.mux.HandleFunc("GET /readyz", h.readyz)
	h.mux.Handle("GET /metrics", promhttp.Handler())

	return loggingMiddleware(h.mux)
}

// POST /v1/reports — synchronous report generation over one export payload.
func (h *Handler) buildReport(w http.ResponseWriter, r *http.Request) {
	maxBytes := h.loader.Config().Engine.MaxBodyBytes
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Payload too large", err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, "File decoding failed", err.Error())
		return
	}

	base64Required := strings.EqualFold(r.Header.Get("Content-Transfer-Encoding"), "base64")
	records, err := decode.Records(body, base64Required)
	if err != nil {
		var dErr *decode.Error
		if errors.As(err, &dErr) {
			metrics.DecodeFailures.WithLabelValues(string(dErr.Kind)).Inc()
			writeError(w, http.StatusBadRequest, dErr.Message, dErr.Details)
			return
		}
		writeError(w, http.StatusBadRequest, "File decoding failed", err.Error())
		return
	}

	start := time.Now()
	summary, err := h.analyzer.Run(r.Context(), records, time.Now())
	if err != nil {
		writeError(w, statusClientClosedRequest, "Report cancelled", err.Error())
		return
	}
	metrics.ReportBuildDuration.Observe(float64(time.Since(start).Milliseconds()))
	writeJSON(w, http.StatusOK, summary)
}

// GET /v1/rules — current classification table and thresholds.
func (h *Handler) listRules(w http.ResponseWriter, r *http.Request) {
	cfg := h.loader.Config()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"version":    cfg.Version,
		"thresholds": cfg.Thresholds,
		"categories": cfg.Categories,
	})
}

// POST /v1/rules/reload — hot-reload classification rules from disk.
func (h *Handler) reloadRules(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.loader.Reload()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Reload failed", err.Error())
		return
	}
	if err := config.Validate(cfg); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid config", err.Error())
		return
	}
	h.analyzer.SwapRules(analyze.BuildRules(cfg))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reloaded":   true,
		"version":    cfg.Version,
		"categories": len(cfg.Categories),
	})
}

// GET /healthz — always 200 (liveness probe).
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /readyz — ready once a rule bundle is loaded.
func (h *Handler) readyz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":        "ready",
		"rules_version": h.loader.Config().Version,
	})
}
