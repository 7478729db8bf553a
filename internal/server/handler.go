// Package server exposes the configuration aggregator over HTTP.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/openlms/editorconf/internal/editor"
)

// Request surface.
const (
	PathConfiguration = "/api/v1/configuration"
	PathHealthz       = "/healthz"

	// UserHeader identifies the caller. The hosting platform's gateway is
	// expected to set it after authentication.
	UserHeader = "X-User-Id"

	paramContextType = "context_type"
	paramContextID   = "context_id"
)

// errorBody is the JSON failure envelope: a machine-readable code plus a
// human message.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ConfigurationHandler serves GET requests for the editor bootstrap
// configuration.
type ConfigurationHandler struct {
	provider AggregatorProvider
	logger   *slog.Logger
}

// NewConfigurationHandler creates the handler.
func NewConfigurationHandler(provider AggregatorProvider, logger *slog.Logger) *ConfigurationHandler {
	if logger == nil {
		logger = slog.Default().WithGroup("http")
	}
	return &ConfigurationHandler{provider: provider, logger: logger}
}

// ServeHTTP handles GET /api/v1/configuration.
func (h *ConfigurationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, "", "method not allowed")
		return
	}

	agg := h.provider.Aggregator()
	if agg == nil {
		writeError(w, http.StatusServiceUnavailable, "", "configuration not loaded yet")
		return
	}

	contextType := r.URL.Query().Get(paramContextType)
	rawID := r.URL.Query().Get(paramContextID)
	contextID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || contextID <= 0 {
		h.writeAggregatorError(w, r, editor.NewInvalidContextIDError(rawID))
		return
	}

	user := editor.User{ID: r.Header.Get(UserHeader)}

	resp, err := agg.GetConfiguration(r.Context(), user, contextType, contextID)
	if err != nil {
		h.writeAggregatorError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("Failed to encode configuration response", "error", err)
	}
}

// writeAggregatorError maps a coded aggregator error to its HTTP status.
func (h *ConfigurationHandler) writeAggregatorError(
	w http.ResponseWriter,
	r *http.Request,
	err error,
) {
	code := editor.ErrorCode(err)
	status := statusForCode(code)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		h.logger.Error("Configuration request failed",
			"error", err, "path", r.URL.Path, "query", r.URL.RawQuery)
		// Internal detail stays in the log.
		message = "internal error"
	}
	writeError(w, status, code, message)
}

func statusForCode(code string) int {
	switch code {
	case editor.ErrCodeInvalidContext:
		return http.StatusBadRequest
	case editor.ErrCodeContextNotFound:
		return http.StatusNotFound
	case editor.ErrCodePermissionDenied:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	var body errorBody
	body.Error.Code = code
	body.Error.Message = message

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	// Encoding a flat struct of strings cannot fail.
	_ = json.NewEncoder(w).Encode(body)
}

// HealthzHandler reports liveness.
func HealthzHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte("ok")); err != nil {
		slog.Default().Debug("Failed to write healthz response", "error", err)
	}
}
