package editor

import (
	stderrors "errors"
	"strconv"

	"github.com/agilira/go-errors"
)

// Error codes for the configuration aggregator. The code is the
// machine-readable kind promised to callers; the message is for humans.
const (
	// Request errors (1100-1199)
	ErrCodeInvalidContext   = "EDITOR_1101"
	ErrCodeContextNotFound  = "EDITOR_1102"
	ErrCodePermissionDenied = "EDITOR_1103"

	// Aggregation errors (1200-1299)
	ErrCodeBuilderFailed = "EDITOR_1201"
	ErrCodeCatalogFailed = "EDITOR_1202"
)

// Registry validation errors
var (
	ErrEmptyPluginName    = stderrors.New("empty plugin name")
	ErrDuplicatePlugin    = stderrors.New("duplicate plugin name")
	ErrNilSettingsBuilder = stderrors.New("nil settings builder")
	ErrMissingDependency  = stderrors.New("missing aggregator dependency")
)

func NewInvalidContextError(contextType string) *errors.Error {
	return errors.New(ErrCodeInvalidContext, "Invalid context type").
		WithUserMessage("The requested context type is not recognized").
		WithContext("context_type", contextType).
		WithSeverity("error")
}

func NewInvalidContextIDError(raw string) *errors.Error {
	return errors.New(ErrCodeInvalidContext, "Invalid context id").
		WithUserMessage("The context id must be a positive integer").
		WithContext("context_id", raw).
		WithSeverity("error")
}

func NewContextNotFoundError(contextType ContextType, contextID int64) *errors.Error {
	return errors.New(ErrCodeContextNotFound, "Context not found").
		WithUserMessage("No context exists with the requested type and id").
		WithContext("context_type", string(contextType)).
		WithContext("context_id", strconv.FormatInt(contextID, 10)).
		WithSeverity("error")
}

func NewPermissionDeniedError(userID string, ectx Context) *errors.Error {
	return errors.New(ErrCodePermissionDenied, "Permission denied").
		WithUserMessage("You may not read the editor configuration for this context").
		WithContext("user_id", userID).
		WithContext("context", ectx.String()).
		WithSeverity("error")
}

func NewBuilderFailedError(plugin string, cause error) *errors.Error {
	return errors.Wrap(cause, ErrCodeBuilderFailed, "Plugin settings builder failed").
		WithUserMessage("The editor configuration could not be assembled").
		WithContext("plugin", plugin).
		WithSeverity("error")
}

func NewCatalogFailedError(cause error) *errors.Error {
	return errors.Wrap(cause, ErrCodeCatalogFailed, "Language catalog lookup failed").
		WithUserMessage("The editor configuration could not be assembled").
		WithSeverity("error")
}

// ErrorCode extracts the machine-readable code from an aggregator error.
// Returns the empty string for uncoded errors.
func ErrorCode(err error) string {
	var coded *errors.Error
	if stderrors.As(err, &coded) {
		return string(coded.Code)
	}
	return ""
}
