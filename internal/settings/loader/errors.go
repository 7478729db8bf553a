package loader

import "errors"

// Loader-specific errors
var (
	ErrFailedToLoadSettings     = errors.New("failed to load settings")
	ErrFailedToValidateSettings = errors.New("failed to validate settings")
	ErrNoSourceProvided         = errors.New("no source provided to loader")
	ErrUnsupportedExtension     = errors.New("unsupported file extension")
	ErrParseToml                = errors.New("failed to parse TOML")
	ErrParseYaml                = errors.New("failed to parse YAML")
)

// Validation specific errors
var (
	ErrEmptyID           = errors.New("empty ID")
	ErrDuplicateContext  = errors.New("duplicate context")
	ErrDuplicateUser     = errors.New("duplicate user ID")
	ErrDuplicateLanguage = errors.New("duplicate language code")
	ErrInvalidContextID  = errors.New("invalid context ID")
	ErrInvalidValue      = errors.New("invalid value")
	ErrMissingField      = errors.New("missing required field")
)
