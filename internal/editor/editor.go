// Package editor holds the domain model for the rich-text editor
// configuration service: the response types, the collaborator contracts the
// aggregator depends on, and the aggregator itself.
package editor

import (
	"context"
	"fmt"
)

// ContextType is the kind of scope a configuration request is evaluated in.
type ContextType string

const (
	ContextCourse ContextType = "course"
	ContextModule ContextType = "module"
	ContextSystem ContextType = "system"
)

// ParseContextType validates a context type string from the wire.
func ParseContextType(s string) (ContextType, error) {
	switch ContextType(s) {
	case ContextCourse, ContextModule, ContextSystem:
		return ContextType(s), nil
	default:
		return "", NewInvalidContextError(s)
	}
}

// Context is a resolved permission and settings scope.
type Context struct {
	Type ContextType
	ID   int64
	Name string

	// MaxBytes is the per-context upload cap in bytes. Zero means the
	// context imposes no cap of its own.
	MaxBytes int64
}

// String returns "type/id", the canonical short form used in logs.
func (c Context) String() string {
	return fmt.Sprintf("%s/%d", c.Type, c.ID)
}

// User identifies the caller a configuration is assembled for. Role and
// capability evaluation is the permission checker's concern.
type User struct {
	ID string
}

// Capability is a named permission evaluated against a user within a
// context.
type Capability string

const (
	// CapUseEditor gates access to the configuration endpoint as a whole.
	CapUseEditor Capability = "editor:use"

	// CapGenerateAI gates the AI placement plugin.
	CapGenerateAI Capability = "aiplacement:generate"

	// CapEmbedH5P gates the H5P embedding plugin.
	CapEmbedH5P Capability = "h5p:addembed"
)

// ContextResolver resolves a (type, id) pair to an existing context.
type ContextResolver interface {
	// Resolve returns the context, or a coded not-found error when no
	// context with that type and id exists.
	Resolve(ctx context.Context, contextType ContextType, contextID int64) (Context, error)
}

// PermissionChecker evaluates capabilities for a user within a context.
type PermissionChecker interface {
	UserHasCapability(ctx context.Context, user User, capability Capability, ectx Context) (bool, error)
}

// LanguageCatalog lists the installed display languages in catalog order.
type LanguageCatalog interface {
	InstalledTranslations(ctx context.Context) ([]InstalledLanguage, error)
}

// UploadLimitService reports the effective maximum upload size in bytes for
// a context.
type UploadLimitService interface {
	MaxUploadSize(ctx context.Context, ectx Context) int64
}

// StatusProvider reports whether a plugin is enabled by the plugin
// management subsystem.
type StatusProvider interface {
	Enabled(plugin string) bool
}
