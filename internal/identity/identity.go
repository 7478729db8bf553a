// Package identity provides the file-backed context resolver and permission
// checker. The real platform owns users, roles, and enrolments; this
// package exists so the service can run standalone against a declared set
// of contexts and user-role assignments.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/openlms/editorconf/internal/editor"
	"github.com/openlms/editorconf/internal/settings/loader"
)

// Role is a named bundle of capabilities.
type Role string

const (
	RoleManager        Role = "manager"
	RoleEditingTeacher Role = "editingteacher"
	RoleTeacher        Role = "teacher"
	RoleStudent        Role = "student"
	RoleGuest          Role = "guest"
)

// ErrUnknownRole is returned when a user declaration names a role that is
// not in the role table.
var ErrUnknownRole = errors.New("unknown role")

// roleCapabilities is the static capability table. Guests can use the
// editor but hold none of the gated plugin capabilities; students may embed
// H5P but not use AI generation.
var roleCapabilities = map[Role]map[editor.Capability]bool{
	RoleManager: {
		editor.CapUseEditor:  true,
		editor.CapGenerateAI: true,
		editor.CapEmbedH5P:   true,
	},
	RoleEditingTeacher: {
		editor.CapUseEditor:  true,
		editor.CapGenerateAI: true,
		editor.CapEmbedH5P:   true,
	},
	RoleTeacher: {
		editor.CapUseEditor:  true,
		editor.CapGenerateAI: true,
		editor.CapEmbedH5P:   true,
	},
	RoleStudent: {
		editor.CapUseEditor: true,
		editor.CapEmbedH5P:  true,
	},
	RoleGuest: {
		editor.CapUseEditor: true,
	},
}

// ValidRole reports whether the role name is known.
func ValidRole(name string) bool {
	_, ok := roleCapabilities[Role(name)]
	return ok
}

// Interface guards
var (
	_ editor.ContextResolver   = (*Service)(nil)
	_ editor.PermissionChecker = (*Service)(nil)
)

// Service resolves contexts and evaluates capabilities from the declared
// contexts and user-role assignments of a settings document.
type Service struct {
	contexts map[string]editor.Context
	roles    map[string]Role
}

// New builds the identity service. Unknown role names in the user
// declarations are rejected; validation failures are joined so a single
// pass reports them all.
func New(contexts []loader.ContextDecl, users []loader.UserDecl) (*Service, error) {
	s := &Service{
		contexts: make(map[string]editor.Context, len(contexts)),
		roles:    make(map[string]Role, len(users)),
	}

	for _, decl := range contexts {
		s.contexts[contextKey(editor.ContextType(decl.Type), decl.ID)] = editor.Context{
			Type:     editor.ContextType(decl.Type),
			ID:       decl.ID,
			Name:     decl.Name,
			MaxBytes: decl.MaxBytes,
		}
	}

	var errs []error
	for _, decl := range users {
		if !ValidRole(decl.Role) {
			errs = append(errs, fmt.Errorf("%w: '%s' for user '%s'", ErrUnknownRole, decl.Role, decl.ID))
			continue
		}
		s.roles[decl.ID] = Role(decl.Role)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return s, nil
}

// Resolve implements editor.ContextResolver.
func (s *Service) Resolve(
	_ context.Context,
	contextType editor.ContextType,
	contextID int64,
) (editor.Context, error) {
	ectx, ok := s.contexts[contextKey(contextType, contextID)]
	if !ok {
		return editor.Context{}, editor.NewContextNotFoundError(contextType, contextID)
	}
	return ectx, nil
}

// UserHasCapability implements editor.PermissionChecker. Users without a
// declared role hold no capabilities at all.
func (s *Service) UserHasCapability(
	_ context.Context,
	user editor.User,
	capability editor.Capability,
	_ editor.Context,
) (bool, error) {
	role, ok := s.roles[user.ID]
	if !ok {
		return false, nil
	}
	return roleCapabilities[role][capability], nil
}

// RoleOf returns the declared role for a user id, and whether one exists.
func (s *Service) RoleOf(userID string) (Role, bool) {
	role, ok := s.roles[userID]
	return role, ok
}

func contextKey(contextType editor.ContextType, contextID int64) string {
	return string(contextType) + "/" + strconv.FormatInt(contextID, 10)
}
