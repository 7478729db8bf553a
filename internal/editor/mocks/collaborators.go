// Package mocks provides testify mock implementations of the editor
// collaborator interfaces for testing the aggregator and HTTP handlers.
package mocks

import (
	"context"

	"github.com/openlms/editorconf/internal/editor"
	"github.com/stretchr/testify/mock"
)

// Interface guards
var (
	_ editor.ContextResolver    = (*MockContextResolver)(nil)
	_ editor.PermissionChecker  = (*MockPermissionChecker)(nil)
	_ editor.LanguageCatalog    = (*MockLanguageCatalog)(nil)
	_ editor.UploadLimitService = (*MockUploadLimitService)(nil)
	_ editor.StatusProvider     = (*MockStatusProvider)(nil)
	_ editor.SettingsBuilder    = (*MockSettingsBuilder)(nil)
)

// MockContextResolver is a mock implementation of editor.ContextResolver.
type MockContextResolver struct {
	mock.Mock
}

func (m *MockContextResolver) Resolve(
	ctx context.Context,
	contextType editor.ContextType,
	contextID int64,
) (editor.Context, error) {
	args := m.Called(ctx, contextType, contextID)
	return args.Get(0).(editor.Context), args.Error(1)
}

// MockPermissionChecker is a mock implementation of editor.PermissionChecker.
type MockPermissionChecker struct {
	mock.Mock
}

func (m *MockPermissionChecker) UserHasCapability(
	ctx context.Context,
	user editor.User,
	capability editor.Capability,
	ectx editor.Context,
) (bool, error) {
	args := m.Called(ctx, user, capability, ectx)
	return args.Bool(0), args.Error(1)
}

// MockLanguageCatalog is a mock implementation of editor.LanguageCatalog.
type MockLanguageCatalog struct {
	mock.Mock
}

func (m *MockLanguageCatalog) InstalledTranslations(
	ctx context.Context,
) ([]editor.InstalledLanguage, error) {
	args := m.Called(ctx)
	if langs := args.Get(0); langs != nil {
		return langs.([]editor.InstalledLanguage), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockUploadLimitService is a mock implementation of
// editor.UploadLimitService.
type MockUploadLimitService struct {
	mock.Mock
}

func (m *MockUploadLimitService) MaxUploadSize(
	ctx context.Context,
	ectx editor.Context,
) int64 {
	args := m.Called(ctx, ectx)
	return args.Get(0).(int64)
}

// MockStatusProvider is a mock implementation of editor.StatusProvider.
// NewMockStatusProvider presets Enabled to return true for any plugin.
type MockStatusProvider struct {
	mock.Mock
}

// NewMockStatusProvider creates a status provider mock that reports every
// plugin enabled.
func NewMockStatusProvider() *MockStatusProvider {
	m := &MockStatusProvider{}
	m.On("Enabled", mock.Anything).Return(true)
	return m
}

func (m *MockStatusProvider) Enabled(plugin string) bool {
	args := m.Called(plugin)
	return args.Bool(0)
}

// MockSettingsBuilder is a mock implementation of editor.SettingsBuilder.
type MockSettingsBuilder struct {
	mock.Mock
}

func (m *MockSettingsBuilder) BuildSettings(
	ctx context.Context,
	in editor.BuildInput,
) ([]editor.SettingEntry, error) {
	args := m.Called(ctx, in)
	if entries := args.Get(0); entries != nil {
		return entries.([]editor.SettingEntry), args.Error(1)
	}
	return nil, args.Error(1)
}
