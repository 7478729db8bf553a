package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/openlms/editorconf/internal/settings"
)

// GlobalNamespace is the store namespace holding editor-wide settings.
const GlobalNamespace = "editor"

// Global setting keys.
const (
	KeyBranding              = "branding"
	KeyExtendedValidElements = "extendedvalidelements"
	KeyDisabledPlugins       = "disabled_plugins"
	KeyMaxBytes              = "maxbytes"
)

// AggregatorConfig collects the collaborators the aggregator projects from.
type AggregatorConfig struct {
	Store    settings.Store
	Resolver ContextResolver
	Perms    PermissionChecker
	Langs    LanguageCatalog
	Uploads  UploadLimitService
	Status   StatusProvider
	Registry Registry
	Logger   *slog.Logger
}

// Aggregator assembles the editor bootstrap configuration for one user in
// one context. It is a pure read/transform over its collaborators: no
// mutation, no caching, a fresh response per call.
type Aggregator struct {
	store    settings.Store
	resolver ContextResolver
	perms    PermissionChecker
	langs    LanguageCatalog
	uploads  UploadLimitService
	status   StatusProvider
	registry Registry
	logger   *slog.Logger
}

// NewAggregator validates the configuration and returns an aggregator.
func NewAggregator(cfg AggregatorConfig) (*Aggregator, error) {
	var errs []error
	if cfg.Store == nil {
		errs = append(errs, fmt.Errorf("%w: store", ErrMissingDependency))
	}
	if cfg.Resolver == nil {
		errs = append(errs, fmt.Errorf("%w: context resolver", ErrMissingDependency))
	}
	if cfg.Perms == nil {
		errs = append(errs, fmt.Errorf("%w: permission checker", ErrMissingDependency))
	}
	if cfg.Langs == nil {
		errs = append(errs, fmt.Errorf("%w: language catalog", ErrMissingDependency))
	}
	if cfg.Uploads == nil {
		errs = append(errs, fmt.Errorf("%w: upload limit service", ErrMissingDependency))
	}
	if cfg.Status == nil {
		errs = append(errs, fmt.Errorf("%w: status provider", ErrMissingDependency))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	if err := cfg.Registry.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plugin registry: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default().WithGroup("aggregator")
	}

	return &Aggregator{
		store:    cfg.Store,
		resolver: cfg.Resolver,
		perms:    cfg.Perms,
		langs:    cfg.Langs,
		uploads:  cfg.Uploads,
		status:   cfg.Status,
		registry: cfg.Registry,
		logger:   logger,
	}, nil
}

// GetConfiguration resolves the context, gates access, and assembles the
// configuration response. Per-plugin capability misses are silent skips; a
// skipped plugin's configuration is never read.
func (a *Aggregator) GetConfiguration(
	ctx context.Context,
	user User,
	contextType string,
	contextID int64,
) (*ConfigurationResponse, error) {
	parsedType, err := ParseContextType(contextType)
	if err != nil {
		return nil, err
	}

	ectx, err := a.resolver.Resolve(ctx, parsedType, contextID)
	if err != nil {
		return nil, err
	}

	allowed, err := a.perms.UserHasCapability(ctx, user, CapUseEditor, ectx)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, NewPermissionDeniedError(user.ID, ectx)
	}

	global := settings.NewNamespace(a.store, GlobalNamespace)
	resp := &ConfigurationResponse{
		ContextID:             ectx.ID,
		Branding:              global.GetBool(KeyBranding, false),
		ExtendedValidElements: global.GetDefault(KeyExtendedValidElements, ""),
	}

	langs, err := a.langs.InstalledTranslations(ctx)
	if err != nil {
		return nil, NewCatalogFailedError(err)
	}
	resp.InstalledLanguages = append([]InstalledLanguage{}, langs...)

	resp.Plugins = make([]PluginBlock, 0, len(a.registry))
	for _, d := range a.registry {
		if !a.status.Enabled(d.Name) {
			continue
		}

		if d.Capability != "" {
			has, err := a.perms.UserHasCapability(ctx, user, d.Capability, ectx)
			if err != nil {
				return nil, err
			}
			if !has {
				a.logger.Debug("Skipping plugin, capability missing",
					"plugin", d.Name, "capability", d.Capability, "user", user.ID)
				continue
			}
		}

		entries, err := d.Builder.BuildSettings(ctx, BuildInput{
			Context: ectx,
			User:    user,
			Config:  settings.NewNamespace(a.store, d.Name),
			Uploads: a.uploads,
		})
		if err != nil {
			return nil, NewBuilderFailedError(d.Name, err)
		}
		if entries == nil {
			entries = []SettingEntry{}
		}

		resp.Plugins = append(resp.Plugins, PluginBlock{Name: d.Name, Settings: entries})
	}

	return resp, nil
}
