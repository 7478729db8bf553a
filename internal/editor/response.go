package editor

// SettingEntry is one name/value pair contributed by a plugin builder.
// Values are always serialized as text, including booleans, numbers, and
// JSON blobs.
type SettingEntry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PluginBlock is the settings contributed by one editor plugin. Settings
// preserve the order the builder declared them in.
type PluginBlock struct {
	Name     string         `json:"name"`
	Settings []SettingEntry `json:"settings"`
}

// InstalledLanguage is one display language available to the editor.
type InstalledLanguage struct {
	Lang string `json:"lang"`
	Name string `json:"name"`
}

// ConfigurationResponse is the editor bootstrap payload. It is constructed
// fresh per request and read-only after construction. Plugin ordering
// follows the static registration order of the registry, never alphabetical.
type ConfigurationResponse struct {
	ContextID             int64               `json:"contextid"`
	Branding              bool                `json:"branding"`
	ExtendedValidElements string              `json:"extendedvalidelements"`
	InstalledLanguages    []InstalledLanguage `json:"installedlanguages"`
	Plugins               []PluginBlock       `json:"plugins"`
}

// FindPlugin returns the block for the named plugin, or nil when the plugin
// is absent from the response.
func (r *ConfigurationResponse) FindPlugin(name string) *PluginBlock {
	for i := range r.Plugins {
		if r.Plugins[i].Name == name {
			return &r.Plugins[i]
		}
	}
	return nil
}

// PluginNames returns the plugin names in response order.
func (r *ConfigurationResponse) PluginNames() []string {
	names := make([]string, 0, len(r.Plugins))
	for _, p := range r.Plugins {
		names = append(names, p.Name)
	}
	return names
}
