package fancy

import (
	"fmt"

	"github.com/openlms/editorconf/internal/editor"
)

// Longer setting values (the equation libraries JSON, most prominently) are
// truncated so the tree stays readable.
const maxSettingValueLen = 60

// ConfigurationTree renders a configuration response as a styled tree for
// the show command.
func ConfigurationTree(resp *editor.ConfigurationResponse) string {
	t := Tree().Root(RootStyle.Render(
		fmt.Sprintf("editor configuration (context %d)", resp.ContextID)))

	globals := BranchNode("globals", "")
	globals.Child(fmt.Sprintf("branding: %t", resp.Branding))
	globals.Child(fmt.Sprintf("extendedvalidelements: %s",
		TruncateString(resp.ExtendedValidElements, maxSettingValueLen)))
	t.Child(globals)

	langs := BranchNode("languages", fmt.Sprintf("(%d)", len(resp.InstalledLanguages)))
	for _, lang := range resp.InstalledLanguages {
		langs.Child(LanguageStyle.Render(lang.Lang) + " " + InfoStyle.Render(lang.Name))
	}
	t.Child(langs)

	plugins := BranchNode("plugins", fmt.Sprintf("(%d)", len(resp.Plugins)))
	for _, plugin := range resp.Plugins {
		node := Tree().Root(PluginStyle.Render(plugin.Name))
		for _, s := range plugin.Settings {
			node.Child(SettingStyle.Render(s.Name) + " = " +
				TruncateString(s.Value, maxSettingValueLen))
		}
		plugins.Child(node)
	}
	t.Child(plugins)

	return t.String()
}
