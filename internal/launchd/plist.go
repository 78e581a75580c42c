// package launchd manages the per-user launchd agent that runs the daily
// notification producer: descriptor rendering, launchctl calls, and the
// install/uninstall lifecycle.
package launchd

import (
	_ "embed"
	"sort"
	"strings"
)

//go:embed agent.plist
var descriptorTemplate string

const (
	// Label uniquely names the scheduled job within the user's launchd namespace.
	Label = "com.financeapp.notification"

	// PlaceholderProgram and PlaceholderInstallDir are the literal strings
	// rewritten inside the descriptor template at install time.
	PlaceholderProgram    = "/usr/local/bin/finnotify"
	PlaceholderInstallDir = "/opt/financeapp"
)

// DescriptorName returns the canonical plist filename for the agent.
func DescriptorName() string {
	return Label + ".plist"
}

// Template returns the embedded descriptor template before substitution.
func Template() string {
	return descriptorTemplate
}

// Substitute performs a literal find-and-replace of every occurrence of each
// key with its value. The descriptor is treated as opaque text; there is no
// plist parse and no escaping, so a placeholder appearing in a non-path
// context is rewritten too. Replacements are applied in sorted key order.
func Substitute(content string, replacements map[string]string) string {
	keys := make([]string, 0, len(replacements))
	for k := range replacements {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		content = strings.ReplaceAll(content, k, replacements[k])
	}
	return content
}

// RenderDescriptor materializes the embedded template for the resolved
// program path and installation directory.
func RenderDescriptor(programPath, installDir string) string {
	return Substitute(descriptorTemplate, map[string]string{
		PlaceholderProgram:    programPath,
		PlaceholderInstallDir: installDir,
	})
}
