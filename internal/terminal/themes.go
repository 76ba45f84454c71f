package terminal

import (
	"sort"
	"strings"
)

// themeAliases maps user-facing theme names to canonical theme identifiers.
// Aliases like "clean" and "dark" resolve to their canonical themes.
var themeAliases = map[string]string{
	"matrix":       "matrix",
	"cyberpunk":    "cyberpunk",
	"hacker":       "hacker",
	"retro":        "retro",
	"professional": "professional",
	"clean":        "professional",
	"dark":         "matrix",
}

// availableThemes returns the accepted theme names, sorted, as a
// comma-separated list for error messages.
func availableThemes() string {
	names := make([]string, 0, len(themeAliases))
	for name := range themeAliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
