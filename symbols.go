package snurr

import "sort"

// Built-in symbol sets. Each is an ordered sequence of glyphs the
// spinner cycles through; any custom sequence of printable glyphs works
// just as well via WithSymbols.
const (
	Classic    = "/-\\|"             // Classic ASCII spinner (default)
	Dots       = "⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏"       // Braille dots
	Bar        = "▁▂▃▄▅▆▇█▇▆▅▄▃▂▁"   // Loading bar
	Earth      = "🌍🌎🌏"            // Earth rotation
	Moon       = "🌑🌒🌓🌔🌕🌖🌗🌘"  // Moon phases
	Clock      = "🕐🕑🕒🕓🕔🕕🕖🕗🕘🕙🕚🕛" // Clock rotation
	Arrows     = "←↖↑↗→↘↓↙"          // Arrow rotation
	DotsBounce = ".oO°Oo."           // Bouncing dots
	Triangles  = "◢◣◤◥"             // Rotating triangles
	Hearts     = "💛💙💜💚❤️"        // Colorful hearts
	Blocks     = "▌▀▐▄"             // Minimal blocks
	Sparkles   = "✨⭐️💫"           // Sparkling animation
	Wave       = "⎺⎻⎼⎽⎼⎻"           // Wave pattern
)

// Styles maps style names to their symbol sets, for callers that select
// a set by name (the CLI does).
var Styles = map[string]string{
	"classic":     Classic,
	"dots":        Dots,
	"bar":         Bar,
	"earth":       Earth,
	"moon":        Moon,
	"clock":       Clock,
	"arrows":      Arrows,
	"dots-bounce": DotsBounce,
	"triangles":   Triangles,
	"hearts":      Hearts,
	"blocks":      Blocks,
	"sparkles":    Sparkles,
	"wave":        Wave,
}

// StyleNames returns the built-in style names in sorted order.
func StyleNames() []string {
	names := make([]string, 0, len(Styles))
	for name := range Styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
