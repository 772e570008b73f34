package snurr

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crazywolf132/snurr/internal/term"
)

func TestBuiltinStylesAreAnimatable(t *testing.T) {
	for name, symbols := range Styles {
		t.Run(name, func(t *testing.T) {
			glyphs := term.Graphemes(symbols)
			require.GreaterOrEqual(t, len(glyphs), 2, "a style needs at least two frames to animate")
			for _, glyph := range glyphs {
				assert.GreaterOrEqual(t, term.Width(glyph), 1)
			}
		})
	}
}

func TestClassicIsDefault(t *testing.T) {
	assert.Equal(t, Classic, Styles["classic"])
	assert.Equal(t, "/-\\|", Classic)
}

func TestStyleNames(t *testing.T) {
	names := StyleNames()
	assert.Len(t, names, len(Styles))
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "classic")
	assert.Contains(t, names, "dots")
}
