package ui

import (
	"bytes"
	"testing"

	"gearsum/internal/schematic"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderGears(t *testing.T) {
	gears := []schematic.Gear{
		{
			Marker: schematic.Span{Row: 1, ColStart: 3, ColEnd: 4},
			Values: [2]int{467, 35},
			Ratio:  16345,
		},
		{
			Marker: schematic.Span{Row: 8, ColStart: 5, ColEnd: 6},
			Values: [2]int{755, 598},
			Ratio:  451490,
		},
	}

	out := RenderGears(NewStyles(LightTheme()), gears, 467835)

	for _, want := range []string{"Gears", "Ratio", "467", "35", "16345", "755", "598", "451490", "Total: 467835"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderGears_Empty(t *testing.T) {
	out := RenderGears(NewStyles(DarkTheme()), nil, 0)
	assert.Contains(t, out, "No gears found")
	assert.Contains(t, out, "Total: 0")
}

func TestWriteGears(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteGears(&buf, NewStyles(LightTheme()), nil, 0))
	assert.Contains(t, buf.String(), "No gears found")
}

func TestThemeFor(t *testing.T) {
	assert.False(t, ThemeFor("light").IsDark)
	assert.True(t, ThemeFor("dark").IsDark)

	t.Setenv("GEARSUM_DARK_MODE", "")
	t.Setenv("COLORFGBG", "15;0")
	assert.True(t, ThemeFor("auto").IsDark)

	t.Setenv("COLORFGBG", "0;15")
	assert.False(t, ThemeFor("auto").IsDark)

	t.Setenv("COLORFGBG", "")
	t.Setenv("GEARSUM_DARK_MODE", "1")
	assert.True(t, DetectTheme().IsDark)
}
