package styles_test

import (
	_ "embed"
	"testing"

	"github.com/arthur-debert/hearth/pkg/ui/output/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:embed styles.yaml
var embeddedForRestore []byte

func TestStyleRegistry(t *testing.T) {
	for _, name := range []string{"Header", "Success", "Error", "Warning", "Action", "FilePath", "Muted"} {
		t.Run(name, func(t *testing.T) {
			_, exists := styles.StyleRegistry[name]
			assert.True(t, exists, "Style %s should exist in registry", name)
		})
	}
}

func TestGetStyle_UnknownNameRendersPlain(t *testing.T) {
	assert.Equal(t, "text", styles.GetStyle("NoSuchStyle").Render("text"))
}

func TestLoadStylesFromData(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, styles.LoadStylesFromData(embeddedForRestore))
	})

	err := styles.LoadStylesFromData([]byte(`
colors:
  pink:
    light: "#FF00FF"
    dark: "#FF88FF"
styles:
  Loud:
    bold: true
    foreground: pink
`))
	require.NoError(t, err)

	_, exists := styles.StyleRegistry["Loud"]
	assert.True(t, exists)
	_, exists = styles.StyleRegistry["Error"]
	assert.True(t, exists, "required styles are always present")

	assert.Error(t, styles.LoadStylesFromData([]byte("styles: [unterminated")))
}
