package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderHTMLBasic(t *testing.T) {
	out := RenderHTML("# Title\n\nsome *emphasis*")
	require.Contains(t, out, "<h1>Title</h1>")
	require.Contains(t, out, "<em>emphasis</em>")
}

// Raw HTML in user-authored content must never reach the rendered output.
func TestRenderHTMLStripsRawHTML(t *testing.T) {
	out := RenderHTML(`hello <script>alert("x")</script> world`)
	require.NotContains(t, out, "<script>")
}

func TestRenderHTMLGFMTable(t *testing.T) {
	out := RenderHTML("| a | b |\n|---|---|\n| 1 | 2 |")
	require.Contains(t, out, "<table>")
}
