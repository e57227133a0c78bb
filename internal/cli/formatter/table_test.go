package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable([]string{"ID", "TITLE"}, [][]string{
		{"a", "Framing"},
		{"bbbb", "Roof"},
	}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ID    TITLE", lines[0])
	assert.Equal(t, "a     Framing", lines[2])
	assert.Equal(t, "bbbb  Roof", lines[3])
}

func TestRenderTableAligned_RightAlignsNumbers(t *testing.T) {
	out := stripANSI(RenderTableAligned([]string{"DAYS", "X"}, [][]string{
		{"5", "a"},
		{"120", "b"},
	}, 0))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "   5  a", lines[2])
	assert.Equal(t, " 120  b", lines[3])
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}
