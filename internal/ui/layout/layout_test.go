package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		width, height int
		want          bool
	}{
		{MinWidth, MinHeight, false},
		{MinWidth - 1, MinHeight, true},
		{MinWidth, MinHeight - 1, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsTooSmall(tt.width, tt.height), "%dx%d", tt.width, tt.height)
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Practice", "linux.csv", 80)
	assert.Contains(t, h, AppName)
	assert.Contains(t, h, "Practice")
	assert.Contains(t, h, "linux.csv")
	assert.Equal(t, HeaderHeight, lipgloss.Height(h))
}

func TestRenderFrame(t *testing.T) {
	header := RenderHeader("T", "", 80)
	footer := RenderFooter([]KeyHint{{Key: "Ctrl+C", Description: "Quit"}}, 80)
	frame := RenderFrame(header, "body", footer, 80, 30)

	assert.Equal(t, 30, lipgloss.Height(frame))
	assert.True(t, strings.Contains(frame, "body"))
	assert.Contains(t, footer, "Quit")
}

func TestContentHeight(t *testing.T) {
	assert.Equal(t, 24, ContentHeight(30))
	assert.Equal(t, 0, ContentHeight(2))
}
