package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrz1836/opsdeck/internal/constants"
)

// TestStatusIcon verifies every valid status has an icon and unknown
// statuses stay visible.
func TestStatusIcon(t *testing.T) {
	t.Parallel()

	for _, status := range constants.ValidTaskStatuses() {
		assert.NotEmpty(t, StatusIcon(status), "status %s", status)
		assert.NotEqual(t, "?", StatusIcon(status), "status %s", status)
	}
	assert.Equal(t, "?", StatusIcon(constants.TaskStatus("mystery")))
}

// TestStatusColors verifies every valid status has a color mapping.
func TestStatusColors(t *testing.T) {
	t.Parallel()

	colors := StatusColors()
	for _, status := range constants.ValidTaskStatuses() {
		_, ok := colors[status]
		assert.True(t, ok, "status %s has no color", status)
	}
}

// TestFormatStatus verifies icon and label are combined.
func TestFormatStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "● In Progress", FormatStatus(constants.TaskStatusInProgress))
	assert.Equal(t, "✓ Completed", FormatStatus(constants.TaskStatusApproved))
}

// TestNewTableStyles verifies style construction.
func TestNewTableStyles(t *testing.T) {
	t.Parallel()

	styles := NewTableStyles()
	assert.True(t, styles.Header.GetBold())
	assert.True(t, styles.Group.GetBold())
}

// TestNewOutputStyles verifies the semantic styles are distinct.
func TestNewOutputStyles(t *testing.T) {
	t.Parallel()

	styles := NewOutputStyles()
	assert.Equal(t, ColorSuccess, styles.Success.GetForeground())
	assert.Equal(t, ColorError, styles.Error.GetForeground())
	assert.Equal(t, ColorWarning, styles.Warning.GetForeground())
}
