package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/stretchr/testify/assert"
)

func TestNewTable(t *testing.T) {
	plainOutput(t)
	columns := []TableColumn{
		{Title: "FROM", Width: 10},
		{Title: "TO", Width: 10},
	}
	rows := []table.Row{
		{"stopped", "spinning"},
		{"spinning", "paused"},
	}

	view := NewTable(columns, rows).View()

	assert.Contains(t, view, "FROM")
	assert.Contains(t, view, "TO")
	assert.Contains(t, view, "stopped")
	assert.Contains(t, view, "paused")
}

func TestNewTable_EmptyRows(t *testing.T) {
	plainOutput(t)
	view := NewTable([]TableColumn{{Title: "STATE", Width: 10}}, nil).View()
	assert.Contains(t, view, "STATE")
}

func TestRenderSimpleTable(t *testing.T) {
	plainOutput(t)
	columns := []TableColumn{
		{Title: "STATE", Width: 10},
		{Title: "ACTION", Width: 12},
	}

	out := RenderSimpleTable(columns, [][]string{
		{"spinning", "animate"},
		{"paused", "cancel"},
		{"stopped", "set"},
	})

	assert.Contains(t, out, "ACTION")
	for _, want := range []string{"animate", "cancel", "set"} {
		assert.Contains(t, out, want)
	}
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), 3)
}

func TestRenderSimpleTable_NoRows(t *testing.T) {
	assert.Empty(t, RenderSimpleTable([]TableColumn{{Title: "STATE", Width: 10}}, nil))
}
