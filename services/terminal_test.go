package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-board/models"
)

func TestTerminalRenderer_Render(t *testing.T) {
	board, err := GroupAndSort(sampleTickets(), models.GroupByStatus, models.SortByPriority)
	require.NoError(t, err)

	var buf bytes.Buffer
	renderer := NewTerminalRenderer(&buf, false)
	require.NoError(t, renderer.Render(Present(board, nil)))

	out := buf.String()
	for _, heading := range []string{"To-Do (2)", "In Progress (2)", "Backlog (1)", "Done (1)", "Cancelled (0)"} {
		assert.Contains(t, out, heading)
	}
	for _, ticket := range sampleTickets() {
		assert.Contains(t, out, ticket.ID)
	}
	assert.NotContains(t, out, "\x1b[", "no escape codes when color is off")
}

func TestTerminalRenderer_Cell(t *testing.T) {
	renderer := NewTerminalRenderer(&bytes.Buffer{}, false)

	cell := renderer.cell(models.CardView{
		ID:           "CAM-1",
		Title:        "Update user profile page UI",
		Tag:          "Feature Request",
		StatusLabel:  "To-Do",
		PriorityName: "Low Priority",
	})

	assert.Equal(t, "CAM-1\nUpdate user profile page UI\nTo-Do · Low Priority · Feature Request", cell)
}

func TestTerminalRenderer_EmptyBoard(t *testing.T) {
	var buf bytes.Buffer
	renderer := NewTerminalRenderer(&buf, false)

	view := &models.BoardView{GroupBy: models.GroupByUser, SortBy: models.SortByTitle, Columns: []models.ColumnView{}}
	require.NoError(t, renderer.Render(view))
	assert.Equal(t, "No tickets\n", buf.String())
}

func TestTerminalRenderer_Colored(t *testing.T) {
	renderer := NewTerminalRenderer(&bytes.Buffer{}, true)

	heading := renderer.heading(&models.BoardView{GroupBy: models.GroupByStatus}, models.ColumnView{Key: "done", Title: "Done", Count: 3})
	assert.Contains(t, heading, "\x1b[")
	assert.Contains(t, heading, "Done (3)")
}
