package services

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"ticket-board/models"
)

var statusColors = map[models.TicketStatus]color.Attribute{
	models.StatusTodo:       color.FgHiWhite,
	models.StatusInProgress: color.FgHiYellow,
	models.StatusBacklog:    color.FgHiBlue,
	models.StatusDone:       color.FgHiGreen,
	models.StatusCancelled:  color.FgHiRed,
}

// TerminalRenderer prints a board as a table with one column per bucket
type TerminalRenderer struct {
	Out   io.Writer
	Color bool
}

// NewTerminalRenderer creates a TerminalRenderer writing to out
func NewTerminalRenderer(out io.Writer, useColor bool) *TerminalRenderer {
	return &TerminalRenderer{Out: out, Color: useColor}
}

func (r *TerminalRenderer) paint(attr color.Attribute, s string) string {
	c := color.New(attr)
	if r.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

// heading renders a column title with its ticket count
func (r *TerminalRenderer) heading(view *models.BoardView, column models.ColumnView) string {
	title := fmt.Sprintf("%s (%d)", column.Title, column.Count)
	if view.GroupBy == models.GroupByStatus {
		if attr, ok := statusColors[models.TicketStatus(column.Key)]; ok {
			return r.paint(attr, title)
		}
	}
	return r.paint(color.Bold, title)
}

// cell renders a card as id, title and first tag, one per line
func (r *TerminalRenderer) cell(card models.CardView) string {
	meta := card.Tag
	if card.PriorityName != "" {
		meta = fmt.Sprintf("%s · %s", card.PriorityName, meta)
	}
	if card.StatusLabel != "" {
		meta = fmt.Sprintf("%s · %s", card.StatusLabel, meta)
	}
	return fmt.Sprintf("%s\n%s\n%s", r.paint(color.FgHiCyan, card.ID), card.Title, meta)
}

// Render writes the board to the output
func (r *TerminalRenderer) Render(view *models.BoardView) error {
	if len(view.Columns) == 0 {
		_, err := fmt.Fprintln(r.Out, "No tickets")
		return err
	}

	table := tablewriter.NewTable(r.Out,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithRowAlignment(tw.AlignLeft),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Lines:      tw.LinesNone,
				Separators: tw.SeparatorsNone,
			},
		}),
		tablewriter.WithPadding(tw.Padding{Left: "", Right: "  "}),
	)

	headers := make([]string, len(view.Columns))
	depth := 0
	for i, column := range view.Columns {
		headers[i] = r.heading(view, column)
		depth = max(depth, len(column.Cards))
	}
	table.Header(headers)

	for row := 0; row < depth; row++ {
		cells := make([]string, len(view.Columns))
		for i, column := range view.Columns {
			if row < len(column.Cards) {
				cells[i] = r.cell(column.Cards[row])
			}
		}
		if err := table.Append(cells); err != nil {
			return fmt.Errorf("failed to append board row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}
	return nil
}
