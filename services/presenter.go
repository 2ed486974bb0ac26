package services

import (
	"strconv"

	"ticket-board/models"
)

// Present turns a board into its presentation model. userName resolves the
// keys of a user-grouped board.
func Present(board *models.Board, userName func(string) string) *models.BoardView {
	view := &models.BoardView{
		GroupBy: board.GroupBy,
		SortBy:  board.SortBy,
		Columns: make([]models.ColumnView, 0, len(board.Buckets)),
	}

	for _, bucket := range board.Buckets {
		title, icon := columnHeading(board.GroupBy, bucket.Key, userName)
		column := models.ColumnView{
			Key:   bucket.Key,
			Title: title,
			Icon:  icon,
			Count: len(bucket.Tickets),
			Cards: make([]models.CardView, 0, len(bucket.Tickets)),
		}
		for _, ticket := range bucket.Tickets {
			column.Cards = append(column.Cards, presentCard(board.GroupBy, ticket))
		}
		view.Columns = append(view.Columns, column)
	}

	return view
}

func columnHeading(groupBy models.GroupBy, key string, userName func(string) string) (string, string) {
	switch groupBy {
	case models.GroupByStatus:
		status := models.TicketStatus(key)
		if label := status.Label(); label != "" {
			return label, status.Icon()
		}
	case models.GroupByPriority:
		if value, err := strconv.Atoi(key); err == nil {
			priority := models.Priority(value)
			if label := priority.Label(); label != "" {
				return label, priority.Icon()
			}
		}
	case models.GroupByUser:
		if userName != nil {
			return userName(key), ""
		}
	}
	return key, ""
}

// presentCard fills in the icons that the column heading does not already show
func presentCard(groupBy models.GroupBy, ticket models.Ticket) models.CardView {
	card := models.CardView{
		ID:    ticket.ID,
		Title: ticket.Title,
		Tag:   ticket.FirstTag(),
	}

	if groupBy == models.GroupByPriority || groupBy == models.GroupByUser {
		card.StatusIcon = ticket.Status.Icon()
		card.StatusLabel = ticket.Status.Label()
	}
	if groupBy == models.GroupByStatus || groupBy == models.GroupByUser {
		card.PriorityIcon = ticket.Priority.Icon()
		card.PriorityName = ticket.Priority.Label()
	}

	return card
}
