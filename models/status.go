package models

import "strings"

// TicketStatus represents the canonical status of a ticket on the board
type TicketStatus string

// Canonical ticket statuses
const (
	// StatusTodo indicates that work on the ticket has not started
	StatusTodo TicketStatus = "todo"

	// StatusInProgress indicates that the ticket is being worked on
	StatusInProgress TicketStatus = "in-progress"

	// StatusBacklog indicates that the ticket is parked. Unrecognized upstream statuses land here.
	StatusBacklog TicketStatus = "backlog"

	// StatusDone indicates that the ticket is finished
	StatusDone TicketStatus = "done"

	// StatusCancelled indicates that the ticket was abandoned
	StatusCancelled TicketStatus = "cancelled"
)

// AllStatuses lists every canonical status in board column order.
// Callers must not modify it.
var AllStatuses = []TicketStatus{
	StatusTodo,
	StatusInProgress,
	StatusBacklog,
	StatusDone,
	StatusCancelled,
}

// String returns the string representation of a TicketStatus
func (s TicketStatus) String() string {
	return string(s)
}

// IsValid checks if the TicketStatus is one of the canonical statuses
func (s TicketStatus) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusBacklog, StatusDone, StatusCancelled:
		return true
	default:
		return false
	}
}

// NormalizeStatus maps a raw upstream status onto a canonical status.
// Matching is case-insensitive; anything unrecognized becomes StatusBacklog.
func NormalizeStatus(raw string) TicketStatus {
	switch strings.ToLower(raw) {
	case "todo":
		return StatusTodo
	case "in progress", "in-progress":
		return StatusInProgress
	case "backlog":
		return StatusBacklog
	case "done":
		return StatusDone
	case "cancelled":
		return StatusCancelled
	default:
		return StatusBacklog
	}
}
