package models

import "strconv"

// Priority represents the urgency of a ticket, from 0 (none) to 4 (low).
// Note that 1 is the most urgent value, not 4.
type Priority int

const (
	PriorityNone   Priority = 0
	PriorityUrgent Priority = 1
	PriorityHigh   Priority = 2
	PriorityMedium Priority = 3
	PriorityLow    Priority = 4
)

// MinPriority and MaxPriority bound the accepted priority range
const (
	MinPriority = PriorityNone
	MaxPriority = PriorityLow
)

// IsValid checks if the Priority is within the accepted range
func (p Priority) IsValid() bool {
	return p >= MinPriority && p <= MaxPriority
}

// String returns the decimal form of the priority, which is also its bucket key
func (p Priority) String() string {
	return strconv.Itoa(int(p))
}

// Ticket represents a work item shown on the board.
// Status holds the canonical status once the ticket has passed through NormalizeStatus.
type Ticket struct {
	ID       string       `json:"id" yaml:"id"`
	Title    string       `json:"title" yaml:"title"`
	Tag      []string     `json:"tag" yaml:"tag"`
	Priority Priority     `json:"priority" yaml:"priority"`
	Status   TicketStatus `json:"status" yaml:"status"`
	UserID   string       `json:"userId" yaml:"userId"`
}

// FirstTag returns the first tag of the ticket, or an empty string if there is none
func (t Ticket) FirstTag() string {
	if len(t.Tag) == 0 {
		return ""
	}
	return t.Tag[0]
}

// User represents an assignee referenced by Ticket.UserID
type User struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Available bool   `json:"available,omitempty" yaml:"available,omitempty"`
}

// Snapshot is one fetch worth of tickets and users.
// It is treated as immutable once fetched.
type Snapshot struct {
	Tickets []Ticket `json:"tickets" yaml:"tickets"`
	Users   []User   `json:"users" yaml:"users"`
}
