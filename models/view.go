package models

const iconDir = "/icons_FEtask/"

var priorityLabels = map[Priority]string{
	PriorityNone:   "No Priority",
	PriorityUrgent: "Urgent",
	PriorityHigh:   "High Priority",
	PriorityMedium: "Medium Priority",
	PriorityLow:    "Low Priority",
}

var priorityIcons = map[Priority]string{
	PriorityNone:   iconDir + "No-priority.svg",
	PriorityUrgent: iconDir + "SVG - Urgent Priority colour.svg",
	PriorityHigh:   iconDir + "Img - High Priority.svg",
	PriorityMedium: iconDir + "Img - Medium Priority.svg",
	PriorityLow:    iconDir + "Img - Low Priority.svg",
}

var statusLabels = map[TicketStatus]string{
	StatusTodo:       "To-Do",
	StatusInProgress: "In Progress",
	StatusBacklog:    "Backlog",
	StatusDone:       "Done",
	StatusCancelled:  "Cancelled",
}

var statusIcons = map[TicketStatus]string{
	StatusTodo:       iconDir + "To-do.svg",
	StatusInProgress: iconDir + "in-progress.svg",
	StatusBacklog:    iconDir + "Backlog.svg",
	StatusDone:       iconDir + "Done.svg",
	StatusCancelled:  iconDir + "Cancelled.svg",
}

// Label returns the human readable name of the priority, or "" if it has none
func (p Priority) Label() string {
	return priorityLabels[p]
}

// Icon returns the icon path of the priority, or "" if it has none
func (p Priority) Icon() string {
	return priorityIcons[p]
}

// Label returns the human readable name of the status, or "" if it has none
func (s TicketStatus) Label() string {
	return statusLabels[s]
}

// Icon returns the icon path of the status, or "" if it has none
func (s TicketStatus) Icon() string {
	return statusIcons[s]
}

// BoardView is the presentation model of a board
type BoardView struct {
	GroupBy GroupBy      `json:"groupBy"`
	SortBy  SortBy       `json:"sortBy"`
	Columns []ColumnView `json:"columns"`
}

// ColumnView is one rendered column.
// Title is a status or priority label, a user name, or the raw key as a fallback.
type ColumnView struct {
	Key   string     `json:"key"`
	Title string     `json:"title"`
	Icon  string     `json:"icon,omitempty"`
	Count int        `json:"count"`
	Cards []CardView `json:"cards"`
}

// CardView is one rendered ticket
type CardView struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Tag          string `json:"tag"`
	StatusIcon   string `json:"statusIcon,omitempty"`
	StatusLabel  string `json:"statusLabel,omitempty"`
	PriorityIcon string `json:"priorityIcon,omitempty"`
	PriorityName string `json:"priorityName,omitempty"`
}
