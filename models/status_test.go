package models

import (
	"testing"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want TicketStatus
	}{
		{raw: "Todo", want: StatusTodo},
		{raw: "todo", want: StatusTodo},
		{raw: "TODO", want: StatusTodo},
		{raw: "In Progress", want: StatusInProgress},
		{raw: "in progress", want: StatusInProgress},
		{raw: "in-progress", want: StatusInProgress},
		{raw: "BACKLOG", want: StatusBacklog},
		{raw: "Done", want: StatusDone},
		{raw: "Cancelled", want: StatusCancelled},
		{raw: "weird-value", want: StatusBacklog},
		{raw: "", want: StatusBacklog},
		{raw: " todo ", want: StatusBacklog},
		{raw: "In  Progress", want: StatusBacklog},
		{raw: "Canceled", want: StatusBacklog},
		{raw: "To Do", want: StatusBacklog},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := NormalizeStatus(tt.raw); got != tt.want {
				t.Errorf("NormalizeStatus(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeStatus_TotalAndIdempotent(t *testing.T) {
	inputs := []string{
		"Todo", "In Progress", "BACKLOG", "Done", "Cancelled", "weird-value",
		"", "in-progress", "DONE ", "état", "null", "0",
	}
	for _, status := range AllStatuses {
		inputs = append(inputs, string(status))
	}

	for _, raw := range inputs {
		once := NormalizeStatus(raw)
		if !once.IsValid() {
			t.Errorf("NormalizeStatus(%q) = %q, not a canonical status", raw, once)
		}
		if twice := NormalizeStatus(string(once)); twice != once {
			t.Errorf("NormalizeStatus not idempotent for %q: %q then %q", raw, once, twice)
		}
	}
}

func TestAllStatuses_Order(t *testing.T) {
	want := []TicketStatus{"todo", "in-progress", "backlog", "done", "cancelled"}
	if len(AllStatuses) != len(want) {
		t.Fatalf("len(AllStatuses) = %d, want %d", len(AllStatuses), len(want))
	}
	for i := range want {
		if AllStatuses[i] != want[i] {
			t.Errorf("AllStatuses[%d] = %q, want %q", i, AllStatuses[i], want[i])
		}
	}
}

func TestTicketStatus_LabelAndIcon(t *testing.T) {
	for _, status := range AllStatuses {
		if status.Label() == "" {
			t.Errorf("status %q has no label", status)
		}
		if status.Icon() == "" {
			t.Errorf("status %q has no icon", status)
		}
	}
	if StatusTodo.Label() != "To-Do" {
		t.Errorf("StatusTodo.Label() = %q, want To-Do", StatusTodo.Label())
	}
	if TicketStatus("unknown").Label() != "" {
		t.Errorf("unknown status should have no label")
	}
}

func TestPriority_Labels(t *testing.T) {
	tests := []struct {
		priority Priority
		label    string
		valid    bool
	}{
		{priority: 0, label: "No Priority", valid: true},
		{priority: 1, label: "Urgent", valid: true},
		{priority: 2, label: "High Priority", valid: true},
		{priority: 3, label: "Medium Priority", valid: true},
		{priority: 4, label: "Low Priority", valid: true},
		{priority: 5, label: "", valid: false},
		{priority: -1, label: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.priority.String(), func(t *testing.T) {
			if got := tt.priority.Label(); got != tt.label {
				t.Errorf("Label() = %q, want %q", got, tt.label)
			}
			if got := tt.priority.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
			if tt.valid && tt.priority.Icon() == "" {
				t.Errorf("Icon() is empty for valid priority %d", tt.priority)
			}
		})
	}
}
