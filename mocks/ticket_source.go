package mocks

import (
	"context"

	"ticket-board/models"
)

// MockTicketSource is a mock implementation of the TicketSource interface
type MockTicketSource struct {
	FetchSnapshotFunc func(ctx context.Context) (*models.Snapshot, error)
	Calls             int
}

// FetchSnapshot is the mock implementation of TicketSource's FetchSnapshot method
func (m *MockTicketSource) FetchSnapshot(ctx context.Context) (*models.Snapshot, error) {
	m.Calls++
	if m.FetchSnapshotFunc != nil {
		return m.FetchSnapshotFunc(ctx)
	}
	return &models.Snapshot{Tickets: []models.Ticket{}, Users: []models.User{}}, nil
}
