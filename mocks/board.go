package mocks

import (
	"context"

	"ticket-board/models"
)

// MockBoardService is a mock implementation of the BoardService interface
type MockBoardService struct {
	LoadFunc     func(ctx context.Context) error
	BoardFunc    func(groupBy models.GroupBy, sortBy models.SortBy) (*models.Board, error)
	ViewFunc     func(groupBy models.GroupBy, sortBy models.SortBy) (*models.BoardView, error)
	UserNameFunc func(userID string) string
}

// Load is the mock implementation of BoardService's Load method
func (m *MockBoardService) Load(ctx context.Context) error {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return nil
}

// Board is the mock implementation of BoardService's Board method
func (m *MockBoardService) Board(groupBy models.GroupBy, sortBy models.SortBy) (*models.Board, error) {
	if m.BoardFunc != nil {
		return m.BoardFunc(groupBy, sortBy)
	}
	return &models.Board{GroupBy: groupBy, SortBy: sortBy, Buckets: []models.Bucket{}}, nil
}

// View is the mock implementation of BoardService's View method
func (m *MockBoardService) View(groupBy models.GroupBy, sortBy models.SortBy) (*models.BoardView, error) {
	if m.ViewFunc != nil {
		return m.ViewFunc(groupBy, sortBy)
	}
	return &models.BoardView{GroupBy: groupBy, SortBy: sortBy, Columns: []models.ColumnView{}}, nil
}

// UserName is the mock implementation of BoardService's UserName method
func (m *MockBoardService) UserName(userID string) string {
	if m.UserNameFunc != nil {
		return m.UserNameFunc(userID)
	}
	return userID
}
