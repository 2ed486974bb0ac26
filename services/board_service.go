package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"ticket-board/models"
)

// BoardService defines the interface the presentation layer uses to build boards
type BoardService interface {
	// Load fetches the snapshot. Only the first successful call hits the source.
	Load(ctx context.Context) error

	// Board groups and sorts the loaded tickets
	Board(groupBy models.GroupBy, sortBy models.SortBy) (*models.Board, error)

	// View builds the presentation model of a board
	View(groupBy models.GroupBy, sortBy models.SortBy) (*models.BoardView, error)

	// UserName resolves a user id to its name, falling back to the id itself
	UserName(userID string) string
}

// BoardServiceImpl implements the BoardService interface
type BoardServiceImpl struct {
	source TicketSource
	logger *zap.Logger

	mu       sync.RWMutex
	snapshot *models.Snapshot
	users    map[string]models.User
}

// NewBoardService creates a new BoardService
func NewBoardService(source TicketSource, logger *zap.Logger) *BoardServiceImpl {
	return &BoardServiceImpl{
		source: source,
		logger: logger,
	}
}

// Load fetches the snapshot once per session. A failed fetch is not cached,
// so a later call may try again.
func (s *BoardServiceImpl) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot != nil {
		s.logger.Debug("Snapshot already loaded, skipping fetch")
		return nil
	}

	snapshot, err := s.source.FetchSnapshot(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch data", zap.Error(err))
		return err
	}

	users := make(map[string]models.User, len(snapshot.Users))
	for _, user := range snapshot.Users {
		users[user.ID] = user
	}

	s.snapshot = snapshot
	s.users = users
	return nil
}

// Board groups and sorts the loaded tickets
func (s *BoardServiceImpl) Board(groupBy models.GroupBy, sortBy models.SortBy) (*models.Board, error) {
	s.mu.RLock()
	snapshot := s.snapshot
	s.mu.RUnlock()

	if snapshot == nil {
		return nil, models.ErrSnapshotNotLoaded
	}

	return GroupAndSort(snapshot.Tickets, groupBy, sortBy)
}

// View builds the presentation model of a board
func (s *BoardServiceImpl) View(groupBy models.GroupBy, sortBy models.SortBy) (*models.BoardView, error) {
	board, err := s.Board(groupBy, sortBy)
	if err != nil {
		return nil, err
	}
	return Present(board, s.UserName), nil
}

// UserName resolves a user id to its name, falling back to the id itself
func (s *BoardServiceImpl) UserName(userID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if user, ok := s.users[userID]; ok && user.Name != "" {
		return user.Name
	}
	return userID
}
