package services

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-board/models"
)

func ticket(id string, priority int, status models.TicketStatus, userID, title string) models.Ticket {
	return models.Ticket{
		ID:       id,
		Title:    title,
		Tag:      []string{"Feature Request"},
		Priority: models.Priority(priority),
		Status:   status,
		UserID:   userID,
	}
}

func sampleTickets() []models.Ticket {
	return []models.Ticket{
		ticket("CAM-1", 4, models.StatusTodo, "usr-1", "Update user profile page UI"),
		ticket("CAM-2", 3, models.StatusInProgress, "usr-2", "Add multi-language support"),
		ticket("CAM-3", 2, models.StatusTodo, "usr-2", "Optimize database queries"),
		ticket("CAM-4", 0, models.StatusBacklog, "usr-1", "Implement email notification system"),
		ticket("CAM-5", 0, models.StatusDone, "usr-5", "Enhance search functionality"),
		ticket("CAM-6", 1, models.StatusInProgress, "usr-2", "Third-party payment gateway"),
	}
}

// randomTickets builds a reproducible ticket set covering every status, priority and a handful of users
func randomTickets(seed int64, n int) []models.Ticket {
	rng := rand.New(rand.NewSource(seed))
	tickets := make([]models.Ticket, n)
	for i := range tickets {
		tickets[i] = ticket(
			fmt.Sprintf("CAM-%d", i+1),
			rng.Intn(5),
			models.AllStatuses[rng.Intn(len(models.AllStatuses))],
			fmt.Sprintf("usr-%d", rng.Intn(4)+1),
			fmt.Sprintf("Ticket %c", 'A'+rune(rng.Intn(26))),
		)
	}
	return tickets
}

func ids(tickets []models.Ticket) []string {
	out := make([]string, len(tickets))
	for i, t := range tickets {
		out[i] = t.ID
	}
	return out
}

func statusKeys() []string {
	return []string{"todo", "in-progress", "backlog", "done", "cancelled"}
}

func TestGroupAndSort_StatusAlwaysHasAllColumns(t *testing.T) {
	testCases := []struct {
		name    string
		tickets []models.Ticket
	}{
		{name: "nil input", tickets: nil},
		{name: "empty input", tickets: []models.Ticket{}},
		{name: "sparse input", tickets: []models.Ticket{ticket("CAM-1", 2, models.StatusDone, "usr-1", "Only done")}},
		{name: "cancelled first", tickets: []models.Ticket{
			ticket("CAM-1", 2, models.StatusCancelled, "usr-1", "Cancelled"),
			ticket("CAM-2", 2, models.StatusTodo, "usr-1", "Todo"),
		}},
		{name: "sample", tickets: sampleTickets()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, sortBy := range []models.SortBy{models.SortByPriority, models.SortByTitle} {
				board, err := GroupAndSort(tc.tickets, models.GroupByStatus, sortBy)
				require.NoError(t, err)
				assert.Equal(t, statusKeys(), board.Keys())
				for _, bucket := range board.Buckets {
					assert.NotNil(t, bucket.Tickets, "bucket %s should be an empty slice, not nil", bucket.Key)
				}
			}
		})
	}
}

func TestGroupAndSort_StatusBuckets(t *testing.T) {
	board, err := GroupAndSort(sampleTickets(), models.GroupByStatus, models.SortByPriority)
	require.NoError(t, err)

	assert.Equal(t, models.GroupByStatus, board.GroupBy)
	assert.Equal(t, models.SortByPriority, board.SortBy)

	want := map[string][]string{
		"todo":        {"CAM-1", "CAM-3"},
		"in-progress": {"CAM-2", "CAM-6"},
		"backlog":     {"CAM-4"},
		"done":        {"CAM-5"},
		"cancelled":   {},
	}
	for key, wantIDs := range want {
		tickets, ok := board.Tickets(key)
		require.True(t, ok, "missing bucket %s", key)
		assert.Equal(t, wantIDs, ids(tickets), "bucket %s", key)
	}
}

func TestGroupAndSort_StatusUnknownKeysAppended(t *testing.T) {
	tickets := []models.Ticket{
		ticket("CAM-1", 1, "blocked", "usr-1", "Not canonical"),
		ticket("CAM-2", 1, models.StatusDone, "usr-1", "Canonical"),
		ticket("CAM-3", 1, "review", "usr-1", "Also not canonical"),
	}

	board, err := GroupAndSort(tickets, models.GroupByStatus, models.SortByPriority)
	require.NoError(t, err)

	assert.Equal(t, append(statusKeys(), "blocked", "review"), board.Keys())
	assert.Equal(t, 3, board.Len())
}

func TestGroupAndSort_PriorityAndUserMinimal(t *testing.T) {
	testCases := []struct {
		name    string
		groupBy models.GroupBy
		want    []string
	}{
		{name: "priority", groupBy: models.GroupByPriority, want: []string{"4", "3", "2", "0", "1"}},
		{name: "user", groupBy: models.GroupByUser, want: []string{"usr-1", "usr-2", "usr-5"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			board, err := GroupAndSort(sampleTickets(), tc.groupBy, models.SortByTitle)
			require.NoError(t, err)
			assert.Equal(t, tc.want, board.Keys())
		})
	}
}

func TestGroupAndSort_PriorityAndUserEmptyInput(t *testing.T) {
	for _, groupBy := range []models.GroupBy{models.GroupByPriority, models.GroupByUser} {
		board, err := GroupAndSort(nil, groupBy, models.SortByPriority)
		require.NoError(t, err)
		assert.Empty(t, board.Keys())
		assert.NotNil(t, board.Buckets)
	}
}

func TestGroupAndSort_KeysMatchPresentValues(t *testing.T) {
	tickets := randomTickets(42, 60)

	priorities := map[string]bool{}
	users := map[string]bool{}
	for _, ticket := range tickets {
		priorities[ticket.Priority.String()] = true
		users[ticket.UserID] = true
	}

	byPriority, err := GroupAndSort(tickets, models.GroupByPriority, models.SortByTitle)
	require.NoError(t, err)
	assert.Len(t, byPriority.Keys(), len(priorities))
	for _, key := range byPriority.Keys() {
		assert.True(t, priorities[key], "unexpected priority key %s", key)
	}

	byUser, err := GroupAndSort(tickets, models.GroupByUser, models.SortByTitle)
	require.NoError(t, err)
	assert.Len(t, byUser.Keys(), len(users))
	for _, key := range byUser.Keys() {
		assert.True(t, users[key], "unexpected user key %s", key)
	}
}

func TestGroupAndSort_InvalidGroupBy(t *testing.T) {
	_, err := GroupAndSort(sampleTickets(), "tag", models.SortByPriority)
	assert.ErrorIs(t, err, models.ErrInvalidGroupBy)
}

func TestSortTickets_PriorityDescending(t *testing.T) {
	tickets := []models.Ticket{
		ticket("p0", 0, models.StatusTodo, "usr-1", "a"),
		ticket("p4", 4, models.StatusTodo, "usr-1", "b"),
		ticket("p1", 1, models.StatusTodo, "usr-1", "c"),
		ticket("p2", 2, models.StatusTodo, "usr-1", "d"),
		ticket("p3", 3, models.StatusTodo, "usr-1", "e"),
	}

	sorted := SortTickets(tickets, models.SortByPriority)

	priorities := make([]models.Priority, len(sorted))
	for i, ticket := range sorted {
		priorities[i] = ticket.Priority
	}
	assert.Equal(t, []models.Priority{4, 3, 2, 1, 0}, priorities)
}

func TestSortTickets_TitleLocaleAware(t *testing.T) {
	tickets := []models.Ticket{
		ticket("b", 1, models.StatusTodo, "usr-1", "Banana"),
		ticket("a", 1, models.StatusTodo, "usr-1", "apple"),
		ticket("c", 1, models.StatusTodo, "usr-1", "Cherry"),
	}

	sorted := SortTickets(tickets, models.SortByTitle)

	titles := make([]string, len(sorted))
	for i, ticket := range sorted {
		titles[i] = ticket.Title
	}
	assert.Equal(t, []string{"apple", "Banana", "Cherry"}, titles)
}

func TestSortTickets_Stable(t *testing.T) {
	tickets := []models.Ticket{
		ticket("first", 2, models.StatusTodo, "usr-1", "Same title"),
		ticket("other", 3, models.StatusTodo, "usr-1", "Another title"),
		ticket("second", 2, models.StatusTodo, "usr-1", "Same title"),
		ticket("third", 2, models.StatusTodo, "usr-1", "Same title"),
	}

	assert.Equal(t, []string{"other", "first", "second", "third"}, ids(SortTickets(tickets, models.SortByPriority)))
	assert.Equal(t, []string{"other", "first", "second", "third"}, ids(SortTickets(tickets, models.SortByTitle)))
}

func TestSortTickets_UnknownOrderIsIdentity(t *testing.T) {
	tickets := sampleTickets()
	for _, sortBy := range []models.SortBy{"", "created", "PRIORITY"} {
		assert.Equal(t, ids(tickets), ids(SortTickets(tickets, sortBy)), "sortBy %q", sortBy)
	}
}

func TestGroupAndSort_PartitionCompleteness(t *testing.T) {
	for _, seed := range []int64{1, 7, 99} {
		tickets := randomTickets(seed, 40)
		for _, groupBy := range []models.GroupBy{models.GroupByStatus, models.GroupByPriority, models.GroupByUser} {
			for _, sortBy := range []models.SortBy{models.SortByPriority, models.SortByTitle, "none"} {
				board, err := GroupAndSort(tickets, groupBy, sortBy)
				require.NoError(t, err)

				var got []string
				for _, bucket := range board.Buckets {
					got = append(got, ids(bucket.Tickets)...)
				}
				want := ids(tickets)
				slices.Sort(got)
				slices.Sort(want)
				assert.Equal(t, want, got, "seed %d group %s order %s", seed, groupBy, sortBy)
			}
		}
	}
}

func TestGroupAndSort_BucketOrderFollowsInputWithoutSorting(t *testing.T) {
	board, err := GroupAndSort(sampleTickets(), models.GroupByUser, "none")
	require.NoError(t, err)

	tickets, ok := board.Tickets("usr-2")
	require.True(t, ok)
	assert.Equal(t, []string{"CAM-2", "CAM-3", "CAM-6"}, ids(tickets))
}

func TestGroupAndSort_Purity(t *testing.T) {
	tickets := randomTickets(3, 30)
	original := slices.Clone(tickets)

	for _, groupBy := range []models.GroupBy{models.GroupByStatus, models.GroupByPriority, models.GroupByUser} {
		for _, sortBy := range []models.SortBy{models.SortByPriority, models.SortByTitle} {
			first, err := GroupAndSort(tickets, groupBy, sortBy)
			require.NoError(t, err)
			second, err := GroupAndSort(tickets, groupBy, sortBy)
			require.NoError(t, err)

			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("GroupAndSort(%s, %s) not deterministic (-first +second):\n%s", groupBy, sortBy, diff)
			}
		}
	}

	if diff := cmp.Diff(original, tickets); diff != "" {
		t.Errorf("GroupAndSort modified its input (-want +got):\n%s", diff)
	}
}

func TestGroupAndSort_ConcurrentCalls(t *testing.T) {
	tickets := randomTickets(11, 50)
	want, err := GroupAndSort(tickets, models.GroupByStatus, models.SortByTitle)
	require.NoError(t, err)

	results := make(chan *models.Board, 8)
	for i := 0; i < cap(results); i++ {
		go func() {
			board, err := GroupAndSort(tickets, models.GroupByStatus, models.SortByTitle)
			if err != nil {
				results <- nil
				return
			}
			results <- board
		}()
	}

	for i := 0; i < cap(results); i++ {
		got := <-results
		require.NotNil(t, got)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("concurrent GroupAndSort differs (-want +got):\n%s", diff)
		}
	}
}
