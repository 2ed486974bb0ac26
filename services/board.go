package services

import (
	"cmp"
	"fmt"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"ticket-board/models"
)

// titleLanguage drives the collation used for title ordering
var titleLanguage = language.English

// GroupAndSort partitions tickets into buckets according to groupBy and orders
// each bucket according to sortBy.
//
// Grouping by status always yields the five canonical statuses in column order,
// empty or not. Grouping by priority or user yields only the keys that occur,
// in first-seen order. An unknown sortBy leaves each bucket in input order.
//
// The input slice is never modified and every call allocates a fresh board,
// so GroupAndSort is safe for concurrent use.
func GroupAndSort(tickets []models.Ticket, groupBy models.GroupBy, sortBy models.SortBy) (*models.Board, error) {
	keyFn, err := bucketKeyFunc(groupBy)
	if err != nil {
		return nil, err
	}

	buckets := partition(tickets, keyFn)
	if buckets == nil {
		buckets = []models.Bucket{}
	}
	if groupBy == models.GroupByStatus {
		buckets = withAllStatuses(buckets)
	}

	for i := range buckets {
		buckets[i].Tickets = SortTickets(buckets[i].Tickets, sortBy)
	}

	return &models.Board{
		GroupBy: groupBy,
		SortBy:  sortBy,
		Buckets: buckets,
	}, nil
}

func bucketKeyFunc(groupBy models.GroupBy) (func(models.Ticket) string, error) {
	switch groupBy {
	case models.GroupByStatus:
		return func(t models.Ticket) string { return t.Status.String() }, nil
	case models.GroupByPriority:
		return func(t models.Ticket) string { return t.Priority.String() }, nil
	case models.GroupByUser:
		return func(t models.Ticket) string { return t.UserID }, nil
	default:
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidGroupBy, groupBy)
	}
}

// partition buckets tickets by key. Buckets appear in first-seen key order and
// tickets keep their input order inside a bucket.
func partition(tickets []models.Ticket, keyFn func(models.Ticket) string) []models.Bucket {
	index := make(map[string]int)
	var buckets []models.Bucket

	for _, ticket := range tickets {
		key := keyFn(ticket)
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, models.Bucket{Key: key})
		}
		buckets[i].Tickets = append(buckets[i].Tickets, ticket)
	}

	return buckets
}

// withAllStatuses reorders status buckets into column order, adding an empty
// bucket for every canonical status that has no tickets. Keys outside the
// canonical set keep their first-seen order after the canonical columns.
func withAllStatuses(buckets []models.Bucket) []models.Bucket {
	byKey := make(map[string]models.Bucket, len(buckets))
	for _, bucket := range buckets {
		byKey[bucket.Key] = bucket
	}

	ordered := make([]models.Bucket, 0, len(models.AllStatuses)+len(buckets))
	for _, status := range models.AllStatuses {
		bucket, ok := byKey[status.String()]
		if !ok {
			bucket = models.Bucket{Key: status.String(), Tickets: []models.Ticket{}}
		}
		ordered = append(ordered, bucket)
	}

	for _, bucket := range buckets {
		if !models.TicketStatus(bucket.Key).IsValid() {
			ordered = append(ordered, bucket)
		}
	}

	return ordered
}

// SortTickets returns a copy of tickets ordered by sortBy.
//
// Priority ordering is by raw value, descending: 4 (low) comes first and 0 (no
// priority) last. This is not the urgency ranking, where 1 (urgent) leads.
// Title ordering is locale aware and ascending. Both are stable.
func SortTickets(tickets []models.Ticket, sortBy models.SortBy) []models.Ticket {
	sorted := slices.Clone(tickets)

	switch sortBy {
	case models.SortByPriority:
		slices.SortStableFunc(sorted, func(a, b models.Ticket) int {
			return cmp.Compare(b.Priority, a.Priority)
		})
	case models.SortByTitle:
		// A Collator keeps internal buffers, so each call gets its own.
		collator := collate.New(titleLanguage)
		slices.SortStableFunc(sorted, func(a, b models.Ticket) int {
			return collator.CompareString(a.Title, b.Title)
		})
	}

	return sorted
}
