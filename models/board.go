package models

import (
	"fmt"
	"strings"
)

// GroupBy selects how tickets are partitioned into board columns
type GroupBy string

const (
	GroupByStatus   GroupBy = "status"
	GroupByPriority GroupBy = "priority"
	GroupByUser     GroupBy = "user"
)

// SortBy selects how tickets are ordered inside a column
type SortBy string

const (
	SortByPriority SortBy = "priority"
	SortByTitle    SortBy = "title"
)

// String returns the string representation of GroupBy
func (g GroupBy) String() string {
	return string(g)
}

// String returns the string representation of SortBy
func (s SortBy) String() string {
	return string(s)
}

// IsValid checks if the GroupBy is valid
func (g GroupBy) IsValid() bool {
	switch g {
	case GroupByStatus, GroupByPriority, GroupByUser:
		return true
	default:
		return false
	}
}

// IsValid checks if the SortBy is valid
func (s SortBy) IsValid() bool {
	switch s {
	case SortByPriority, SortByTitle:
		return true
	default:
		return false
	}
}

// ParseGroupBy parses a grouping mode case-insensitively
func ParseGroupBy(str string) (GroupBy, error) {
	group := GroupBy(strings.ToLower(strings.TrimSpace(str)))
	if !group.IsValid() {
		return "", fmt.Errorf("%w: %s. Valid options are: status, priority, user", ErrInvalidGroupBy, str)
	}
	return group, nil
}

// ParseSortBy parses an ordering case-insensitively
func ParseSortBy(str string) (SortBy, error) {
	sort := SortBy(strings.ToLower(strings.TrimSpace(str)))
	if !sort.IsValid() {
		return "", fmt.Errorf("%w: %s. Valid options are: priority, title", ErrInvalidSortBy, str)
	}
	return sort, nil
}

// Bucket is one board column: a grouping key and the tickets that share it
type Bucket struct {
	Key     string   `json:"key"`
	Tickets []Ticket `json:"tickets"`
}

// Board is an ordered mapping from bucket key to tickets, together with the
// grouping and ordering it was built with.
type Board struct {
	GroupBy GroupBy  `json:"groupBy"`
	SortBy  SortBy   `json:"sortBy"`
	Buckets []Bucket `json:"buckets"`
}

// Keys returns the bucket keys in iteration order
func (b *Board) Keys() []string {
	keys := make([]string, len(b.Buckets))
	for i, bucket := range b.Buckets {
		keys[i] = bucket.Key
	}
	return keys
}

// Tickets returns the tickets of the bucket with the given key
func (b *Board) Tickets(key string) ([]Ticket, bool) {
	for _, bucket := range b.Buckets {
		if bucket.Key == key {
			return bucket.Tickets, true
		}
	}
	return nil, false
}

// Len returns the total number of tickets across all buckets
func (b *Board) Len() int {
	total := 0
	for _, bucket := range b.Buckets {
		total += len(bucket.Tickets)
	}
	return total
}
