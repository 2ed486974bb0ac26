package services

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"ticket-board/models"
)

// SnapshotFormat is the encoding of a raw snapshot payload
type SnapshotFormat string

const (
	SnapshotFormatJSON SnapshotFormat = "json"
	SnapshotFormatYAML SnapshotFormat = "yaml"
)

// SnapshotFormatForPath guesses the snapshot format from a file extension, defaulting to JSON
func SnapshotFormatForPath(path string) SnapshotFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return SnapshotFormatYAML
	default:
		return SnapshotFormatJSON
	}
}

// rawTicket mirrors the upstream ticket record. Pointer fields tell a missing
// field apart from a zero value.
type rawTicket struct {
	ID       *string  `json:"id" yaml:"id"`
	Title    *string  `json:"title" yaml:"title"`
	Tag      []string `json:"tag" yaml:"tag"`
	Priority *int     `json:"priority" yaml:"priority"`
	Status   *string  `json:"status" yaml:"status"`
	UserID   *string  `json:"userId" yaml:"userId"`
}

type rawUser struct {
	ID        *string `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	Available bool    `json:"available" yaml:"available"`
}

type rawSnapshot struct {
	Tickets []rawTicket `json:"tickets" yaml:"tickets"`
	Users   []rawUser   `json:"users" yaml:"users"`
}

// DecodeSnapshot parses an upstream payload, rejects malformed records and
// normalizes every ticket status. Tickets keep their payload order.
func DecodeSnapshot(data []byte, format SnapshotFormat) (*models.Snapshot, error) {
	var raw rawSnapshot

	switch format {
	case SnapshotFormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to decode YAML snapshot: %w", err)
		}
	case SnapshotFormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to decode JSON snapshot: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported snapshot format: %s", format)
	}

	return raw.toSnapshot()
}

func (r rawSnapshot) toSnapshot() (*models.Snapshot, error) {
	if r.Tickets == nil {
		return nil, fmt.Errorf("%w: payload has no tickets field", models.ErrMalformedTicket)
	}

	snapshot := &models.Snapshot{
		Tickets: make([]models.Ticket, 0, len(r.Tickets)),
		Users:   make([]models.User, 0, len(r.Users)),
	}

	seen := make(map[string]bool, len(r.Tickets))
	for i, raw := range r.Tickets {
		ticket, err := raw.toTicket()
		if err != nil {
			return nil, fmt.Errorf("ticket %d: %w", i, err)
		}
		if seen[ticket.ID] {
			return nil, fmt.Errorf("ticket %d: %w: duplicate id %s", i, models.ErrMalformedTicket, ticket.ID)
		}
		seen[ticket.ID] = true
		snapshot.Tickets = append(snapshot.Tickets, ticket)
	}

	for i, raw := range r.Users {
		if raw.ID == nil || *raw.ID == "" {
			return nil, fmt.Errorf("user %d: %w: missing id", i, models.ErrMalformedUser)
		}
		snapshot.Users = append(snapshot.Users, models.User{
			ID:        *raw.ID,
			Name:      raw.Name,
			Available: raw.Available,
		})
	}

	return snapshot, nil
}

func (r rawTicket) toTicket() (models.Ticket, error) {
	switch {
	case r.ID == nil || *r.ID == "":
		return models.Ticket{}, fmt.Errorf("%w: missing id", models.ErrMalformedTicket)
	case r.Title == nil:
		return models.Ticket{}, fmt.Errorf("%w: %s: missing title", models.ErrMalformedTicket, *r.ID)
	case len(r.Tag) == 0:
		return models.Ticket{}, fmt.Errorf("%w: %s: missing tag", models.ErrMalformedTicket, *r.ID)
	case r.Priority == nil:
		return models.Ticket{}, fmt.Errorf("%w: %s: missing priority", models.ErrMalformedTicket, *r.ID)
	case !models.Priority(*r.Priority).IsValid():
		return models.Ticket{}, fmt.Errorf("%w: %s: priority %d out of range", models.ErrMalformedTicket, *r.ID, *r.Priority)
	case r.Status == nil:
		return models.Ticket{}, fmt.Errorf("%w: %s: missing status", models.ErrMalformedTicket, *r.ID)
	case r.UserID == nil:
		return models.Ticket{}, fmt.Errorf("%w: %s: missing userId", models.ErrMalformedTicket, *r.ID)
	}

	return models.Ticket{
		ID:       *r.ID,
		Title:    *r.Title,
		Tag:      slices.Clone(r.Tag),
		Priority: models.Priority(*r.Priority),
		Status:   models.NormalizeStatus(*r.Status),
		UserID:   *r.UserID,
	}, nil
}
