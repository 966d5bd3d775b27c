// Package queue defines the activity events exchanged over RabbitMQ and the
// consumer that appends them to the activity log.
package queue

import (
	"fmt"
	"strings"
)

// ActivityQueueName is the durable queue activity events are routed to.
const ActivityQueueName = "fyyur.activity"

// EventType names what happened.
type EventType string

const (
	VenueCreated  EventType = "venue.created"
	VenueUpdated  EventType = "venue.updated"
	VenueDeleted  EventType = "venue.deleted"
	ArtistCreated EventType = "artist.created"
	ArtistUpdated EventType = "artist.updated"
	ArtistDeleted EventType = "artist.deleted"
	ShowListed    EventType = "show.listed"
)

// ActivityEvent is published after a successful write.  It carries enough
// to log the change without reading the database.
type ActivityEvent struct {
	Type       EventType `json:"type"`
	Entity     string    `json:"entity"`
	EntityID   uint64    `json:"entity_id"`
	Name       string    `json:"name,omitempty"`
	VenueID    uint64    `json:"venue_id,omitempty"`
	ArtistID   uint64    `json:"artist_id,omitempty"`
	StartTime  string    `json:"start_time,omitempty"`
	OccurredAt string    `json:"occurred_at"`
}

// Line renders the event as a single activity log line.
func (e ActivityEvent) Line() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s | %s_id=%d", e.OccurredAt, e.Type, e.Entity, e.EntityID)
	if e.Name != "" {
		fmt.Fprintf(&b, " | name=%q", e.Name)
	}
	if e.VenueID != 0 {
		fmt.Fprintf(&b, " | venue_id=%d", e.VenueID)
	}
	if e.ArtistID != 0 {
		fmt.Fprintf(&b, " | artist_id=%d", e.ArtistID)
	}
	if e.StartTime != "" {
		fmt.Fprintf(&b, " | start_time=%s", e.StartTime)
	}
	b.WriteByte('\n')
	return b.String()
}
