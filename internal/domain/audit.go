package domain

import "time"

// AuditEntry records one state change made by an operator
type AuditEntry struct {
	ID       string
	Action   string
	Actor    string
	EntityID string
	Meta     map[string]interface{}
	At       time.Time
}

// Backup is a full snapshot of the catalogue and the bookings
type Backup struct {
	EventTypes []EventType
	Bookings   []Booking
	ExportedAt time.Time
}
