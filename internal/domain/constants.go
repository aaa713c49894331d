package domain

// Business validation constants
const (
	MinDiscountPct     = 0
	MaxDiscountPct     = 100
	MinDurationHours   = 1 // shorter bookings are billed as one hour
	MaxRequestedByLen  = 200
	MaxEventNameLen    = 200
	MaxEventTypeLength = 100
	DefaultAuditLimit  = 200
	MaxAuditLimit      = 1000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Validation reasons returned to clients
const (
	ReasonVenueRequired       = "venue_required"
	ReasonInvalidTimeFormat   = "invalid_time_format"
	ReasonInvalidTimeRange    = "invalid_time_range"
	ReasonScheduleConflict    = "schedule_conflict"
	ReasonRequestedByRequired = "requested_by_required"
	ReasonEventRequired       = "event_required"
	ReasonUnknownEventType    = "unknown_event_type"
	ReasonDateRequired        = "date_required"
	ReasonInvalidDate         = "invalid_date"
	ReasonInvalidAmount       = "invalid_amount"
	ReasonInvalidDiscount     = "invalid_discount"
	ReasonInvalidDonation     = "invalid_donation"
	ReasonInvalidResources    = "invalid_resources"
	ReasonInvalidEventType    = "invalid_event_type"
	ReasonIDRequired          = "id_required"
	ReasonInvalidBackup       = "invalid_backup"
	ReasonInvalidSlot         = "invalid_slot"
)

// Audit actions
const (
	AuditBookingCreated    = "BOOKING_CREATED"
	AuditBookingUpdated    = "BOOKING_UPDATED"
	AuditBookingArchived   = "BOOKING_ARCHIVED"
	AuditBookingUnarchived = "BOOKING_UNARCHIVED"
	AuditBookingDeleted    = "BOOKING_DELETED"
	AuditEventTypeCreated  = "EVENT_TYPE_CREATED"
	AuditEventTypeUpdated  = "EVENT_TYPE_UPDATED"
	AuditEventTypeDeleted  = "EVENT_TYPE_DELETED"
	AuditBackupRestored    = "BACKUP_RESTORED"
)
