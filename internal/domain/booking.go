package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/GSO-BookingService/pkg/types"
)

// EventKind tells whether a booking references a catalogued event type or free text.
type EventKind string

const (
	EventKindKnown  EventKind = "known"
	EventKindCustom EventKind = "custom"
)

// EventRef is the event a booking is for: Known(eventTypeId) or Custom(text).
// Name is always the resolved display name.
type EventRef struct {
	Kind   EventKind
	TypeID string
	Name   string
}

func KnownEvent(typeID, name string) EventRef {
	return EventRef{Kind: EventKindKnown, TypeID: typeID, Name: name}
}

func CustomEvent(name string) EventRef {
	return EventRef{Kind: EventKindCustom, Name: name}
}

// IsKnown returns true if the event references an event type
func (e EventRef) IsKnown() bool {
	return e.Kind == EventKindKnown && e.TypeID != ""
}

// Resources describes equipment allocated to a booking
type Resources struct {
	Chairs int  `json:"chairs"`
	Tables int  `json:"tables"`
	Aircon bool `json:"aircon"`
	Lights bool `json:"lights"`
	Sounds bool `json:"sounds"`
	LED    bool `json:"led"`
}

func (r Resources) Validate() error {
	if r.Chairs < 0 {
		return NewValidationError(ReasonInvalidResources, "Chairs must be a non-negative number")
	}
	if r.Tables < 0 {
		return NewValidationError(ReasonInvalidResources, "Tables must be a non-negative number")
	}
	return nil
}

// Booking represents a venue reservation
type Booking struct {
	ID          string
	RequestedBy string
	Event       EventRef
	Venue       Venue
	Dates       []time.Time // non-empty, first one is the primary date
	StartTime   types.TimeString
	EndTime     types.TimeString

	Amount        float64
	DiscountPct   float64
	DiscountValue float64
	FinalAmount   float64
	Donation      float64

	Resources Resources
	Archived  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PrimaryDate returns the first booked date
func (b *Booking) PrimaryDate() time.Time {
	if len(b.Dates) == 0 {
		return time.Time{}
	}
	return b.Dates[0]
}

// IsActive returns true if the booking takes part in conflict detection
func (b *Booking) IsActive() bool {
	return !b.Archived
}

func (b *Booking) DurationHours() float64 {
	return DurationHours(b.StartTime, b.EndTime)
}

// ApplyPricing recomputes discount and final amount from Amount and DiscountPct.
func (b *Booking) ApplyPricing() {
	p := ComputePricing(b.Amount, b.DiscountPct)
	b.Amount = p.Amount
	b.DiscountValue = p.DiscountValue
	b.FinalAmount = p.FinalAmount
}

// OccursOn returns true if the booking covers date
func (b *Booking) OccursOn(date time.Time) bool {
	day := TruncateDate(date)
	for _, d := range b.Dates {
		if d.Equal(day) {
			return true
		}
	}
	return false
}

// Validate checks the invariants every persisted booking holds.
func (b *Booking) Validate() error {
	if b.RequestedBy == "" {
		return NewValidationError(ReasonRequestedByRequired, "Requested by is required")
	}
	if b.Event.Name == "" {
		return NewValidationError(ReasonEventRequired, "Event is required")
	}
	if !b.Venue.IsKnown() {
		return NewValidationError(ReasonVenueRequired, "Venue is required")
	}
	if len(b.Dates) == 0 {
		return NewValidationError(ReasonDateRequired, "At least one date is required")
	}
	for _, d := range b.Dates {
		if d.IsZero() {
			return NewValidationError(ReasonInvalidDate, "Invalid date")
		}
	}

	start, okStart := b.StartTime.Minutes()
	end, okEnd := b.EndTime.Minutes()
	if !okStart || !okEnd {
		return NewValidationError(ReasonInvalidTimeFormat, "Invalid time format")
	}
	if start >= end {
		return NewValidationError(ReasonInvalidTimeRange, "End time must be after start time")
	}

	if b.DiscountPct < MinDiscountPct || b.DiscountPct > MaxDiscountPct {
		return NewValidationError(ReasonInvalidDiscount, "Discount must be between 0 and 100")
	}
	if b.Donation < 0 {
		return NewValidationError(ReasonInvalidDonation, "Donation must be a non-negative number")
	}
	if b.Amount < 0 {
		return NewValidationError(ReasonInvalidAmount, "Amount must be a non-negative number")
	}

	expected := ComputePricing(b.Amount, b.DiscountPct)
	if expected.DiscountValue != b.DiscountValue || expected.FinalAmount != b.FinalAmount {
		return NewValidationError(ReasonInvalidAmount,
			fmt.Sprintf("Final amount must be %.2f", expected.FinalAmount))
	}

	return b.Resources.Validate()
}

// Clone returns a deep copy.
func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}
	c := *b
	c.Dates = append([]time.Time(nil), b.Dates...)
	return &c
}

// BookingStatusFilter selects bookings by archive state
type BookingStatusFilter string

const (
	StatusFilterActive   BookingStatusFilter = "active"
	StatusFilterArchived BookingStatusFilter = "archived"
	StatusFilterAll      BookingStatusFilter = "all"
)

// SortOrder orders bookings by primary date, then start time
type SortOrder string

const (
	SortDesc SortOrder = "desc"
	SortAsc  SortOrder = "asc"
)

// BookingsFilter фильтр для списка бронирований
type BookingsFilter struct {
	Venue  *Venue              // nil - все площадки
	Status BookingStatusFilter // по умолчанию только активные
	From   *time.Time          // хотя бы одна дата брони >= From
	To     *time.Time          // хотя бы одна дата брони <= To
	Search string              // подстрока в requestedBy / eventName / venue, без учёта регистра
	Sort   SortOrder
}

// Matches applies the filter to one booking.
func (f BookingsFilter) Matches(b *Booking) bool {
	switch f.Status {
	case StatusFilterArchived:
		if !b.Archived {
			return false
		}
	case StatusFilterAll:
	default:
		if b.Archived {
			return false
		}
	}

	if f.Venue != nil && b.Venue != *f.Venue {
		return false
	}

	if f.From != nil || f.To != nil {
		inRange := false
		for _, d := range b.Dates {
			if f.From != nil && d.Before(TruncateDate(*f.From)) {
				continue
			}
			if f.To != nil && d.After(TruncateDate(*f.To)) {
				continue
			}
			inRange = true
			break
		}
		if !inRange {
			return false
		}
	}

	if f.Search != "" {
		return containsFold(b.RequestedBy, f.Search) ||
			containsFold(b.Event.Name, f.Search) ||
			containsFold(string(b.Venue), f.Search)
	}

	return true
}
