package handlers

import (
	"time"

	"github.com/m04kA/GSO-BookingService/internal/domain"
	"github.com/m04kA/GSO-BookingService/pkg/types"
)

// BackupEventTypeDTO тип события в снимке
type BackupEventTypeDTO struct {
	ID               string       `json:"id" validate:"required"`
	Name             string       `json:"name" validate:"required,max=100"`
	BaseAmount       float64      `json:"baseAmount" validate:"gte=0"`
	DefaultResources ResourcesDTO `json:"defaultResources"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

// BackupBookingDTO бронь в снимке. discountValue и finalAmount
// при восстановлении пересчитываются. date принимается для записей с одной датой.
type BackupBookingDTO struct {
	ID            string       `json:"id" validate:"required"`
	RequestedBy   string       `json:"requestedBy" validate:"required,max=200"`
	EventTypeID   *string      `json:"eventTypeId"`
	EventName     string       `json:"eventName" validate:"required,max=200"`
	Venue         string       `json:"venue" validate:"required"`
	Date          string       `json:"date,omitempty"`
	Dates         []string     `json:"dates"`
	StartTime     string       `json:"startTime" validate:"required"`
	EndTime       string       `json:"endTime" validate:"required"`
	Amount        float64      `json:"amount"`
	DiscountPct   float64      `json:"discountPct"`
	DiscountValue float64      `json:"discountValue"`
	FinalAmount   float64      `json:"finalAmount"`
	Donation      float64      `json:"donation"`
	Resources     ResourcesDTO `json:"resources"`
	Archived      bool         `json:"archived"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// BackupDTO полный снимок данных
type BackupDTO struct {
	EventTypes []BackupEventTypeDTO `json:"eventTypes" validate:"dive"`
	Bookings   []BackupBookingDTO   `json:"bookings" validate:"dive"`
	ExportedAt time.Time            `json:"exportedAt"`
}

func FromDomainBackup(b *domain.Backup) *BackupDTO {
	dto := &BackupDTO{
		EventTypes: make([]BackupEventTypeDTO, 0, len(b.EventTypes)),
		Bookings:   make([]BackupBookingDTO, 0, len(b.Bookings)),
		ExportedAt: b.ExportedAt,
	}

	for _, et := range b.EventTypes {
		dto.EventTypes = append(dto.EventTypes, BackupEventTypeDTO{
			ID:               et.ID,
			Name:             et.Name,
			BaseAmount:       et.BaseAmount,
			DefaultResources: FromDomainResources(et.DefaultResources),
			CreatedAt:        et.CreatedAt,
			UpdatedAt:        et.UpdatedAt,
		})
	}

	for _, bk := range b.Bookings {
		var eventTypeID *string
		if bk.Event.IsKnown() {
			id := bk.Event.TypeID
			eventTypeID = &id
		}
		dto.Bookings = append(dto.Bookings, BackupBookingDTO{
			ID:            bk.ID,
			RequestedBy:   bk.RequestedBy,
			EventTypeID:   eventTypeID,
			EventName:     bk.Event.Name,
			Venue:         string(bk.Venue),
			Dates:         domain.FormatDates(bk.Dates),
			StartTime:     bk.StartTime.String(),
			EndTime:       bk.EndTime.String(),
			Amount:        bk.Amount,
			DiscountPct:   bk.DiscountPct,
			DiscountValue: bk.DiscountValue,
			FinalAmount:   bk.FinalAmount,
			Donation:      bk.Donation,
			Resources:     FromDomainResources(bk.Resources),
			Archived:      bk.Archived,
			CreatedAt:     bk.CreatedAt,
			UpdatedAt:     bk.UpdatedAt,
		})
	}
	return dto
}

// ToDomain разбирает снимок; неверная дата даёт ValidationError
func (d *BackupDTO) ToDomain() (*domain.Backup, error) {
	backup := &domain.Backup{
		EventTypes: make([]domain.EventType, 0, len(d.EventTypes)),
		Bookings:   make([]domain.Booking, 0, len(d.Bookings)),
		ExportedAt: d.ExportedAt,
	}

	for _, et := range d.EventTypes {
		backup.EventTypes = append(backup.EventTypes, domain.EventType{
			ID:               et.ID,
			Name:             et.Name,
			BaseAmount:       et.BaseAmount,
			DefaultResources: *et.DefaultResources.ToDomain(),
			CreatedAt:        et.CreatedAt,
			UpdatedAt:        et.UpdatedAt,
		})
	}

	for _, bk := range d.Bookings {
		rawDates := bk.Dates
		if len(rawDates) == 0 && bk.Date != "" {
			rawDates = []string{bk.Date}
		}

		dates, err := domain.ParseDates(rawDates)
		if err != nil {
			return nil, domain.NewValidationError(domain.ReasonInvalidBackup, "Booking "+bk.ID+" has an invalid date")
		}

		event := domain.CustomEvent(bk.EventName)
		if bk.EventTypeID != nil && *bk.EventTypeID != "" {
			event = domain.KnownEvent(*bk.EventTypeID, bk.EventName)
		}

		backup.Bookings = append(backup.Bookings, domain.Booking{
			ID:          bk.ID,
			RequestedBy: bk.RequestedBy,
			Event:       event,
			Venue:       domain.Venue(bk.Venue),
			Dates:       dates,
			StartTime:   types.TimeString(bk.StartTime),
			EndTime:     types.TimeString(bk.EndTime),
			Amount:      bk.Amount,
			DiscountPct: bk.DiscountPct,
			FinalAmount: bk.FinalAmount,
			Donation:    bk.Donation,
			Resources:   *bk.Resources.ToDomain(),
			Archived:    bk.Archived,
			CreatedAt:   bk.CreatedAt,
			UpdatedAt:   bk.UpdatedAt,
		})
	}
	return backup, nil
}
