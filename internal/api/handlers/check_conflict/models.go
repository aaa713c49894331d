package check_conflict

import (
	"github.com/m04kA/GSO-BookingService/internal/api/handlers"
	"github.com/m04kA/GSO-BookingService/internal/domain"
	"github.com/m04kA/GSO-BookingService/internal/usecase/find_conflict"
	"github.com/m04kA/GSO-BookingService/pkg/types"
)

// CheckConflictRequest HTTP request model
type CheckConflictRequest struct {
	Venue     string   `json:"venue"`
	Date      string   `json:"date"`
	Dates     []string `json:"dates"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	IgnoreID  *string  `json:"ignoreId"`
}

// CheckConflictResponse {ok:true} или отказ с причиной
type CheckConflictResponse struct {
	OK       bool                       `json:"ok"`
	Reason   string                     `json:"reason,omitempty"`
	Message  string                     `json:"message,omitempty"`
	Conflict *handlers.ConflictResponse `json:"conflict,omitempty"`
}

func (r *CheckConflictRequest) ToUseCaseRequest() (*find_conflict.Request, error) {
	rawDates := r.Dates
	if len(rawDates) == 0 && r.Date != "" {
		rawDates = []string{r.Date}
	}

	dates, err := domain.ParseDates(rawDates)
	if err != nil {
		return nil, domain.NewValidationError(domain.ReasonInvalidDate, "Invalid date, expected YYYY-MM-DD")
	}

	return &find_conflict.Request{
		Venue:     domain.Venue(r.Venue),
		Dates:     dates,
		StartTime: types.TimeString(r.StartTime),
		EndTime:   types.TimeString(r.EndTime),
		IgnoreID:  r.IgnoreID,
	}, nil
}

func FromUseCaseResponse(resp *find_conflict.Response) *CheckConflictResponse {
	result := &CheckConflictResponse{
		OK:      resp.OK,
		Reason:  resp.Reason,
		Message: resp.Message,
	}
	if resp.Conflict != nil {
		result.Conflict = handlers.FromDomainConflict(*resp.Conflict)
	}
	return result
}
