package domain

import "strings"

// Venue is one of the facilities managed by the office
type Venue string

const (
	VenueUnladGymnasium     Venue = "Unlad Gymnasium"
	VenueNoveletaPlaza      Venue = "Noveleta Plaza"
	VenueNoveletaMarketRoof Venue = "Noveleta Public Market Rooftop"
)

// Venues lists every bookable venue in display order
var Venues = []Venue{
	VenueUnladGymnasium,
	VenueNoveletaPlaza,
	VenueNoveletaMarketRoof,
}

func (v Venue) IsKnown() bool {
	for _, known := range Venues {
		if v == known {
			return true
		}
	}
	return false
}

func (v Venue) String() string {
	return string(v)
}

// ParseVenue matches s against the known venues ignoring case and
// surrounding spaces, and returns the canonical name.
func ParseVenue(s string) (Venue, bool) {
	trimmed := strings.TrimSpace(s)
	for _, known := range Venues {
		if strings.EqualFold(trimmed, string(known)) {
			return known, true
		}
	}
	return Venue(trimmed), false
}
