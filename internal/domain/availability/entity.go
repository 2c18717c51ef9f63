package availability

import "venue-booking-web/internal/pkg/localtime"

type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusBooked    Status = "BOOKED"
	StatusCancelled Status = "CANCELLED"
)

// Slot is a bookable time range on a venue. Its status is driven by the backend.
type Slot struct {
	ID        int64              `json:"id"`
	VenueID   int64              `json:"venueId"`
	VenueName string             `json:"venueName"`
	Start     localtime.DateTime `json:"startTime"`
	End       localtime.DateTime `json:"endTime"`
	Status    Status             `json:"status"`
	CreatedAt localtime.DateTime `json:"createdAt"`
	UpdatedAt localtime.DateTime `json:"updatedAt"`
}

func (s Slot) Available() bool {
	return s.Status == StatusAvailable
}

// Deletable: only AVAILABLE slots may be removed by their owner.
func (s Slot) Deletable() bool {
	return s.Status == StatusAvailable
}

// FilterAvailable keeps AVAILABLE slots, preserving order.
func FilterAvailable(slots []Slot) []Slot {
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if s.Available() {
			out = append(out, s)
		}
	}
	return out
}
