package venue

import "venue-booking-web/internal/pkg/localtime"

type Venue struct {
	ID           int64              `json:"id"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	Address      string             `json:"address"`
	City         string             `json:"city"`
	State        string             `json:"state"`
	ZipCode      string             `json:"zipCode"`
	PricePerHour float64            `json:"pricePerHour"`
	Capacity     int                `json:"capacity"`
	OwnerID      int64              `json:"ownerId"`
	OwnerName    string             `json:"ownerName"`
	Active       bool               `json:"active"`
	CreatedAt    localtime.DateTime `json:"createdAt"`
	UpdatedAt    localtime.DateTime `json:"updatedAt"`
}
