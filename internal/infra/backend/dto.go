package backend

import (
	"venue-booking-web/internal/domain/user"
	"venue-booking-web/internal/pkg/localtime"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserRequest is used for registration and for admin/self updates.
type UserRequest struct {
	Email       string    `json:"email"`
	Password    string    `json:"password"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Role        user.Role `json:"role"`
	PhoneNumber string    `json:"phoneNumber"`
}

type UserFilter struct {
	SearchTerm string
	Role       user.Role
}

type VenueRequest struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	ZipCode      string  `json:"zipCode"`
	PricePerHour float64 `json:"pricePerHour"`
	Capacity     int     `json:"capacity"`
}

type VenueFilter struct {
	City       string
	SearchTerm string
}

type AvailabilityRequest struct {
	VenueID int64              `json:"venueId"`
	Start   localtime.DateTime `json:"startTime"`
	End     localtime.DateTime `json:"endTime"`
}

type BookingRequest struct {
	AvailabilityID int64 `json:"availabilityId"`
}

// PaymentRequest forwards the checkout widget's identifiers untouched.
type PaymentRequest struct {
	RazorpayOrderID   string `json:"razorpayOrderId"`
	RazorpayPaymentID string `json:"razorpayPaymentId"`
	RazorpaySignature string `json:"razorpaySignature"`
}
