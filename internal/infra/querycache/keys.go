package querycache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Key families shared by readers and the mutations that invalidate them.
// Public families are shared by every visitor. Everything read with a bearer
// token is keyed by that token's scope, since only the backend knows what the
// token may see.
const (
	PublicVenuesPrefix  Key = "venues/public"
	PublicSlotsPrefix   Key = "availabilities/public"
	MyVenuesPrefix      Key = "venues/my"
	MyBookingsPrefix    Key = "bookings/my"
	VenueSlotsPrefix    Key = "availabilities/venue"
	VenueBookingsPrefix Key = "bookings/venue"
	UsersPrefix         Key = "users"
)

// Scope is a stable, non-reversible stand-in for a bearer token.
func Scope(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:16])
}

func PublicVenues(city, searchTerm string) Key {
	return NewKey(PublicVenuesPrefix, city, searchTerm)
}

func PublicSlots(venueID int64) Key {
	return NewKey(PublicSlotsPrefix, venueID)
}

func MyVenues(token string) Key {
	return NewKey(MyVenuesPrefix, Scope(token))
}

func MyBookings(token string) Key {
	return NewKey(MyBookingsPrefix, Scope(token))
}

// VenueSlotsOf covers every caller's copy of the venue's owner slot list.
func VenueSlotsOf(venueID int64) Key {
	return NewKey(VenueSlotsPrefix, venueID)
}

func VenueSlots(token string, venueID int64) Key {
	return NewKey(VenueSlotsOf(venueID), Scope(token))
}

// VenueBookingsOf covers every caller's copy of the venue's booking list.
func VenueBookingsOf(venueID int64) Key {
	return NewKey(VenueBookingsPrefix, venueID)
}

func VenueBookings(token string, venueID int64) Key {
	return NewKey(VenueBookingsOf(venueID), Scope(token))
}

func Users(token, searchTerm, role string) Key {
	return NewKey(UsersPrefix, Scope(token), role, searchTerm)
}
