//go:build e2e

package e2e

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"venue-booking-web/internal/domain/user"
	"venue-booking-web/tests/e2e/common/helper"

	"github.com/gin-gonic/gin"
)

const (
	CustomerEmail = "customer@example.com"
	OwnerEmail    = "owner@example.com"
	Password      = "password123"

	VenueID = int64(1)
	SlotID  = int64(11)
)

type account struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
	Role      user.Role
}

type bookingRow struct {
	ID        int64
	UserID    int64
	SlotID    int64
	OrderID   string
	Status    string
	PaymentID string
}

// Payment is a confirm-payment call the frontend forwarded.
type Payment struct {
	OrderID   string
	PaymentID string
	Signature string
}

// FakeBackend serves the slice of the booking REST API the frontend calls,
// backed by memory.
type FakeBackend struct {
	Server *httptest.Server

	t        *testing.T
	mu       sync.Mutex
	accounts map[string]account
	tokens   map[string]int64
	slots    map[int64]string
	bookings []*bookingRow
	payments []Payment
}

func StartFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()

	fb := &FakeBackend{
		t: t,
		accounts: map[string]account{
			CustomerEmail: {ID: 7, Email: CustomerEmail, FirstName: "Asha", LastName: "Rao", Role: user.RoleCustomer},
			OwnerEmail:    {ID: 8, Email: OwnerEmail, FirstName: "Vikram", LastName: "Shah", Role: user.RoleVenueOwner},
		},
		tokens: make(map[string]int64),
		slots:  map[int64]string{SlotID: "AVAILABLE"},
	}

	engine := gin.New()
	engine.GET("/checkout.js", fb.script)
	engine.HEAD("/checkout.js", fb.script)

	api := engine.Group("/api")
	api.POST("/auth/login", fb.login)
	api.GET("/venues/public/all", fb.listVenues)
	api.GET("/venues/:id", fb.authorized, fb.getVenue)
	api.GET("/availabilities/public/venue/:id", fb.listSlots)
	api.POST("/bookings", fb.authorized, fb.createBooking)
	api.POST("/bookings/confirm-payment", fb.authorized, fb.confirmPayment)
	api.GET("/bookings/my-bookings", fb.authorized, fb.myBookings)
	api.DELETE("/bookings/:id", fb.authorized, fb.cancelBooking)
	api.GET("/users/:id", fb.authorized, fb.getUser)

	fb.Server = httptest.NewServer(engine)
	t.Cleanup(fb.Server.Close)
	return fb
}

// Payments returns every confirmed payment so far.
func (fb *FakeBackend) Payments() []Payment {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]Payment(nil), fb.payments...)
}

func (fb *FakeBackend) script(c *gin.Context) {
	c.Data(http.StatusOK, "application/javascript", []byte("/* checkout */"))
}

func (fb *FakeBackend) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Malformed request"})
		return
	}

	acc, ok := fb.accounts[req.Email]
	if !ok || req.Password != Password {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	token := helper.IssueToken(fb.t, acc.ID, acc.Role, time.Hour)
	fb.mu.Lock()
	fb.tokens[token] = acc.ID
	fb.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"email":     acc.Email,
		"role":      acc.Role,
		"userId":    acc.ID,
		"firstName": acc.FirstName,
		"lastName":  acc.LastName,
	})
}

func (fb *FakeBackend) authorized(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	fb.mu.Lock()
	userID, ok := fb.tokens[token]
	fb.mu.Unlock()
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	c.Set("user_id", userID)
	c.Next()
}

func venueJSON() gin.H {
	return gin.H{
		"id":           VenueID,
		"name":         "Lakeside Hall",
		"description":  "Open **terrace** by the lake",
		"address":      "12 Lake Rd",
		"city":         "Pune",
		"state":        "MH",
		"zipCode":      "411001",
		"pricePerHour": 1500,
		"capacity":     120,
		"ownerId":      8,
		"ownerName":    "Vikram Shah",
		"active":       true,
	}
}

func (fb *FakeBackend) listVenues(c *gin.Context) {
	c.JSON(http.StatusOK, []gin.H{venueJSON()})
}

func (fb *FakeBackend) getVenue(c *gin.Context) {
	if c.Param("id") != strconv.FormatInt(VenueID, 10) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Venue not found"})
		return
	}
	c.JSON(http.StatusOK, venueJSON())
}

func (fb *FakeBackend) slotJSON(status string) gin.H {
	return gin.H{
		"id":        SlotID,
		"venueId":   VenueID,
		"venueName": "Lakeside Hall",
		"startTime": "2026-11-02T10:00:00",
		"endTime":   "2026-11-02T12:00:00",
		"status":    status,
	}
}

func (fb *FakeBackend) listSlots(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	out := []gin.H{}
	if fb.slots[SlotID] == "AVAILABLE" {
		out = append(out, fb.slotJSON("AVAILABLE"))
	}
	c.JSON(http.StatusOK, out)
}

func (fb *FakeBackend) bookingJSON(b *bookingRow) gin.H {
	h := gin.H{
		"id":              b.ID,
		"customerId":      b.UserID,
		"venueId":         VenueID,
		"venueName":       "Lakeside Hall",
		"availabilityId":  b.SlotID,
		"startTime":       "2026-11-02T10:00:00",
		"endTime":         "2026-11-02T12:00:00",
		"totalAmount":     3000,
		"status":          b.Status,
		"razorpayOrderId": b.OrderID,
	}
	if b.PaymentID != "" {
		h["paymentStatus"] = "PAID"
	}
	return h
}

func (fb *FakeBackend) createBooking(c *gin.Context) {
	var req struct {
		AvailabilityID int64 `json:"availabilityId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Malformed request"})
		return
	}

	fb.mu.Lock()
	defer fb.mu.Unlock()
	if fb.slots[req.AvailabilityID] != "AVAILABLE" {
		c.JSON(http.StatusConflict, gin.H{"message": "Slot is no longer available"})
		return
	}
	fb.slots[req.AvailabilityID] = "BOOKED"

	b := &bookingRow{
		ID:      int64(21 + len(fb.bookings)),
		UserID:  c.GetInt64("user_id"),
		SlotID:  req.AvailabilityID,
		Status:  "PENDING",
		OrderID: fmt.Sprintf("order_e2e_%d", 21+len(fb.bookings)),
	}
	fb.bookings = append(fb.bookings, b)
	c.JSON(http.StatusCreated, fb.bookingJSON(b))
}

func (fb *FakeBackend) confirmPayment(c *gin.Context) {
	var req struct {
		OrderID   string `json:"razorpayOrderId"`
		PaymentID string `json:"razorpayPaymentId"`
		Signature string `json:"razorpaySignature"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Malformed request"})
		return
	}

	fb.mu.Lock()
	defer fb.mu.Unlock()
	for _, b := range fb.bookings {
		if b.OrderID == req.OrderID {
			b.Status, b.PaymentID = "CONFIRMED", req.PaymentID
			fb.payments = append(fb.payments, Payment(req))
			c.JSON(http.StatusOK, fb.bookingJSON(b))
			return
		}
	}
	c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown order"})
}

func (fb *FakeBackend) myBookings(c *gin.Context) {
	userID := c.GetInt64("user_id")

	fb.mu.Lock()
	defer fb.mu.Unlock()
	out := []gin.H{}
	for _, b := range fb.bookings {
		if b.UserID == userID {
			out = append(out, fb.bookingJSON(b))
		}
	}
	c.JSON(http.StatusOK, out)
}

func (fb *FakeBackend) cancelBooking(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	fb.mu.Lock()
	defer fb.mu.Unlock()
	for _, b := range fb.bookings {
		if b.ID == id && b.UserID == c.GetInt64("user_id") {
			b.Status = "CANCELLED"
			fb.slots[b.SlotID] = "AVAILABLE"
			c.Status(http.StatusNoContent)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
}

func (fb *FakeBackend) getUser(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	for _, acc := range fb.accounts {
		if acc.ID == id {
			c.JSON(http.StatusOK, gin.H{
				"id":          acc.ID,
				"email":       acc.Email,
				"firstName":   acc.FirstName,
				"lastName":    acc.LastName,
				"role":        acc.Role,
				"phoneNumber": "98450 00000",
				"active":      true,
				"createdAt":   "2026-01-15T09:30:00",
			})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
}
