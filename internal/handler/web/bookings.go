package web

import (
	"venue-booking-web/internal/domain/booking"
	"venue-booking-web/internal/usecase/commands"
	"venue-booking-web/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const myBookingsPath = "/my-bookings"

type BookingHandler struct {
	queries  queries.BookingQueries
	commands commands.BookingCommands
}

func NewBookingHandler(q queries.BookingQueries, cmd commands.BookingCommands) *BookingHandler {
	return &BookingHandler{
		queries:  q,
		commands: cmd,
	}
}

type myBookingsView struct {
	Bookings []booking.Booking
}

func (h *BookingHandler) List(c *gin.Context) {
	h.renderList(c, nil)
}

// Cancel releases the booking. The button is offered only for cancellable
// bookings; the backend still has the final say.
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	token, _ := caller(c)
	if err := h.commands.Cancel(c.Request.Context(), token, id); err != nil {
		h.renderList(c, err)
		return
	}
	redirect(c, myBookingsPath)
}

func (h *BookingHandler) renderList(c *gin.Context, actionErr error) {
	token, _ := caller(c)
	bookings, err := h.queries.ListMine(c.Request.Context(), token)
	render(c, "bookings", "My bookings", myBookingsView{Bookings: bookings}, firstErr(err, actionErr))
}
