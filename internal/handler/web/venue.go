package web

import (
	"strconv"

	"venue-booking-web/internal/domain/availability"
	"venue-booking-web/internal/domain/user"
	"venue-booking-web/internal/domain/venue"
	"venue-booking-web/internal/handler/middleware"
	"venue-booking-web/internal/infra/backend"
	"venue-booking-web/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VenueHandler struct {
	venues queries.VenueQueries
}

func NewVenueHandler(venues queries.VenueQueries) *VenueHandler {
	return &VenueHandler{
		venues: venues,
	}
}

type venueListView struct {
	City       string
	SearchTerm string
	Venues     []venue.Venue
}

type venueDetailView struct {
	Venue    venue.Venue
	Found    bool
	Slots    []availability.Slot
	LoggedIn bool
	CanBook  bool
	// Path is where login sends the user back to.
	Path string
}

func (h *VenueHandler) List(c *gin.Context) {
	view := venueListView{
		City:       c.Query("city"),
		SearchTerm: c.Query("searchTerm"),
	}

	venues, err := h.venues.ListPublic(c.Request.Context(), backend.VenueFilter{
		City:       view.City,
		SearchTerm: view.SearchTerm,
	})
	view.Venues = venues

	render(c, "venues", "Venues", view, err)
}

func (h *VenueHandler) Detail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.renderDetail(c, id, nil)
}

// renderDetail shows the venue and its open slots. actionErr is the failed
// outcome of a booking attempt; a failed read takes the banner first.
func (h *VenueHandler) renderDetail(c *gin.Context, id int64, actionErr error) {
	ctx := c.Request.Context()
	sess := middleware.GetSession(c)

	view := venueDetailView{
		LoggedIn: sess.Authenticated(),
		CanBook:  sess.HasRole(user.RoleCustomer),
		Path:     "/venues/" + strconv.FormatInt(id, 10),
	}

	v, venueErr := h.venues.Get(ctx, sess.Token(), id)
	if venueErr == nil {
		view.Venue, view.Found = v, true
	}
	slots, slotsErr := h.venues.ListAvailableSlots(ctx, id)
	view.Slots = slots

	err := firstErr(venueErr, slotsErr, actionErr)
	title := "Venue"
	if view.Found {
		title = view.Venue.Name
	}
	render(c, "venue", title, view, err)
}

func firstErr(errList ...error) error {
	for _, err := range errList {
		if err != nil {
			return err
		}
	}
	return nil
}
