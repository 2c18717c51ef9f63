package web

import (
	"html/template"
	"strconv"

	"venue-booking-web/internal/domain/availability"
	"venue-booking-web/internal/domain/booking"
	"venue-booking-web/internal/domain/venue"
	reqdto "venue-booking-web/internal/handler/dto/request"
	"venue-booking-web/internal/usecase/commands"
	"venue-booking-web/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
)

const ownerPath = "/owner"

type OwnerHandler struct {
	queries  queries.OwnerQueries
	commands commands.OwnerCommands
}

func NewOwnerHandler(q queries.OwnerQueries, cmd commands.OwnerCommands) *OwnerHandler {
	return &OwnerHandler{
		queries:  q,
		commands: cmd,
	}
}

type ownerView struct {
	Venues   []venue.Venue
	ShowNew  bool
	NewForm  reqdto.VenueForm
	EditID   int64
	EditForm reqdto.VenueForm
	Selected *ownerVenueView
}

// ownerVenueView is the expanded venue: its slots and who booked them.
type ownerVenueView struct {
	CSRF     template.HTML
	VenueID  int64
	Slots    []availability.Slot
	Bookings []booking.Booking
	SlotForm reqdto.SlotForm
}

// ownerState is what the dashboard shows besides the venue list.
type ownerState struct {
	showNew  bool
	newForm  reqdto.VenueForm
	editID   int64
	editForm *reqdto.VenueForm
	venueID  int64
	slotForm reqdto.SlotForm
}

func venueSlotsPath(venueID int64) string {
	return ownerPath + "?venue=" + strconv.FormatInt(venueID, 10)
}

func (h *OwnerHandler) Dashboard(c *gin.Context) {
	h.renderDashboard(c, ownerState{
		showNew: c.Query("new") != "",
		editID:  queryID(c, "edit"),
		venueID: queryID(c, "venue"),
	}, nil)
}

func (h *OwnerHandler) CreateVenue(c *gin.Context) {
	var form reqdto.VenueForm
	if err := bindForm(c, &form); err != nil {
		h.renderDashboard(c, ownerState{showNew: true, newForm: form}, err)
		return
	}

	token, _ := caller(c)
	if _, err := h.commands.CreateVenue(c.Request.Context(), token, form); err != nil {
		h.renderDashboard(c, ownerState{showNew: true, newForm: form}, err)
		return
	}
	redirect(c, ownerPath)
}

func (h *OwnerHandler) UpdateVenue(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var form reqdto.VenueForm
	if err := bindForm(c, &form); err != nil {
		h.renderDashboard(c, ownerState{editID: id, editForm: &form}, err)
		return
	}

	token, _ := caller(c)
	if _, err := h.commands.UpdateVenue(c.Request.Context(), token, id, form); err != nil {
		h.renderDashboard(c, ownerState{editID: id, editForm: &form}, err)
		return
	}
	redirect(c, ownerPath)
}

func (h *OwnerHandler) DeleteVenue(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	token, _ := caller(c)
	if err := h.commands.DeleteVenue(c.Request.Context(), token, id); err != nil {
		h.renderDashboard(c, ownerState{}, err)
		return
	}
	redirect(c, ownerPath)
}

func (h *OwnerHandler) CreateSlot(c *gin.Context) {
	venueID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var form reqdto.SlotForm
	if err := bindForm(c, &form); err != nil {
		h.renderDashboard(c, ownerState{venueID: venueID, slotForm: form}, err)
		return
	}

	token, _ := caller(c)
	if _, err := h.commands.CreateSlot(c.Request.Context(), token, venueID, form); err != nil {
		h.renderDashboard(c, ownerState{venueID: venueID, slotForm: form}, err)
		return
	}
	redirect(c, venueSlotsPath(venueID))
}

func (h *OwnerHandler) DeleteSlot(c *gin.Context) {
	venueID, ok := pathID(c, "id")
	if !ok {
		return
	}
	slotID, ok := pathID(c, "slotID")
	if !ok {
		return
	}

	token, _ := caller(c)
	if err := h.commands.DeleteSlot(c.Request.Context(), token, venueID, slotID); err != nil {
		h.renderDashboard(c, ownerState{venueID: venueID}, err)
		return
	}
	redirect(c, venueSlotsPath(venueID))
}

func (h *OwnerHandler) renderDashboard(c *gin.Context, st ownerState, actionErr error) {
	ctx := c.Request.Context()
	token, _ := caller(c)

	venues, venuesErr := h.queries.ListMyVenues(ctx, token)
	view := ownerView{
		Venues:  venues,
		ShowNew: st.showNew,
		NewForm: st.newForm,
	}

	var editErr error
	if st.editID > 0 {
		switch {
		case st.editForm != nil:
			view.EditID, view.EditForm = st.editID, *st.editForm
		default:
			for _, v := range venues {
				if v.ID == st.editID {
					view.EditID = v.ID
					view.EditForm, editErr = reqdto.NewVenueForm(v)
				}
			}
		}
	}

	var slotsErr, bookingsErr error
	if st.venueID > 0 {
		sel := &ownerVenueView{
			CSRF:     csrf.TemplateField(c.Request),
			VenueID:  st.venueID,
			SlotForm: st.slotForm,
		}
		sel.Slots, slotsErr = h.queries.ListSlots(ctx, token, st.venueID)
		sel.Bookings, bookingsErr = h.queries.ListVenueBookings(ctx, token, st.venueID)
		view.Selected = sel
	}

	render(c, "owner", "Owner dashboard", view, firstErr(venuesErr, actionErr, editErr, slotsErr, bookingsErr))
}
