package web

import (
	"venue-booking-web/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profiles queries.ProfileQueries
}

func NewProfileHandler(profiles queries.ProfileQueries) *ProfileHandler {
	return &ProfileHandler{
		profiles: profiles,
	}
}

func (h *ProfileHandler) Me(c *gin.Context) {
	token, identity := caller(c)
	view, err := h.profiles.Get(c.Request.Context(), token, identity)
	render(c, "profile", "Profile", view, err)
}
