package web

import (
	"venue-booking-web/internal/domain/user"
	reqdto "venue-booking-web/internal/handler/dto/request"
	"venue-booking-web/internal/usecase/commands"
	"venue-booking-web/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const adminPath = "/admin"

type AdminHandler struct {
	queries  queries.AdminQueries
	commands commands.AdminCommands
}

func NewAdminHandler(q queries.AdminQueries, cmd commands.AdminCommands) *AdminHandler {
	return &AdminHandler{
		queries:  q,
		commands: cmd,
	}
}

type adminView struct {
	Filter   reqdto.UserFilterForm
	Users    []user.Account
	ShowNew  bool
	NewForm  reqdto.UserForm
	EditID   int64
	EditForm reqdto.UserForm
}

type adminState struct {
	showNew  bool
	newForm  reqdto.UserForm
	editID   int64
	editForm *reqdto.UserForm
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	h.renderDashboard(c, adminState{
		showNew: c.Query("new") != "",
		newForm: reqdto.UserForm{Role: user.RoleCustomer},
		editID:  queryID(c, "edit"),
	}, nil)
}

func (h *AdminHandler) CreateUser(c *gin.Context) {
	var form reqdto.UserForm
	if err := bindForm(c, &form); err != nil {
		form.Password = ""
		h.renderDashboard(c, adminState{showNew: true, newForm: form}, err)
		return
	}

	token, _ := caller(c)
	if _, err := h.commands.CreateUser(c.Request.Context(), token, form); err != nil {
		form.Password = ""
		h.renderDashboard(c, adminState{showNew: true, newForm: form}, err)
		return
	}
	redirect(c, adminPath)
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var form reqdto.UserForm
	if err := bindForm(c, &form); err != nil {
		form.Password = ""
		h.renderDashboard(c, adminState{editID: id, editForm: &form}, err)
		return
	}

	token, _ := caller(c)
	if _, err := h.commands.UpdateUser(c.Request.Context(), token, id, form); err != nil {
		form.Password = ""
		h.renderDashboard(c, adminState{editID: id, editForm: &form}, err)
		return
	}
	redirect(c, adminPath)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	token, _ := caller(c)
	if err := h.commands.DeleteUser(c.Request.Context(), token, id); err != nil {
		h.renderDashboard(c, adminState{}, err)
		return
	}
	redirect(c, adminPath)
}

func (h *AdminHandler) renderDashboard(c *gin.Context, st adminState, actionErr error) {
	ctx := c.Request.Context()
	token, _ := caller(c)

	var filter reqdto.UserFilterForm
	_ = c.ShouldBindQuery(&filter)

	users, listErr := h.queries.ListUsers(ctx, token, filter.ToBackend())
	view := adminView{
		Filter:  filter,
		Users:   users,
		ShowNew: st.showNew,
		NewForm: st.newForm,
	}

	var editErr error
	if st.editID > 0 {
		if st.editForm != nil {
			view.EditID, view.EditForm = st.editID, *st.editForm
		} else {
			var account user.Account
			account, editErr = h.queries.GetUser(ctx, token, st.editID)
			if editErr == nil {
				view.EditID = account.ID
				view.EditForm, editErr = reqdto.NewUserForm(account)
			}
		}
	}

	render(c, "admin", "Admin dashboard", view, firstErr(listErr, actionErr, editErr))
}
