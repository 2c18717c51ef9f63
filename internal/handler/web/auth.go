package web

import (
	"log/slog"
	"net/http"

	reqdto "venue-booking-web/internal/handler/dto/request"
	"venue-booking-web/internal/handler/middleware"
	"venue-booking-web/internal/handler/routeguard"
	"venue-booking-web/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	venuesPath     = "/venues"
	registeredFlag = "registered"
)

type AuthHandler struct {
	auth commands.AuthCommands
}

func NewAuthHandler(auth commands.AuthCommands) *AuthHandler {
	return &AuthHandler{
		auth: auth,
	}
}

type loginView struct {
	Email string
	From  string
}

type registerView struct {
	Form reqdto.RegisterForm
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	p := newPage(c, "Login", loginView{From: c.Query("from")})
	if c.Query(registeredFlag) != "" {
		p.Notice = "Registered successfully. You can now log in."
	}
	c.HTML(http.StatusOK, "login", p)
}

// Login stores the backend's answer in the session and returns the user to
// where the guard stopped them.
func (h *AuthHandler) Login(c *gin.Context) {
	var form reqdto.LoginForm
	if err := bindForm(c, &form); err != nil {
		render(c, "login", "Login", loginView{Email: form.Email, From: form.From}, err)
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), form)
	if err != nil {
		render(c, "login", "Login", loginView{Email: form.Email, From: form.From}, err)
		return
	}

	if err := middleware.GetSession(c).Login(resp); err != nil {
		render(c, "login", "Login", loginView{Email: form.Email, From: form.From}, err)
		return
	}
	slog.Debug("user logged in", "user_id", resp.UserID, "role", string(resp.Role))
	redirect(c, form.RedirectTarget(venuesPath))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := middleware.GetSession(c).Logout(); err != nil {
		slog.Warn("logout failed to clear session", "error", err.Error())
	}
	redirect(c, routeguard.LoginPath)
}

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	render(c, "register", "Register", registerView{}, nil)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var form reqdto.RegisterForm
	if err := bindForm(c, &form); err != nil {
		render(c, "register", "Register", registerView{Form: form}, err)
		return
	}

	if _, err := h.auth.Register(c.Request.Context(), form); err != nil {
		form.Password = ""
		render(c, "register", "Register", registerView{Form: form}, err)
		return
	}
	redirect(c, routeguard.LoginPath+"?"+registeredFlag+"=1")
}
