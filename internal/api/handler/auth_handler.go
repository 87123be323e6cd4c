package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crmdesk/crm-system/internal/api/flash"
	"github.com/crmdesk/crm-system/internal/api/metrics"
	"github.com/crmdesk/crm-system/internal/api/middleware"
	"github.com/crmdesk/crm-system/internal/core/domain"
	"github.com/crmdesk/crm-system/internal/core/ports"
)

// AuthHandler serves login, logout and registration.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerData struct {
	page
	Form   RegisterForm
	Errors map[string]string
}

// Login handles POST /, the login form on the home page. Both outcomes
// redirect back to the list with a flash message.
func (h *AuthHandler) Login(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	sess, err := h.authService.Login(c.Request().Context(), username, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			flash.Add(c, "There was an error logging in, please try again.")
			return c.Redirect(http.StatusSeeOther, "/")
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	setSessionCookie(c, sess)
	flash.Add(c, "You have been logged in!")
	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout handles GET /logout/.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil && cookie.Value != "" {
		if err := h.authService.Logout(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}

	clearSessionCookie(c)
	flash.Add(c, "You have been logged out.")
	return c.Redirect(http.StatusSeeOther, "/")
}

// RegisterForm handles GET /register/.
func (h *AuthHandler) RegisterForm(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", registerData{page: newPage(c)})
}

// Register handles POST /register/. A valid form creates the identity
// and logs it in; an invalid one re-renders with the input retained.
func (h *AuthHandler) Register(c echo.Context) error {
	var form RegisterForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	if errs := ValidateForm(form); errs != nil {
		return c.Render(http.StatusOK, "register.html", registerData{
			page: newPage(c), Form: form, Errors: errs,
		})
	}

	sess, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username:  form.Username,
		Email:     form.Email,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Password:  form.Password1,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return c.Render(http.StatusOK, "register.html", registerData{
				page: newPage(c), Form: form,
				Errors: map[string]string{"username": "username is already taken"},
			})
		}
		return err
	}

	metrics.RegistrationsTotal.Inc()
	setSessionCookie(c, sess)
	flash.Add(c, "You have successfully registered, welcome!")
	return c.Redirect(http.StatusSeeOther, "/")
}

func setSessionCookie(c echo.Context, sess *ports.Session) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
