package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/financeassistant/authform/internal/api/metrics"
	"github.com/financeassistant/authform/internal/core/domain"
	"github.com/financeassistant/authform/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type credentialsRequest struct {
	Mail     string `json:"mail"     validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userData struct {
	ID   string `json:"_id"`
	Mail string `json:"mail"`
}

type authResponse struct {
	Data  userData `json:"data"`
	Token string   `json:"token,omitempty"`
}

// Register creates a new account.
//
// @Summary      Register a new user
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Email and password"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /api/user/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	return h.handle(c, "register", http.StatusCreated, h.authService.Register)
}

// Login authenticates an account and returns its identity and a JWT.
//
// @Summary      Login
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Email and password"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/user/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	return h.handle(c, "login", http.StatusOK, h.authService.Login)
}

func (h *AuthHandler) handle(
	c echo.Context,
	endpoint string,
	okStatus int,
	call func(ctx context.Context, mail, password string) (string, *domain.User, error),
) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		metrics.AuthRequestsTotal.WithLabelValues(endpoint, "bad_request").Inc()
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.AuthRequestsTotal.WithLabelValues(endpoint, "bad_request").Inc()
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	token, user, err := call(c.Request().Context(), req.Mail, req.Password)
	if err != nil {
		metrics.AuthRequestsTotal.WithLabelValues(endpoint, "rejected").Inc()
		return writeError(c, err)
	}

	metrics.AuthRequestsTotal.WithLabelValues(endpoint, "success").Inc()
	return c.JSON(okStatus, authResponse{
		Data:  userData{ID: user.ID, Mail: user.Mail},
		Token: token,
	})
}

// Me returns the identity carried by the bearer token.
//
// @Summary      Current user
// @Tags         user
// @Produce      json
// @Success      200   {object}  authResponse
// @Failure      401   {object}  messageResponse
// @Router       /api/user/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	id, mail, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{Data: userData{ID: id, Mail: mail}})
}
