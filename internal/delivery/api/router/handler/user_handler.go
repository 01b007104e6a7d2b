// Package handler contains the HTTP handlers of the mobile API.
package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"surplus/internal/delivery/api/response"
	"surplus/internal/domain/entity"
	"surplus/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves registration and login.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// LoginRequest is read from the query string.
type LoginRequest struct {
	Username string `query:"username" validate:"required,max=320"`
	Password string `query:"password" validate:"required,min=8,max=20"`
}

// RegisterRequest is read from a multipart form; the avatar comes in the "image" part.
type RegisterRequest struct {
	Email       string `form:"email" validate:"required,email,max=320"`
	Username    string `form:"username" validate:"required,max=320"`
	Name        string `form:"name" validate:"required,max=160"`
	PhoneNumber string `form:"phone_number" validate:"required,max=20"`
	Password    string `form:"password" validate:"required,min=8,max=20"`
	Gender      string `form:"gender" validate:"required,gender"`
	Birthday    string `form:"birthday" validate:"required,datetime=2006-01-02"`
}

// Login exchanges credentials for the user's API token.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// Register creates an account with its profile and returns the new API token.
// A taken username is reported before any field errors.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.userUC.EnsureUsernameAvailable(c.Request().Context(), req.Username); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	image, release, err := formImage(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer release()

	gender, _ := entity.ParseGender(req.Gender)
	birthday, _ := time.Parse(dateLayout, req.Birthday)

	output, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Username:    strings.TrimSpace(req.Username),
		Email:       strings.TrimSpace(req.Email),
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		Gender:      gender,
		Birthday:    birthday,
		Image:       image,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
