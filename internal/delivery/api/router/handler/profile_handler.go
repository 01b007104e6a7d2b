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

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the authenticated user's profile.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest is read from a multipart form; a new avatar may come in the "image" part.
type UpdateProfileRequest struct {
	Email       string `form:"email" validate:"required,email,max=320"`
	Name        string `form:"name" validate:"required,max=160"`
	PhoneNumber string `form:"phone_number" validate:"required,max=20"`
	Gender      string `form:"gender" validate:"required,gender"`
	Birthday    string `form:"birthday" validate:"required,datetime=2006-01-02"`
}

// GetProfile returns the profile of the caller.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UpdateProfile replaces the caller's profile fields and returns the result.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	image, release, err := formImage(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer release()

	gender, _ := entity.ParseGender(req.Gender)
	birthday, _ := time.Parse(dateLayout, req.Birthday)

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		Email:       strings.TrimSpace(req.Email),
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Gender:      gender,
		Birthday:    birthday,
		Image:       image,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}
