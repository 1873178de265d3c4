package handler

import (
	"net/http"

	"outside/internal/delivery/api/response"
	deliverycontext "outside/internal/delivery/context"
	"outside/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UpdateUserRequest is the body of PUT /users/current. Absent or empty fields
// are left unchanged.
type UpdateUserRequest struct {
	Email     *string `json:"email" validate:"omitempty,email|len=0"`
	FirstName *string `json:"firstName" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,max=100"`
}

// UserHandler holds dependencies for profile handlers.
type UserHandler struct {
	uc usecase.ProfileUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.ProfileUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// ListUsers returns every profile.
func (h *UserHandler) ListUsers(c echo.Context) error {
	profiles, err := h.uc.ListProfiles(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserDataList(profiles))
}

// GetUser returns one profile.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserData(profile))
}

// GetCurrentUser returns the profile of the caller.
func (h *UserHandler) GetCurrentUser(c echo.Context) error {
	profile, err := h.uc.GetProfile(c.Request().Context(), deliverycontext.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserData(profile))
}

// UpdateCurrentUser applies a partial update to the caller's profile.
func (h *UserHandler) UpdateCurrentUser(c echo.Context) error {
	var req UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), deliverycontext.GetUserID(c), &usecase.UpdateProfileInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserData(profile))
}

// DeleteCurrentUser removes the caller together with their events.
func (h *UserHandler) DeleteCurrentUser(c echo.Context) error {
	if err := h.uc.DeleteProfile(c.Request().Context(), deliverycontext.GetUserID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
