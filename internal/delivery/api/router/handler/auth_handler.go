// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"outside/internal/delivery/api/response"
	deliverycontext "outside/internal/delivery/context"
	"outside/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SignupRequest is the body of POST /signup.
type SignupRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
}

// SigninRequest is the body of POST /signin.
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SigninData is returned by a successful sign in.
type SigninData struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      *UserData `json:"user"`
}

// AuthHandler holds dependencies for the account entry points.
type AuthHandler struct {
	uc usecase.UserUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.UserUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Signup handles the user registration request.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.uc.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserData(profile))
}

// Signin handles the user login request.
func (h *AuthHandler) Signin(c echo.Context) error {
	var req SigninRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, SigninData{
		Token:     output.AccessToken,
		ExpiresAt: output.ExpiresAt,
		User:      newUserData(output.User),
	})
}

// Logout revokes the access token used for the request.
func (h *AuthHandler) Logout(c echo.Context) error {
	tokenID, expiresAt := deliverycontext.GetAccessToken(c)

	if err := h.uc.Logout(c.Request().Context(), &usecase.LogoutInput{TokenID: tokenID, ExpiresAt: expiresAt}); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
