package handler

import (
	"errors"

	"jobtrack/internal/delivery/http/dto"
	"jobtrack/internal/delivery/http/middleware"
	"jobtrack/internal/domain/user"
	"jobtrack/internal/pkg/response"
	"jobtrack/internal/usecase"
	ucauth "jobtrack/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	LastName string `json:"lastName"`
	Location string `json:"location"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Location string `json:"location"`
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Please provide name, email and password", err)
	}

	usr, token, err := h.uc.Register(c.Context(), ucauth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		LastName: req.LastName,
		Location: req.Location,
	})
	if err != nil {
		return mapAuthError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewAuthResponse(usr, token))
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Please provide email and password", err)
	}

	usr, token, err := h.uc.Login(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthError(err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewAuthResponse(usr, token))
}

func (h *AuthHandler) UpdateUser(c fiber.Ctx) error {
	userID, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil)
	}

	var req updateUserRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Please provide all values", err)
	}

	usr, token, err := h.uc.UpdateProfile(c.Context(), userID, ucauth.UpdateProfileInput{
		Email:    req.Email,
		Name:     req.Name,
		LastName: req.LastName,
		Location: req.Location,
	})
	if err != nil {
		return mapAuthError(err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewAuthResponse(usr, token))
}

func mapAuthError(err error) error {
	switch {
	case errors.Is(err, ucauth.ErrMissingCredentials):
		return middleware.NewAppError(fiber.StatusBadRequest, "Please provide email and password", err)
	case errors.Is(err, ucauth.ErrMissingFields):
		return middleware.NewAppError(fiber.StatusBadRequest, "Please provide all values", err)
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Please provide valid name, email and password", err)
	case errors.Is(err, user.ErrEmailTaken):
		return middleware.NewAppError(fiber.StatusBadRequest, "Email already in use", err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid Credentials", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
