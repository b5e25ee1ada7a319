package handler

import (
	"errors"

	"gatorhire/internal/delivery/http/dto"
	"gatorhire/internal/delivery/http/middleware"
	"gatorhire/internal/pkg/response"
	ucauth "gatorhire/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc ucauth.AuthUsecase
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

func NewAuthHandler(uc ucauth.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/login", h.Login)
	r.Post("/admin/login", h.AdminLogin)
	r.Post("/register", h.Register)
	r.Post("/logout", h.Logout)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", err)
	}

	usr, token, err := h.uc.Login(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.AuthResponse{
		Success: true,
		User:    dto.NewUserResponse(usr),
		Token:   token,
	})
}

func (h *AuthHandler) AdminLogin(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", err)
	}

	usr, token, err := h.uc.AdminLogin(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.AuthResponse{
		Success: true,
		User:    dto.NewUserResponse(usr),
		Token:   token,
	})
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", err)
	}

	usr, token, err := h.uc.Register(c.Context(), ucauth.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		return mapAuthError(err)
	}

	return response.JSON(c, fiber.StatusCreated, dto.AuthResponse{
		Success: true,
		User:    dto.NewUserResponse(usr),
		Token:   token,
	})
}

// Logout exists for the client's sake; the token is stateless so there is
// nothing to revoke server-side.
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK)
}

func mapAuthError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ucauth.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusConflict, "Email already in use", err)
	case errors.Is(err, ucauth.ErrInvalidCredentials), errors.Is(err, ucauth.ErrNotAdmin):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid email or password", err)
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing required fields", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
