package handler

import (
	"errors"

	"gatorhire/internal/delivery/http/dto"
	"gatorhire/internal/delivery/http/middleware"
	"gatorhire/internal/domain/user"
	"gatorhire/internal/pkg/response"
	"gatorhire/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type updateProfileRequest struct {
	FullName *string  `json:"fullName"`
	Title    *string  `json:"title"`
	Location *string  `json:"location"`
	Bio      *string  `json:"bio"`
	Skills   []string `json:"skills"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil)
	}

	usr, err := h.uc.Get(c.Context(), userID)
	if err != nil {
		return mapProfileError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewUserResponse(usr))
}

func (h *ProfileHandler) Update(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil)
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", err)
	}

	usr, err := h.uc.Update(c.Context(), userID, usecase.UpdateProfileInput{
		FullName: req.FullName,
		Title:    req.Title,
		Location: req.Location,
		Bio:      req.Bio,
		Skills:   req.Skills,
	})
	if err != nil {
		return mapProfileError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewUserResponse(usr))
}

func (h *ProfileHandler) Stats(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil)
	}

	stats, err := h.uc.Stats(c.Context(), userID)
	if err != nil {
		return mapProfileError(err)
	}
	return response.JSON(c, fiber.StatusOK, stats)
}

func mapProfileError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing required fields", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
