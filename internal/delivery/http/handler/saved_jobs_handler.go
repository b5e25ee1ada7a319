package handler

import (
	"errors"

	"gatorhire/internal/delivery/http/middleware"
	"gatorhire/internal/domain/job"
	"gatorhire/internal/domain/savedjob"
	"gatorhire/internal/pkg/response"
	"gatorhire/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SavedJobsHandler struct {
	uc usecase.SavedJobUsecase
}

type saveJobRequest struct {
	JobID string `json:"jobId"`
}

type bulkUnsaveRequest struct {
	JobIDs []string `json:"jobIds"`
}

type bulkUnsaveResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}

func NewSavedJobsHandler(uc usecase.SavedJobUsecase) *SavedJobsHandler {
	return &SavedJobsHandler{uc: uc}
}

func (h *SavedJobsHandler) List(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil)
	}

	items, err := h.uc.List(c.Context(), userID.String())
	if err != nil {
		return mapSavedJobError(err)
	}
	return response.JSON(c, fiber.StatusOK, items)
}

func (h *SavedJobsHandler) Save(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil)
	}

	var req saveJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := h.uc.Save(c.Context(), userID.String(), req.JobID); err != nil {
		return mapSavedJobError(err)
	}
	return response.Success(c, fiber.StatusCreated)
}

func (h *SavedJobsHandler) Unsave(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil)
	}

	if err := h.uc.Unsave(c.Context(), userID.String(), c.Query("jobId")); err != nil {
		return mapSavedJobError(err)
	}
	return response.Success(c, fiber.StatusOK)
}

func (h *SavedJobsHandler) BulkUnsave(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil)
	}

	var req bulkUnsaveRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", err)
	}

	deleted, err := h.uc.BulkUnsave(c.Context(), userID.String(), req.JobIDs)
	if err != nil {
		return mapSavedJobError(err)
	}
	return response.JSON(c, fiber.StatusOK, bulkUnsaveResponse{Success: true, Deleted: deleted})
}

func mapSavedJobError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, job.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", err)
	case errors.Is(err, savedjob.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Saved job not found", err)
	case errors.Is(err, savedjob.ErrAlreadySaved):
		return middleware.NewAppError(fiber.StatusConflict, "Job already saved", err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing required fields", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
