package handler

import (
	"errors"

	"gatorhire/internal/delivery/http/middleware"
	"gatorhire/internal/domain/application"
	"gatorhire/internal/domain/job"
	"gatorhire/internal/pkg/response"
	"gatorhire/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationsHandler struct {
	uc usecase.ApplicationUsecase
}

type applyRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CoverLetter string `json:"coverLetter"`
	ResumeURL   string `json:"resumeUrl"`
	LinkedIn    string `json:"linkedIn"`
	Portfolio   string `json:"portfolio"`
	HeardFrom   string `json:"heardFrom"`
}

type updateStatusRequest struct {
	ApplicationID string `json:"applicationId"`
	Status        string `json:"status"`
}

func NewApplicationsHandler(uc usecase.ApplicationUsecase) *ApplicationsHandler {
	return &ApplicationsHandler{uc: uc}
}

func (h *ApplicationsHandler) Apply(c fiber.Ctx) error {
	var req applyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", err)
	}

	in := usecase.SubmitApplicationInput{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		CoverLetter: req.CoverLetter,
		ResumeURL:   req.ResumeURL,
		LinkedIn:    req.LinkedIn,
		Portfolio:   req.Portfolio,
		HeardFrom:   req.HeardFrom,
	}

	a, err := h.uc.Submit(c.Context(), c.Params("id"), in, actorIDString(c))
	if err != nil {
		return mapApplicationError(err)
	}
	return response.JSON(c, fiber.StatusCreated, a)
}

func (h *ApplicationsHandler) ListForUser(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil)
	}

	apps, err := h.uc.ListForUser(c.Context(), userID.String())
	if err != nil {
		return mapApplicationError(err)
	}
	return response.JSON(c, fiber.StatusOK, apps)
}

func (h *ApplicationsHandler) ListForJob(c fiber.Ctx) error {
	apps, err := h.uc.ListForJob(c.Context(), c.Query("jobId"))
	if err != nil {
		return mapApplicationError(err)
	}
	return response.JSON(c, fiber.StatusOK, apps)
}

func (h *ApplicationsHandler) UpdateStatus(c fiber.Ctx) error {
	var req updateStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := h.uc.UpdateStatus(c.Context(), req.ApplicationID, req.Status); err != nil {
		return mapApplicationError(err)
	}
	return response.Success(c, fiber.StatusOK)
}

func mapApplicationError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, job.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", err)
	case errors.Is(err, application.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", err)
	case errors.Is(err, usecase.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusConflict, "You have already applied to this job", err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing required fields", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
