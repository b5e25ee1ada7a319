package handler

import (
	"errors"

	"gatorhire/internal/delivery/http/middleware"
	"gatorhire/internal/domain/job"
	"gatorhire/internal/domain/user"
	"gatorhire/internal/pkg/response"
	"gatorhire/internal/repository"
	"gatorhire/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobsHandler struct {
	uc usecase.JobUsecase
}

type jobPayload struct {
	Title            string           `json:"title"`
	Company          string           `json:"company"`
	Location         string           `json:"location"`
	Type             string           `json:"type"`
	Salary           string           `json:"salary"`
	Description      string           `json:"description"`
	Requirements     []string         `json:"requirements"`
	Responsibilities []string         `json:"responsibilities"`
	Benefits         []string         `json:"benefits"`
	Category         string           `json:"category"`
	Status           string           `json:"status"`
	CompanyInfo      *job.CompanyInfo `json:"companyInfo"`
}

func NewJobsHandler(uc usecase.JobUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	jobs, err := h.uc.List(c.Context())
	if err != nil {
		return mapJobError(err)
	}
	return response.JSON(c, fiber.StatusOK, jobs)
}

func (h *JobsHandler) ListAdmin(c fiber.Ctx) error {
	jobs, err := h.uc.ListAdmin(c.Context())
	if err != nil {
		return mapJobError(err)
	}
	return response.JSON(c, fiber.StatusOK, jobs)
}

func (h *JobsHandler) Get(c fiber.Ctx) error {
	j, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapJobError(err)
	}
	return response.JSON(c, fiber.StatusOK, j)
}

func (h *JobsHandler) Search(c fiber.Ctx) error {
	params := repository.JobSearchParams{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Type:     c.Query("jobType"),
		Location: c.Query("location"),
	}

	jobs, err := h.uc.Search(c.Context(), params)
	if err != nil {
		return mapJobError(err)
	}
	return response.JSON(c, fiber.StatusOK, jobs)
}

func (h *JobsHandler) Create(c fiber.Ctx) error {
	var req jobPayload
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", err)
	}

	actorID := actorIDString(c)
	created, err := h.uc.Create(c.Context(), req.toCreateInput(), actorID)
	if err != nil {
		return mapJobError(err)
	}
	return response.JSON(c, fiber.StatusCreated, created)
}

func (h *JobsHandler) Update(c fiber.Ctx) error {
	var req jobPayload
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", err)
	}

	id := c.Params("id")
	in := usecase.UpdateJobInput{CreateJobInput: req.toCreateInput(), Status: req.Status}
	if err := h.uc.Update(c.Context(), id, in, actorIDString(c)); err != nil {
		return mapJobError(err)
	}

	return response.JSON(c, fiber.StatusOK, response.UpdateResponse{
		Success: true,
		Message: "Job updated successfully",
		JobID:   id,
	})
}

func (h *JobsHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id"), actorIDString(c)); err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK)
}

func (h *JobsHandler) Recommendations(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil)
	}

	jobs, err := h.uc.RecommendationsFor(c.Context(), userID)
	if err != nil {
		return mapJobError(err)
	}
	return response.JSON(c, fiber.StatusOK, jobs)
}

func (p jobPayload) toCreateInput() usecase.CreateJobInput {
	return usecase.CreateJobInput{
		Title:            p.Title,
		Company:          p.Company,
		Location:         p.Location,
		Type:             p.Type,
		Salary:           p.Salary,
		Description:      p.Description,
		Requirements:     p.Requirements,
		Responsibilities: p.Responsibilities,
		Benefits:         p.Benefits,
		Category:         job.Category(p.Category),
		CompanyInfo:      p.CompanyInfo,
	}
}

func actorIDString(c fiber.Ctx) string {
	if id, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID); ok {
		return id.String()
	}
	return ""
}

func mapJobError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, job.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", err)
	case errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "You can only modify jobs you created", err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing required fields", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
