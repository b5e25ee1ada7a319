package response

import "github.com/gofiber/fiber/v3"

// GatorHire's wire contract predates this server: successful reads return the
// payload itself, writes return small envelopes, and every error is
// {"error": "..."}.

const (
	MessageBadRequest          = "bad request"
	MessageUnauthorized        = "unauthorized"
	MessageForbidden           = "forbidden"
	MessageNotFound            = "not found"
	MessageConflict            = "conflict"
	MessageInternalServerError = "internal server error"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type UpdateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	JobID   string `json:"jobId"`
}

func JSON(c fiber.Ctx, status int, payload any) error {
	return c.Status(status).JSON(payload)
}

func Success(c fiber.Ctx, status int) error {
	return c.Status(status).JSON(SuccessResponse{Success: true})
}

func Error(c fiber.Ctx, status int, message string) error {
	if message == "" {
		message = DefaultMessageForStatus(status)
	}
	return c.Status(status).JSON(ErrorResponse{Error: message})
}

func DefaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageUnauthorized
	case fiber.StatusForbidden:
		return MessageForbidden
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusConflict:
		return MessageConflict
	default:
		return MessageInternalServerError
	}
}
