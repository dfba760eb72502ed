package response

import "github.com/gofiber/fiber/v3"

type SemanticResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

const (
	MessageOK                  = "ok"
	MessageBadRequest          = "bad request"
	MessageUnauthorized        = "unauthorized"
	MessageNotFound            = "not found"
	MessageTooManyRequests     = "too many requests"
	MessageInternalServerError = "internal server error"
	MessageError               = "error"
)

func Success(c fiber.Ctx, status int, message string, data interface{}) error {
	st := normalizeStatus(status)
	if message == "" {
		message = defaultMessageForStatus(st)
	}
	return c.Status(st).JSON(SemanticResponse{Status: st, Message: message, Data: data})
}

func Error(c fiber.Ctx, status int, message string) error {
	st := normalizeStatus(status)
	if message == "" {
		message = defaultMessageForStatus(st)
	}
	return c.Status(st).JSON(SemanticResponse{Status: st, Message: message})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func defaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusOK:
		return MessageOK
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageUnauthorized
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusTooManyRequests:
		return MessageTooManyRequests
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageError
	}
}
