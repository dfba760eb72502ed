package middleware

import (
	"errors"
	"log"

	"jobtrack/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type AppError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Cause: cause}
}

// ErrorMiddleware is the boundary translator: domain errors arrive as
// AppError and map to their status; anything else, including panics, becomes
// an undetailed 500.
type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Printf("panic recovered: %v", r)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg := m.normalize(err)
		return response.Error(c, status, msg)
	}
}

func (m *ErrorMiddleware) normalize(err error) (int, string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 || status >= 500 {
			m.logger.Printf("internal error: %v", err)
			return fiber.StatusInternalServerError, response.MessageInternalServerError
		}
		return status, appErr.Message
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code > 0 && fiberErr.Code < 500 {
		return fiberErr.Code, fiberErr.Message
	}

	m.logger.Printf("internal error: %v", err)
	return fiber.StatusInternalServerError, response.MessageInternalServerError
}
