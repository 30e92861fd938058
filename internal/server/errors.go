package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/quickinvoice/internal/auth"
	invoicedomain "github.com/smallbiznis/quickinvoice/internal/invoice/domain"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidRequest = errors.New("invalid_request")
	ErrInternal       = errors.New("internal_error")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	switch {
	case isValidationError(err):
		code := validationErrorCode(err)
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   validationErrorField(code),
					Code:    code,
					Message: validationErrorMessage(code),
				},
			},
		}
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthorized",
			Message: "unauthorized",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, invoicedomain.ErrEmptyInvoice),
		errors.Is(err, invoicedomain.ErrTooManyItems),
		errors.Is(err, invoicedomain.ErrInvalidCurrency),
		errors.Is(err, invoicedomain.ErrInvalidQuantity),
		errors.Is(err, invoicedomain.ErrInvalidUnitPrice):
		return true
	default:
		return false
	}
}

func validationErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, invoicedomain.ErrEmptyInvoice):
		return "empty_invoice"
	case errors.Is(err, invoicedomain.ErrTooManyItems):
		return "too_many_items"
	default:
		return err.Error()
	}
}

func validationErrorField(code string) string {
	switch code {
	case "empty_invoice", "too_many_items":
		return "items"
	case "invalid_request":
		return "request"
	default:
		if strings.HasPrefix(code, "invalid_") {
			return strings.TrimPrefix(code, "invalid_")
		}
		return ""
	}
}

func validationErrorMessage(code string) string {
	switch code {
	case "invalid_request":
		return "invalid request"
	case "empty_invoice":
		return "add at least one item to generate an invoice"
	case "too_many_items":
		return "an invoice holds at most 10 items"
	default:
		return "invalid value"
	}
}
