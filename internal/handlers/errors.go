package handlers

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/mapping"
	"storefront/internal/services"
	"storefront/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Msg        string            `json:"msg"`
	HTTPStatus int               `json:"httpStatus"`
	Timestamp  time.Time         `json:"timestamp"`
	Errors     map[string]string `json:"errors,omitempty"`
}

// BadRequestError marks a malformed request: an unparsable body, a bad path
// parameter or a transfer form that fails validation.
type BadRequestError struct {
	Msg    string
	Fields map[string]string
	Err    error
}

func (e *BadRequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *BadRequestError) Unwrap() error {
	return e.Err
}

func badRequest(msg string, err error) *BadRequestError {
	return &BadRequestError{Msg: msg, Err: err}
}

// ErrorHandler is the Fiber error handler shared by all routes.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	resp := ErrorResponse{Msg: err.Error(), Timestamp: time.Now().UTC()}

	var badReq *BadRequestError
	var fiberErr *fiber.Error
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.As(err, &badReq):
		status = fiber.StatusBadRequest
		resp.Errors = badReq.Fields
	case errors.Is(err, mapping.ErrMissingCredential), errors.Is(err, services.ErrNilInput):
		status = fiber.StatusBadRequest
	case errors.As(err, &fiberErr):
		status = fiberErr.Code
	default:
		logger.Logger.Error().Err(err).Str("path", c.Path()).Msg("request failed")
		resp.Msg = "internal server error"
	}

	resp.HTTPStatus = status
	return c.Status(status).JSON(resp)
}

var validate = validator.New()

// parseBody decodes the JSON body into out and validates it.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return badRequest("Invalid request body", err)
	}
	if err := validate.Struct(out); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return badRequest("Validation failed", err)
		}
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return &BadRequestError{Msg: "Validation failed", Fields: errorMessages}
	}
	return nil
}

// intParam reads a positive integer path parameter.
func intParam(c *fiber.Ctx, name string) (int, error) {
	v, err := c.ParamsInt(name)
	if err != nil || v <= 0 {
		return 0, badRequest(fmt.Sprintf("Invalid %s %q", name, c.Params(name)), err)
	}
	return v, nil
}
