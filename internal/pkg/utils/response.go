package utils

import (
	"encoding/json"
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/geocoder-api/internal/pkg/errors"
)

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

// ErrorResponse - тело ответа с ошибкой: {"message": "...", "code": "..."}
type ErrorResponse struct {
	Message string                 `json:"message"`
	Code    string                 `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type Meta struct {
	Total    int     `json:"total,omitempty"`
	TimeMSec float64 `json:"time_ms,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

// SendJSON writes data as is; pretty indents it for debug requests.
func SendJSON(c *fiber.Ctx, data interface{}, pretty bool) error {
	if !pretty {
		return c.JSON(data)
	}

	body, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(body)
}

func SendError(c *fiber.Ctx, err error) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Message: appErr.Message,
			Code:    appErr.Code,
			Details: appErr.Details,
		})
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Message: errors.ErrInternalServer.Message,
		Code:    errors.ErrInternalServer.Code,
	})
}
