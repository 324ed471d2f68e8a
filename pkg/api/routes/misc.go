package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/setoferry/setoferry/pkg/ctdf"
	"github.com/setoferry/setoferry/pkg/dataaggregator"
	"github.com/setoferry/setoferry/pkg/dataaggregator/source"
	"github.com/setoferry/setoferry/pkg/dataaggregator/source/localtimetable"
)

func sendData(c *fiber.Ctx, data interface{}, message string) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
		"message": message,
	})
}

func sendList(c *fiber.Ctx, data interface{}, total int, message string) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
		"total":   total,
		"message": message,
	})
}

// sendError maps lookup and validation errors onto HTTP status codes.
func sendError(c *fiber.Ctx, err error) error {
	response := fiber.Map{
		"success": false,
		"error":   err.Error(),
	}

	var validationError *ctdf.ValidationError

	switch {
	case errors.As(err, &validationError):
		response["field"] = validationError.Field
		c.Status(fiber.StatusBadRequest)
	case errors.Is(err, ctdf.ErrInvalidQuery):
		c.Status(fiber.StatusBadRequest)
	case errors.Is(err, source.ErrNotFound):
		c.Status(fiber.StatusNotFound)
	case errors.Is(err, localtimetable.ErrTimetableNotLoaded), errors.Is(err, dataaggregator.ErrNoMatchingSource):
		c.Status(fiber.StatusServiceUnavailable)
	default:
		c.Status(fiber.StatusInternalServerError)
	}

	return c.JSON(response)
}
