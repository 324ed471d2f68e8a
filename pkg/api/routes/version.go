package routes

import "github.com/gofiber/fiber/v2"

const (
	ServiceName    = "Setouchi Ferry API"
	ServiceVersion = "v1.0.0"
)

func APIVersion(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"version": ServiceVersion,
	})
}

func Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":        ServiceName,
		"description": "Ferry timetable search for the Seto Inland Sea islands",
		"version":     ServiceVersion,
	})
}

func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
	})
}
