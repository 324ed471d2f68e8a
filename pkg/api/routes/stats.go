package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/setoferry/setoferry/pkg/dataaggregator"
	"github.com/setoferry/setoferry/pkg/dataaggregator/query"
	"github.com/setoferry/setoferry/pkg/stats/calculator"
)

func Stats(c *fiber.Ctx) error {
	stats, err := dataaggregator.Lookup[*calculator.TimetableStats](query.TimetableStats{})
	if err != nil {
		return sendError(c, err)
	}

	return sendData(c, stats, "Timetable statistics")
}
