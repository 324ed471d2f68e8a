package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/setoferry/setoferry/pkg/ctdf"
	"github.com/setoferry/setoferry/pkg/dataaggregator"
	"github.com/setoferry/setoferry/pkg/dataaggregator/query"
)

func DataStatus(c *fiber.Ctx) error {
	timetable, err := dataaggregator.Lookup[*ctdf.Timetable](query.Timetable{})
	if err != nil {
		return sendError(c, err)
	}

	return c.JSON(fiber.Map{
		"version":    timetable.Version,
		"loadedAt":   timetable.LoadedAt,
		"dataSource": timetable.DataSource,
		"records": fiber.Map{
			"sailings":  len(timetable.Sailings),
			"companies": len(timetable.Operators),
			"ports":     len(timetable.Stops),
			"fares":     len(timetable.Fares),
			"islands":   len(timetable.Islands),
		},
	})
}
