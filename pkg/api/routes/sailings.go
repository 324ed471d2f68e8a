package routes

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/setoferry/setoferry/pkg/ctdf"
	"github.com/setoferry/setoferry/pkg/dataaggregator"
	"github.com/setoferry/setoferry/pkg/dataaggregator/query"
)

func SailingsRouter(router fiber.Router, popularRoutes []ctdf.PopularRoute) {
	router.Get("/", searchSailings)
	router.Get("/popular", func(c *fiber.Ctx) error {
		return getPopularRoutes(c, popularRoutes)
	})
	router.Get("/duration", getDuration)
}

func searchSailings(c *fiber.Ctx) error {
	var params ctdf.SailingSearchParams
	if err := c.QueryParser(&params); err != nil {
		return sendError(c, fmt.Errorf("%w: %s", ctdf.ErrInvalidQuery, err))
	}

	searchQuery, err := params.Query()
	if err != nil {
		return sendError(c, err)
	}

	results, err := dataaggregator.Lookup[*ctdf.SailingSearchResults](query.Sailings{
		Query: searchQuery,
	})
	if err != nil {
		return sendError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    results,
		"total":   results.Total,
		"page":    results.Page,
		"limit":   results.Limit,
		"message": fmt.Sprintf("Found %d sailings on %d routes", results.Total, len(results.Groups)),
	})
}

func getPopularRoutes(c *fiber.Ctx, popularRoutes []ctdf.PopularRoute) error {
	summaries, err := dataaggregator.Lookup[[]*ctdf.PopularRouteSummary](query.PopularRoutes{
		Routes: popularRoutes,
	})
	if err != nil {
		return sendError(c, err)
	}

	return sendData(c, summaries, "Popular routes")
}

func getDuration(c *fiber.Ctx) error {
	duration := ctdf.CalculateSailingDuration(c.Query("departure_time"), c.Query("arrival_time"))

	return sendData(c, duration, duration.String())
}
