package routes

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/setoferry/setoferry/pkg/ctdf"
	"github.com/setoferry/setoferry/pkg/dataaggregator"
	"github.com/setoferry/setoferry/pkg/dataaggregator/query"
)

// IslandsRouter serves on-island transport. The fixed paths are registered
// ahead of /:name so they are never read as island names.
func IslandsRouter(router fiber.Router) {
	router.Get("/", listIslands)
	router.Get("/summary", listIslandSummaries)
	router.Get("/rentals/bicycle", searchBicycleRentals)
	router.Get("/:name", getIsland)
	router.Get("/:name/rentals/bicycle", getIslandBicycleRentals)
	router.Get("/:name/bus", getIslandBusSchedules)
	router.Get("/:name/transport/other", getIslandOtherTransports)
}

func listIslands(c *fiber.Ctx) error {
	islands, err := dataaggregator.Lookup[[]*ctdf.Island](query.Islands{})
	if err != nil {
		return sendError(c, err)
	}

	return sendList(c, islands, len(islands), fmt.Sprintf("Found transport for %d islands", len(islands)))
}

func listIslandSummaries(c *fiber.Ctx) error {
	summaries, err := dataaggregator.Lookup[[]*ctdf.IslandSummary](query.IslandSummaries{})
	if err != nil {
		return sendError(c, err)
	}

	return sendList(c, summaries, len(summaries), fmt.Sprintf("Summarised transport for %d islands", len(summaries)))
}

func searchBicycleRentals(c *fiber.Ctx) error {
	var params ctdf.BicycleRentalSearchParams
	if err := c.QueryParser(&params); err != nil {
		return sendError(c, fmt.Errorf("%w: %s", ctdf.ErrInvalidQuery, err))
	}

	rentalQuery, err := params.Query()
	if err != nil {
		return sendError(c, err)
	}

	results, err := dataaggregator.Lookup[[]*ctdf.BicycleRentalResult](query.BicycleRentals{
		Query: rentalQuery,
	})
	if err != nil {
		return sendError(c, err)
	}

	return sendList(c, results, len(results), fmt.Sprintf("Found %d bicycle rentals", len(results)))
}

func lookupIsland(c *fiber.Ctx) (*ctdf.Island, error) {
	name, err := pathName(c)
	if err != nil {
		return nil, err
	}

	return dataaggregator.Lookup[*ctdf.Island](query.Island{
		Name: name,
	})
}

func getIsland(c *fiber.Ctx) error {
	island, err := lookupIsland(c)
	if err != nil {
		return sendError(c, err)
	}

	return sendData(c, island, island.Name)
}

func getIslandBicycleRentals(c *fiber.Ctx) error {
	island, err := lookupIsland(c)
	if err != nil {
		return sendError(c, err)
	}

	return sendList(c, fiber.Map{
		"island_name":     island.Name,
		"island_name_en":  island.NameEn,
		"bicycle_rentals": island.BicycleRentals,
	}, len(island.BicycleRentals), fmt.Sprintf("Bicycle rentals on %s", island.Name))
}

func getIslandBusSchedules(c *fiber.Ctx) error {
	island, err := lookupIsland(c)
	if err != nil {
		return sendError(c, err)
	}

	return sendList(c, fiber.Map{
		"island_name":    island.Name,
		"island_name_en": island.NameEn,
		"bus_schedules":  island.BusSchedules,
	}, len(island.BusSchedules), fmt.Sprintf("Bus timetable for %s", island.Name))
}

func getIslandOtherTransports(c *fiber.Ctx) error {
	island, err := lookupIsland(c)
	if err != nil {
		return sendError(c, err)
	}

	return sendList(c, fiber.Map{
		"island_name":      island.Name,
		"island_name_en":   island.NameEn,
		"other_transports": island.OtherTransports,
	}, len(island.OtherTransports), fmt.Sprintf("Other transport on %s", island.Name))
}
