package routes

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/setoferry/setoferry/pkg/ctdf"
	"github.com/setoferry/setoferry/pkg/dataaggregator"
	"github.com/setoferry/setoferry/pkg/dataaggregator/query"
)

func FaresRouter(router fiber.Router) {
	router.Get("/", listFares)
}

func listFares(c *fiber.Ctx) error {
	fares, err := dataaggregator.Lookup[[]*ctdf.FareSummary](query.Fares{
		Departure: strings.TrimSpace(c.Query("departure")),
		Arrival:   strings.TrimSpace(c.Query("arrival")),
	})
	if err != nil {
		return sendError(c, err)
	}

	return sendList(c, fares, len(fares), fmt.Sprintf("Found %d fares", len(fares)))
}
