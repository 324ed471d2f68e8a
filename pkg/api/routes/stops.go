package routes

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/setoferry/setoferry/pkg/ctdf"
	"github.com/setoferry/setoferry/pkg/dataaggregator"
	"github.com/setoferry/setoferry/pkg/dataaggregator/query"
)

func StopsRouter(router fiber.Router) {
	router.Get("/", listStops)
	router.Get("/:name", getStop)
}

func listStops(c *fiber.Ctx) error {
	stops, err := dataaggregator.Lookup[[]*ctdf.Stop](query.Stops{
		Search: c.Query("search"),
	})
	if err != nil {
		return sendError(c, err)
	}

	stopsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, stops)
	if err != nil {
		return sendError(c, fmt.Errorf("reducing ports: %w", err))
	}

	return sendList(c, stopsReduced, len(stops), fmt.Sprintf("Found %d ports", len(stops)))
}

func getStop(c *fiber.Ctx) error {
	name, err := pathName(c)
	if err != nil {
		return sendError(c, err)
	}

	stop, err := dataaggregator.Lookup[*ctdf.Stop](query.Stop{
		Name: name,
	})
	if err != nil {
		return sendError(c, err)
	}

	stopReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"detailed"},
	}, stop)
	if err != nil {
		return sendError(c, fmt.Errorf("reducing port: %w", err))
	}

	return sendData(c, stopReduced, stop.Name)
}

// pathName returns the decoded :name parameter. Port and company names are
// Japanese so arrive percent encoded.
func pathName(c *fiber.Ctx) (string, error) {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return "", &ctdf.ValidationError{Field: "name", Value: c.Params("name"), Reason: "must be a valid path segment"}
	}

	return name, nil
}
