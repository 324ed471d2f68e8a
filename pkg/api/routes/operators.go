package routes

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/setoferry/setoferry/pkg/ctdf"
	"github.com/setoferry/setoferry/pkg/dataaggregator"
	"github.com/setoferry/setoferry/pkg/dataaggregator/query"
)

func OperatorsRouter(router fiber.Router) {
	router.Get("/", listOperators)
	router.Get("/:name", getOperator)
}

func listOperators(c *fiber.Ctx) error {
	operators, err := dataaggregator.Lookup[[]*ctdf.Operator](query.Operators{
		Search: c.Query("search"),
	})
	if err != nil {
		return sendError(c, err)
	}

	operatorsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, operators)
	if err != nil {
		return sendError(c, fmt.Errorf("reducing companies: %w", err))
	}

	return sendList(c, operatorsReduced, len(operators), fmt.Sprintf("Found %d companies", len(operators)))
}

func getOperator(c *fiber.Ctx) error {
	name, err := pathName(c)
	if err != nil {
		return sendError(c, err)
	}

	operator, err := dataaggregator.Lookup[*ctdf.Operator](query.Operator{
		Name: name,
	})
	if err != nil {
		return sendError(c, err)
	}

	operatorReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"detailed"},
	}, operator)
	if err != nil {
		return sendError(c, fmt.Errorf("reducing company: %w", err))
	}

	return sendData(c, operatorReduced, operator.Name)
}
