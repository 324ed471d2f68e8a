package search

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/setoferry/setoferry/pkg/ctdf"
	"github.com/setoferry/setoferry/pkg/dataaggregator"
	"github.com/setoferry/setoferry/pkg/dataaggregator/query"
	"github.com/setoferry/setoferry/pkg/dataimporter"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search the timetable and print sailings grouped by route",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "departure", Usage: "departure port (substring)"},
			&cli.StringFlag{Name: "arrival", Usage: "arrival port (substring)"},
			&cli.StringFlag{Name: "company", Usage: "operating company (substring)"},
			&cli.StringFlag{Name: "after", Usage: "earliest departure time, HH:MM"},
			&cli.StringFlag{Name: "before", Usage: "latest departure time, HH:MM"},
			&cli.StringFlag{Name: "vehicles", Usage: "only sailings that do (true) or do not (false) carry vehicles"},
			&cli.StringFlag{Name: "bicycles", Usage: "only sailings that do (true) or do not (false) carry bicycles"},
			&cli.IntFlag{Name: "page", Value: ctdf.DefaultSearchPage},
			&cli.IntFlag{Name: "limit", Value: ctdf.DefaultSearchLimit},
			&cli.BoolFlag{Name: "json", Usage: "print the raw results as JSON"},
		},
		Action: func(c *cli.Context) error {
			params := ctdf.SailingSearchParams{
				Departure:          c.String("departure"),
				Arrival:            c.String("arrival"),
				Company:            c.String("company"),
				DepartureTimeStart: c.String("after"),
				DepartureTimeEnd:   c.String("before"),
				AllowsVehicles:     c.String("vehicles"),
				AllowsBicycles:     c.String("bicycles"),
				Page:               strconv.Itoa(c.Int("page")),
				Limit:              strconv.Itoa(c.Int("limit")),
			}

			searchQuery, err := params.Query()
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}

			if _, _, err := dataimporter.SetupLocal(c.String("config")); err != nil {
				return err
			}

			results, err := dataaggregator.Lookup[*ctdf.SailingSearchResults](query.Sailings{Query: searchQuery})
			if err != nil {
				return err
			}

			if c.Bool("json") {
				encoder := json.NewEncoder(c.App.Writer)
				encoder.SetIndent("", "  ")
				return encoder.Encode(results)
			}

			return PrintResults(c.App.Writer, results)
		},
	}
}

// PrintResults writes a plain text rendering of the grouped results.
func PrintResults(w io.Writer, results *ctdf.SailingSearchResults) error {
	fmt.Fprintf(w, "%d sailings (page %d of %d)\n", results.Total, results.Page, results.Pages)

	for _, group := range results.Groups {
		fmt.Fprintf(w, "\n%s  [%d sailings]", group.RouteKey, group.TotalSchedules)
		if group.MinPrice != nil {
			fmt.Fprintf(w, " from ¥%d", *group.MinPrice)
		}
		if group.DateLimited {
			fmt.Fprintf(w, " %s", ctdf.OperatingDaysDateLimited)
		}
		fmt.Fprintln(w)

		for _, sailing := range group.Sailings {
			fmt.Fprintf(w, "  %5s → %5s  %-16s %s  %s\n",
				sailing.DepartureTime,
				sailing.ArrivalTime,
				sailing.Duration(),
				sailing.Company,
				sailing.AdultFare,
			)
		}

		for _, note := range group.Notes {
			fmt.Fprintf(w, "  * %s\n", note)
		}
	}

	_, err := fmt.Fprintln(w)
	return err
}
