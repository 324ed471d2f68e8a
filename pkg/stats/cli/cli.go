package cli

import (
	"github.com/kr/pretty"
	"github.com/setoferry/setoferry/pkg/dataaggregator"
	"github.com/setoferry/setoferry/pkg/dataaggregator/query"
	"github.com/setoferry/setoferry/pkg/dataimporter"
	"github.com/setoferry/setoferry/pkg/stats/calculator"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Print statistics about the loaded timetable",
		Action: func(c *cli.Context) error {
			if _, _, err := dataimporter.SetupLocal(c.String("config")); err != nil {
				return err
			}

			stats, err := dataaggregator.Lookup[*calculator.TimetableStats](query.TimetableStats{})
			if err != nil {
				return err
			}

			pretty.Println(stats)

			return nil
		},
	}
}
