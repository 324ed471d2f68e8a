package dataimporter

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/setoferry/setoferry/pkg/config"
	"github.com/setoferry/setoferry/pkg/ctdf"
	"github.com/setoferry/setoferry/pkg/dataaggregator/global"
	"github.com/setoferry/setoferry/pkg/dataimporter/manager"
	"github.com/setoferry/setoferry/pkg/stats/calculator"
	"github.com/setoferry/setoferry/pkg/transforms"
	"github.com/urfave/cli/v2"
)

// SetupLocal loads config, transforms and the timetable for a one shot
// command and registers the local data sources without a results cache.
func SetupLocal(configPath string) (config.AppConfig, *ctdf.Timetable, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.AppConfig{}, nil, err
	}

	if err := transforms.SetupClient(cfg.Data.Transforms); err != nil {
		return config.AppConfig{}, nil, err
	}

	timetable, err := manager.LoadTimetable(cfg.Data)
	if err != nil {
		return config.AppConfig{}, nil, err
	}

	global.Setup(ctdf.NewTimetableStore(timetable), 0)

	return cfg, timetable, nil
}

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Load the timetable datasets and report unusable rows",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "exit non-zero when any anomaly is found",
			},
		},
		Action: func(c *cli.Context) error {
			_, timetable, err := SetupLocal(c.String("config"))
			if err != nil {
				return err
			}

			anomalies := calculator.FindAnomalies(timetable.Sailings)
			for _, anomaly := range anomalies {
				log.Warn().Int("index", anomaly.Index).Str("field", anomaly.Field).Str("value", anomaly.Value).Msg(anomaly.String())
			}

			log.Info().
				Int("sailings", len(timetable.Sailings)).
				Int("companies", len(timetable.Operators)).
				Int("ports", len(timetable.Stops)).
				Int("fares", len(timetable.Fares)).
				Int("anomalies", len(anomalies)).
				Msg("Timetable validated")

			if c.Bool("strict") && len(anomalies) > 0 {
				return cli.Exit(fmt.Sprintf("%d anomalies found", len(anomalies)), 1)
			}

			return nil
		},
	}
}
