package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/setoferry/setoferry/pkg/api"
	"github.com/setoferry/setoferry/pkg/config"
	"github.com/setoferry/setoferry/pkg/dataimporter"
	"github.com/setoferry/setoferry/pkg/events"
	"github.com/setoferry/setoferry/pkg/search"
	statscli "github.com/setoferry/setoferry/pkg/stats/cli"
	"github.com/urfave/cli/v2"
)

func main() {
	if os.Getenv("SETOFERRY_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if os.Getenv("SETOFERRY_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "setoferry",
		Description: "Ferry timetable search for the Seto Inland Sea islands",

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   config.DefaultConfigPath,
				Usage:   "path to the YAML config file",
				EnvVars: []string{"SETOFERRY_CONFIG"},
			},
		},

		Commands: []*cli.Command{
			api.RegisterCLI(),
			search.RegisterCLI(),
			statscli.RegisterCLI(),
			dataimporter.RegisterCLI(),
			events.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
