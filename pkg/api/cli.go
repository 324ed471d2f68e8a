package api

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/setoferry/setoferry/pkg/config"
	"github.com/setoferry/setoferry/pkg/ctdf"
	"github.com/setoferry/setoferry/pkg/dataaggregator/global"
	"github.com/setoferry/setoferry/pkg/dataimporter/manager"
	"github.com/setoferry/setoferry/pkg/events"
	"github.com/setoferry/setoferry/pkg/redis_client"
	"github.com/setoferry/setoferry/pkg/transforms"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the ferry timetable web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Usage: "listen target for the web server, overrides the config file",
					},
					&cli.StringFlag{
						Name:  "events-queue",
						Value: events.DefaultQueueName,
						Usage: "queue to consume timetable reload requests from when Redis is configured",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}
					if c.String("listen") != "" {
						cfg.Server.Listen = c.String("listen")
					}

					if err := redis_client.Connect(false); err != nil {
						return err
					}
					if err := transforms.SetupClient(cfg.Data.Transforms); err != nil {
						return err
					}

					timetable, err := manager.LoadTimetable(cfg.Data)
					if err != nil {
						return err
					}
					store := ctdf.NewTimetableStore(timetable)

					global.Setup(store, cfg.Cache.Expiration)

					reload := func() error {
						_, err := manager.Reload(cfg.Data, store)
						return err
					}

					go reloadOnHangup(reload)

					if redis_client.Connected() {
						if err := events.StartReloadConsumer(redis_client.QueueConnection, c.String("events-queue"), reload); err != nil {
							return err
						}
					}

					return SetupServer(cfg)
				},
			},
		},
	}
}

func reloadOnHangup(reload func() error) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP)

	for range signals {
		log.Info().Msg("Received SIGHUP, reloading timetable")

		if err := reload(); err != nil {
			log.Error().Err(err).Msg("Failed to reload timetable, keeping the current one")
		}
	}
}
