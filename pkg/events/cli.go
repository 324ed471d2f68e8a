package events

import (
	"github.com/rs/zerolog/log"
	"github.com/setoferry/setoferry/pkg/ctdf"
	"github.com/setoferry/setoferry/pkg/redis_client"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "events",
		Usage: "Publish timetable events to running servers",
		Subcommands: []*cli.Command{
			{
				Name:  "reload",
				Usage: "ask running web api servers to reload the timetable",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "queue",
						Value: DefaultQueueName,
						Usage: "events queue the servers consume",
					},
				},
				Action: func(c *cli.Context) error {
					if err := redis_client.Connect(true); err != nil {
						return err
					}

					err := Publish(redis_client.QueueConnection, c.String("queue"), &ctdf.Event{
						Type: ctdf.EventTypeTimetableReloadRequested,
					})
					if err != nil {
						return err
					}

					log.Info().Str("queue", c.String("queue")).Msg("Published timetable reload request")

					return nil
				},
			},
		},
	}
}
