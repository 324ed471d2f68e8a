package redis_client

import (
	"context"
	"errors"
	"strconv"

	"github.com/adjust/rmq/v5"
	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/setoferry/setoferry/pkg/util"
)

var Client *redis.Client
var QueueConnection rmq.Connection

const defaultConnectionPassword = ""
const defaultDatabase = 0
const connectRetries = 5

var ErrNotConfigured = errors.New("redis configuration not set")

// Connect sets up Client and QueueConnection from SETOFERRY_REDIS_* environment
// variables. Redis is optional unless required is set: without an address the
// connection is skipped and Client stays nil.
func Connect(required bool) error {
	env := util.GetEnvironmentVariables()

	address := env["SETOFERRY_REDIS_ADDRESS"]
	password := defaultConnectionPassword
	database := defaultDatabase

	if address == "" {
		if required {
			return ErrNotConfigured
		}

		log.Info().Msg("Skipping Redis setup")
		return nil
	}

	if env["SETOFERRY_REDIS_PASSWORD"] != "" {
		password = env["SETOFERRY_REDIS_PASSWORD"]
	}

	if env["SETOFERRY_REDIS_DATABASE"] != "" {
		if n, err := strconv.Atoi(env["SETOFERRY_REDIS_DATABASE"]); err == nil {
			database = n
		} else {
			return err
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	if err := ConnectWithClient(client); err != nil {
		return err
	}

	log.Info().Str("address", address).Int("database", database).Msg("Redis client setup")

	return nil
}

// ConnectWithClient pings the client with exponential backoff and opens the
// queue connection on top of it.
func ConnectWithClient(client *redis.Client) error {
	ping := func() error {
		return client.Ping(context.Background()).Err()
	}

	retryBackoff := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), connectRetries)
	if err := backoff.Retry(ping, retryBackoff); err != nil {
		return err
	}

	queueConnection, err := rmq.OpenConnectionWithRedisClient("setoferry", client, nil)
	if err != nil {
		return err
	}

	Client = client
	QueueConnection = queueConnection

	return nil
}

func Connected() bool {
	return Client != nil
}
