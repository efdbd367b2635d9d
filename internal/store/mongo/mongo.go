// Package mongo implements the document stores on MongoDB. Connection
// establishment retries with exponential backoff so that cold starts of a
// hosted cluster (e.g. Atlas) do not fail the whole process.
package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	serviceCollection = "service"
	bookingCollection = "booking"
)

// Config holds the MongoDB connection settings
type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
	RetryAttempts  uint
}

// Connect establishes a verified MongoDB connection. Each attempt connects
// and pings the deployment; attempts are retried with exponential backoff up
// to cfg.RetryAttempts before giving up.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, error) {
	if cfg.ConnectTimeout == 0 {
		cfg.ConnectTimeout = 10 * time.Second
	}
	if cfg.RetryAttempts == 0 {
		cfg.RetryAttempts = 3
	}

	attempt := func() (*mongo.Client, error) {
		client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI))
		if err != nil {
			return nil, fmt.Errorf("failed to create mongo client: %w", err)
		}

		pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()

		if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
			_ = client.Disconnect(ctx)
			log.Warn().Err(err).Msg("MongoDB ping failed, will retry")
			return nil, fmt.Errorf("failed to ping mongo deployment: %w", err)
		}

		return client, nil
	}

	client, err := backoff.Retry(ctx, attempt,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(cfg.RetryAttempts),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo after %d attempts: %w", cfg.RetryAttempts, err)
	}

	log.Info().Str("database", cfg.Database).Msg("Connected to MongoDB")
	return client, nil
}
