package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ridesync/ridesync/internal/auth"
	"github.com/ridesync/ridesync/internal/logger"
	"github.com/ridesync/ridesync/internal/server"
	"github.com/ridesync/ridesync/internal/store"
	memorystore "github.com/ridesync/ridesync/internal/store/memory"
	mongostore "github.com/ridesync/ridesync/internal/store/mongo"
)

type ServerCmd struct {
	// Server configuration
	Listen      string   `help:"HTTP server listen address" default:"0.0.0.0:5000" env:"RIDESYNC_LISTEN"`
	Environment string   `help:"deployment environment" default:"development" env:"RIDESYNC_ENV" enum:"production,development"`
	CORSOrigins []string `help:"allowed CORS origins" default:"http://localhost:5173" env:"RIDESYNC_CORS_ORIGINS"`

	// Session configuration
	SessionSecret string        `help:"secret key for HMAC signing of session tokens" env:"RIDESYNC_SESSION_SECRET"`
	SessionTTL    time.Duration `help:"session token TTL" default:"48h" env:"RIDESYNC_SESSION_TTL"`

	// Store configuration
	StoreType string     `help:"store type (mongo or memory)" default:"mongo" env:"RIDESYNC_STORE_TYPE" enum:"mongo,memory"`
	Mongo     MongoFlags `embed:"" prefix:"mongo-"`
}

type MongoFlags struct {
	URI            string        `help:"MongoDB connection URI" env:"RIDESYNC_MONGO_URI"`
	Database       string        `help:"MongoDB database name" default:"rideSyncDb" env:"RIDESYNC_MONGO_DATABASE"`
	ConnectTimeout time.Duration `help:"per-attempt connect timeout" default:"10s" env:"RIDESYNC_MONGO_CONNECT_TIMEOUT"`
	RetryAttempts  uint          `help:"connection retry attempts" default:"3" env:"RIDESYNC_MONGO_RETRY_ATTEMPTS"`
}

func (c *ServerCmd) Validate() error {
	if c.SessionSecret == "" {
		return errors.New("session secret is required (--session-secret or RIDESYNC_SESSION_SECRET)")
	}
	if len(c.SessionSecret) < 32 {
		return errors.New("session secret must be at least 32 bytes (256 bits) for HMAC-SHA256")
	}
	if c.StoreType == "mongo" && c.Mongo.URI == "" {
		return errors.New("MongoDB URI is required (--mongo-uri or RIDESYNC_MONGO_URI)")
	}
	return nil
}

func (c *ServerCmd) Run(globals *Globals) error {
	log := logger.Setup(globals.Debug)
	ctx := context.Background()

	log.Info().Str("version", globals.Version).Bool("debug", globals.Debug).Msg("Starting server")

	issuer, err := auth.NewIssuer(c.SessionSecret)
	if err != nil {
		return err
	}

	var (
		serviceStore store.ServiceStore
		bookingStore store.BookingStore
		pinger       store.Pinger
	)

	switch c.StoreType {
	case "mongo":
		client, err := mongostore.Connect(ctx, mongostore.Config{
			URI:            c.Mongo.URI,
			Database:       c.Mongo.Database,
			ConnectTimeout: c.Mongo.ConnectTimeout,
			RetryAttempts:  c.Mongo.RetryAttempts,
		})
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Error().Err(err).Msg("Failed to disconnect from MongoDB")
			}
		}()

		ss := mongostore.NewServiceStore(client, c.Mongo.Database)
		serviceStore = ss
		bookingStore = mongostore.NewBookingStore(client, c.Mongo.Database)
		pinger = ss
		log.Info().Msg("Using MongoDB document stores")

	default:
		serviceStore = memorystore.NewServiceStore()
		bookingStore = memorystore.NewBookingStore()
		log.Info().Msg("Using in-memory document stores")
	}

	srv := server.New(serviceStore, bookingStore, issuer, server.Config{
		Environment: auth.Environment(c.Environment),
		SessionTTL:  c.SessionTTL,
		CORSOrigins: c.CORSOrigins,
	})
	if pinger != nil {
		srv = srv.WithPinger(pinger)
	}

	httpServer := configureHTTPServer(c.Listen, srv.Handler(log))

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		log.Info().Msg("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Failed to shut down HTTP server")
		}
	}()

	log.Info().Str("addr", c.Listen).Str("environment", c.Environment).Msg("Starting HTTP server")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
