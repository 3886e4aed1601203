package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harentsoaR/doctors-portal/internal/config"
	"github.com/harentsoaR/doctors-portal/internal/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	rootCmd := &cobra.Command{
		Use:          "doctors-portal",
		Short:        "Doctors Portal booking API",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap loads the configuration, builds the logger and connects to
// MongoDB. The caller owns the returned client.
func bootstrap(ctx context.Context) (*config.Config, zerolog.Logger, *mongo.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), nil, fmt.Errorf("load config: %w", err)
	}
	l := logger.New(cfg.Env, cfg.LogLevel)

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, l, nil, fmt.Errorf("connect to MongoDB: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, l, nil, fmt.Errorf("ping MongoDB: %w", err)
	}
	l.Info().Str("database", cfg.Database).Msg("connected to MongoDB")
	return cfg, l, client, nil
}

// disconnect closes client within a short deadline and logs any failure.
func disconnect(client *mongo.Client, logger zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		logger.Error().Err(err).Msg("disconnect from MongoDB")
	}
}
