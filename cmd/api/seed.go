package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/harentsoaR/doctors-portal/internal/models"
	"github.com/harentsoaR/doctors-portal/internal/repository"
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the service catalog from a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			return runSeed(cmd.Context(), file)
		},
	}
	cmd.Flags().String("file", "seed/services.yaml", "YAML file listing the services")
	return cmd
}

type catalog struct {
	Services []models.Service `yaml:"services"`
}

func loadCatalog(path string) ([]models.Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for i, svc := range c.Services {
		if svc.Name == "" {
			return nil, fmt.Errorf("%s: service %d has no name", path, i)
		}
	}
	return c.Services, nil
}

func runSeed(ctx context.Context, path string) error {
	svcs, err := loadCatalog(path)
	if err != nil {
		return err
	}

	cfg, logger, client, err := bootstrap(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("startup failed")
		return err
	}
	defer disconnect(client, logger)

	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	db := client.Database(cfg.Database)
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		return err
	}
	svcRepo := repository.NewMongoServiceRepo(db)
	for i := range svcs {
		res, err := svcRepo.UpsertByName(ctx, &svcs[i])
		if err != nil {
			return err
		}
		logger.Info().
			Str("service", svcs[i].Name).
			Int("slots", len(svcs[i].Slots)).
			Bool("created", res.UpsertedCount > 0).
			Msg("service seeded")
	}
	logger.Info().Int("count", len(svcs)).Msg("seed complete")
	return nil
}
