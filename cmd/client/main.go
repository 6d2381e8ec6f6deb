package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/lmittmann/tint"

	"reststate/internal/config"
	"reststate/internal/entity"
	"reststate/internal/models"
	"reststate/internal/rest"
	"reststate/internal/state"
	"reststate/internal/store"
	"reststate/internal/utils"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))
	slog.SetDefault(logger)

	logger.Info("Starting entity client",
		"apiUrl", cfg.Client.APIURL,
		"resource", cfg.Client.ResourcePath,
		"timeout", cfg.Client.RequestTimeout,
	)

	metrics := utils.NewMetricsCollector()
	system := actor.NewActorSystem()
	st := store.New(system, metrics)

	// Log every state transition as it is applied.
	if _, err := st.Subscribe(func(a state.Action, after state.EntityState) {
		logger.Debug("Action applied",
			"type", a.Type,
			"loading", after.Loading,
			"updating", after.Updating,
			"updateSuccess", after.UpdateSuccess,
			"error", after.ErrorMessage,
		)
	}); err != nil {
		logger.Error("Failed to subscribe to store", "error", err)
		os.Exit(1)
	}

	client := rest.NewClient(cfg.Client.APIURL, rest.Options{
		Timeout:           cfg.Client.RequestTimeout,
		RequestsPerSecond: cfg.Client.RequestsPerSecond,
		BearerToken:       cfg.Client.AuthToken,
		Metrics:           metrics,
	})
	service := entity.NewService(st, client, cfg.Client.ResourcePath)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := runCRUDCycle(ctx, logger, service); err != nil {
		logger.Error("CRUD cycle failed", "error", err)
		os.Exit(1)
	}

	dispatches, requests, errCount, uptime := metrics.Snapshot()
	logger.Info("Done",
		"dispatches", dispatches,
		"requests", requests,
		"errors", errCount,
		"elapsed", uptime,
	)
}

// runCRUDCycle exercises every operation once: list, create, fetch the
// created item, update it, and delete it.
func runCRUDCycle(ctx context.Context, logger *slog.Logger, service *entity.Service) error {
	listed, err := service.FetchEntities(ctx)
	if err != nil {
		return err
	}
	logger.Info("Fetched entity list", "count", len(listed.Entities))

	created, err := service.CreateEntity(ctx, models.Entity{
		Name:        "demo entity",
		Description: "created by cmd/client",
	})
	if err != nil {
		return err
	}
	logger.Info("Created entity", "id", created.Entity.ID, "total", len(created.Entities))

	fetched, err := service.FetchEntity(ctx, created.Entity.ID)
	if err != nil {
		return err
	}
	logger.Info("Fetched entity", "id", fetched.Entity.ID, "name", fetched.Entity.Name)

	updatedEntity := fetched.Entity
	updatedEntity.Description = "updated by cmd/client"
	updated, err := service.UpdateEntity(ctx, updatedEntity)
	if err != nil {
		return err
	}
	logger.Info("Updated entity", "id", updated.Entity.ID, "updateSuccess", updated.UpdateSuccess)

	deleted, err := service.DeleteEntity(ctx, updated.Entity.ID)
	if err != nil {
		return err
	}
	logger.Info("Deleted entity", "remaining", len(deleted.Entities), "updateSuccess", deleted.UpdateSuccess)

	return nil
}
