package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// AutosaveStop if set is called during Shutdown to flush and stop the
	// autosave coordinator.
	AutosaveStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.AutosaveStop != nil {
		b.AutosaveStop()
		log.Println("Successfully stopped autosave coordinator")
	}

	err := b.Redis.Close()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Redis")

	err = b.Logger.Sync()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Logger")

	return nil
}
