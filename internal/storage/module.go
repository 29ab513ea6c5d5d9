package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/sucan/ordertrack/internal/config"
	"github.com/sucan/ordertrack/internal/domain/repository"
	"github.com/sucan/ordertrack/internal/storage/jsonfile"
	"github.com/sucan/ordertrack/internal/storage/postgres"
)

// Module provides the order store. The JSON file store is the default; a
// configured DATABASE_URI switches to the database-backed store with the
// same document schema.
var Module = fx.Provide(newOrderStore)

type storeParams struct {
	fx.In

	Ctx       context.Context
	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newOrderStore(p storeParams) (repository.OrderStore, error) {
	if p.Config.DatabaseURI == "" {
		p.Logger.Info("using file-backed order store", slog.String("path", p.Config.OrdersFile))
		return jsonfile.New(p.Config.OrdersFile, p.Logger), nil
	}

	store, err := postgres.New(p.Ctx, p.Config.DatabaseURI, p.Logger)
	if err != nil {
		return nil, err
	}
	p.Logger.Info("using database-backed order store")
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			store.Close()
			return nil
		},
	})
	return store, nil
}
