package di

import (
	"go.uber.org/fx"

	"github.com/sucan/ordertrack/internal/app"
	"github.com/sucan/ordertrack/internal/catalog"
	"github.com/sucan/ordertrack/internal/config"
	"github.com/sucan/ordertrack/internal/logger"
	"github.com/sucan/ordertrack/internal/server/http/handlers"
	"github.com/sucan/ordertrack/internal/server/http/router"
	"github.com/sucan/ordertrack/internal/storage"
	"github.com/sucan/ordertrack/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		catalog.Module,
		storage.Module,
		usecase.Module,
		fx.Provide(func(f *app.TrackingFacade) handlers.TrackingFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
