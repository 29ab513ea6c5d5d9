package catalog

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/sucan/ordertrack/internal/config"
)

// Module wires the read-only catalog index for fx graphs.
var Module = fx.Provide(newIndex)

type indexParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// newIndex loads the catalog once at startup. A missing or empty catalog is
// logged but not fatal: the service still tracks existing orders.
func newIndex(p indexParams) (*Index, error) {
	records, err := LoadDir(p.Config.CatalogDir)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		p.Logger.Warn("no catalog records loaded", slog.String("dir", p.Config.CatalogDir))
	} else {
		p.Logger.Info("catalog loaded", slog.Int("records", len(records)), slog.String("dir", p.Config.CatalogDir))
	}
	return NewIndex(records), nil
}
