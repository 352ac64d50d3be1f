package engine

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pseudomuto/orakeeper/pkg/change"
	"github.com/pseudomuto/orakeeper/pkg/config"
	"github.com/pseudomuto/orakeeper/pkg/sqlgen"
	"go.uber.org/fx"
)

var Module = fx.Module("engine", fx.Provide(NewBuilder))

// Builder creates an Engine for a project configuration.
type Builder func(*config.Config) (*Engine, error)

// NewBuilder returns a Builder sharing reg and gens between engines.
func NewBuilder(reg *change.Registry, gens *sqlgen.Factory) Builder {
	return func(cfg *config.Config) (*Engine, error) {
		d, err := cfg.NewDialect()
		if err != nil {
			return nil, errors.Wrap(err, "failed to create dialect")
		}

		return New(Params{
			Registry:   reg,
			Generators: gens,
			Dialect:    d,
			Workers:    cfg.Workers,
			Logger:     slog.Default(),
		}), nil
	}
}
