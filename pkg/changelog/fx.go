package changelog

import "go.uber.org/fx"

var Module = fx.Module("changelog", fx.Provide(NewParser))
