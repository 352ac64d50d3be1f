package sqlgen

import "go.uber.org/fx"

var Module = fx.Module("sqlgen", fx.Provide(DefaultFactory))
