package change

import "go.uber.org/fx"

var Module = fx.Module("change", fx.Provide(DefaultRegistry))
