package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		fx.Annotate(changes, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(initCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(update, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(updateSQL, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(validate, fx.ResultTags(`group:"commands"`)),
		func() Connector { return OpenOracle },
	),
	fx.Invoke(Run),
)
