package bootstrap

import (
	"stayfinder/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DataSourceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
