package fx

import "go.uber.org/fx"

// AppModule assembles the whole application.
var AppModule = fx.Options(
	ConfigModule,
	InfrastructureModule,
	DomainModule,
	PlatformModule,
	RoutesModule,
	ServerModule,
)
