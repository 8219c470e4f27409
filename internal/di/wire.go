//go:build wireinject

package di

import (
	"github.com/google/wire"

	"dsa-tutor/internal/adapter/leetcode"
	"dsa-tutor/internal/adapter/logging"
	"dsa-tutor/internal/app"
	"dsa-tutor/internal/config"
	"dsa-tutor/internal/domain/ports"
	"dsa-tutor/internal/usecase"
)

var loggingSet = wire.NewSet(
	provideSlogLogger,
	logging.New,
	wire.Bind(new(ports.Logger), new(*logging.SLogger)),
)

var resolverSet = wire.NewSet(
	provideRegistry,
	provideResolverMetrics,
	provideProblemCache,
	provideLeetCode,
	provideCodeforces,
	provideProblemResolver,
)

// InitializeApp wires the HTTP server and its scheduler together.
func InitializeApp() (*app.App, func(), error) {
	wire.Build(
		validatedConfig,
		loggingSet,
		resolverSet,
		provideHTTPMetrics,
		provideStore,
		provideCompleter,
		wire.Bind(new(ports.DailyProblemProvider), new(*leetcode.Client)),
		wire.Bind(new(usecase.ProblemPrimer), new(*usecase.ProblemResolver)),
		usecase.NewDailyWarmup,
		provideTutorChat,
		provideConversations,
		provideAccounts,
		provideRouter,
		provideAppSettings,
		provideApp,
	)
	return nil, nil, nil
}

// InitializeResolver wires only what is needed to fetch problems, without a database or model key.
func InitializeResolver() (*usecase.ProblemResolver, error) {
	wire.Build(
		config.Load,
		loggingSet,
		resolverSet,
	)
	return nil, nil
}
