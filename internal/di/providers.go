package di

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"dsa-tutor/internal/adapter/auth"
	"dsa-tutor/internal/adapter/cache"
	"dsa-tutor/internal/adapter/codeforces"
	"dsa-tutor/internal/adapter/gemini"
	"dsa-tutor/internal/adapter/httpapi"
	"dsa-tutor/internal/adapter/leetcode"
	"dsa-tutor/internal/adapter/logging"
	"dsa-tutor/internal/adapter/metrics"
	"dsa-tutor/internal/adapter/storage/sqlite"
	"dsa-tutor/internal/app"
	"dsa-tutor/internal/config"
	"dsa-tutor/internal/domain/ports"
	"dsa-tutor/internal/usecase"
)

func provideSlogLogger(cfg *config.Config) *slog.Logger {
	return logging.NewJSON(os.Stdout, cfg.LogLevel)
}

func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func provideResolverMetrics(reg *prometheus.Registry) (*metrics.Resolver, error) {
	return metrics.NewResolver(reg)
}

func provideHTTPMetrics(reg *prometheus.Registry) (*metrics.HTTP, error) {
	return metrics.NewHTTP(reg)
}

func provideProblemCache(cfg *config.Config) (*cache.ProblemLRU, error) {
	return cache.NewProblemLRU(cfg.ProblemCacheSize)
}

func provideLeetCode(cfg *config.Config, logger ports.Logger) *leetcode.Client {
	return leetcode.New(cfg.ScrapeTimeout, logger)
}

func provideCodeforces(cfg *config.Config, logger ports.Logger) *codeforces.Client {
	return codeforces.New(cfg.ScrapeTimeout, logger)
}

func provideProblemResolver(
	problemCache *cache.ProblemLRU,
	resolverMetrics *metrics.Resolver,
	logger ports.Logger,
	lc *leetcode.Client,
	cf *codeforces.Client,
) *usecase.ProblemResolver {
	return usecase.NewProblemResolver(problemCache, resolverMetrics, logger, []ports.ProblemScraper{lc, cf})
}

func provideStore(cfg *config.Config, logger ports.Logger) (*sqlite.Store, func(), error) {
	store, err := sqlite.Open(context.Background(), cfg.DatabasePath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Error(context.Background(), "failed to close database", "error", err)
		}
	}
	return store, cleanup, nil
}

func provideCompleter(cfg *config.Config, logger ports.Logger) (*gemini.Completer, error) {
	return gemini.New(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, logger)
}

func provideTutorChat(
	cfg *config.Config,
	resolver *usecase.ProblemResolver,
	completer *gemini.Completer,
	store *sqlite.Store,
	logger ports.Logger,
) *usecase.TutorChat {
	return usecase.NewTutorChat(resolver, completer, store.Chats(), logger, cfg.HistoryWindow)
}

func provideConversations(store *sqlite.Store, logger ports.Logger) *usecase.Conversations {
	return usecase.NewConversations(store.Chats(), logger)
}

func provideAccounts(cfg *config.Config, store *sqlite.Store, logger ports.Logger) *usecase.Accounts {
	return usecase.NewAccounts(
		store.Users(),
		auth.NewBcryptHasher(0),
		auth.NewJWTIssuer(cfg.JWTSecret),
		cfg.TokenTTL,
		logger,
	)
}

func provideRouter(
	resolver *usecase.ProblemResolver,
	warmup *usecase.DailyWarmup,
	tutor *usecase.TutorChat,
	conversations *usecase.Conversations,
	accounts *usecase.Accounts,
	reg *prometheus.Registry,
	httpMetrics *metrics.HTTP,
	logger ports.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	return httpapi.NewRouter(httpapi.Deps{
		Problems:      resolver,
		Daily:         warmup,
		Tutor:         tutor,
		Conversations: conversations,
		Accounts:      accounts,
		Gatherer:      reg,
		Observer:      httpMetrics,
		Logger:        logger,
	})
}

func provideAppSettings(cfg *config.Config) app.Settings {
	return app.Settings{
		Addr:     cfg.HTTPAddr,
		Schedule: cfg.WarmupCron,
	}
}

func provideApp(settings app.Settings, router *gin.Engine, warmup *usecase.DailyWarmup, logger ports.Logger) *app.App {
	return app.New(settings, router, warmup, logger)
}

func validatedConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
