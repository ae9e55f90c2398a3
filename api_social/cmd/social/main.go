package main

import (
	"context"
	"time"

	"stratagix/api_social/internal/accounts"
	"stratagix/api_social/internal/handlers"
	"stratagix/api_social/internal/insights"
	"stratagix/pkg/auth"
	"stratagix/pkg/cache"
	"stratagix/pkg/clients"
	"stratagix/pkg/config"
	"stratagix/pkg/database"
	"stratagix/pkg/logging"
	"stratagix/pkg/monitoring"
	"stratagix/pkg/server"
	"stratagix/pkg/version"
)

func main() {
	logger := logging.NewLoggerWithService("social")
	config.LoadEnv(logger)

	port := config.GetEnv("PORT", "18040")
	jwtSecret := config.RequireEnv("SUPABASE_JWT_SECRET")
	snapshotTTL := config.GetEnvDuration("SNAPSHOT_CACHE_TTL", 30*time.Second)

	healthChecker := monitoring.NewHealthChecker("social", version.Version)
	metricsCollector := monitoring.NewMetricsCollector("social", version.Version, version.GitCommit)

	healthChecker.AddCheck("config", monitoring.ConfigurationHealthCheck(map[string]string{
		"SUPABASE_JWT_SECRET": jwtSecret,
	}))

	var store handlers.AccountStore
	dbConfig := database.ConfigFromEnv()
	if dbConfig.URL != "" {
		db := database.MustConnect(context.Background(), dbConfig, logger)
		defer db.Close()
		if config.GetEnvBool("DB_APPLY_SCHEMA", false) {
			if err := database.ApplySchema(context.Background(), db); err != nil {
				logger.WithError(err).Fatal("Failed to apply schema")
			}
		}
		healthChecker.AddCheck("database", monitoring.DatabaseHealthCheck("postgres", db))

		execCfg := clients.DefaultExecutorConfig("social_accounts")
		execCfg.Logger = logger
		execCfg.OnStateChange = clients.BreakerMetrics(metricsCollector)
		store = accounts.NewPostgresStore(db, clients.NewExecutor[accounts.Account](execCfg))
	} else {
		links, err := accounts.ParseLinks(config.GetEnvList("SOCIAL_DEV_ACCOUNTS", nil))
		if err != nil {
			logger.WithError(err).Fatal("Invalid SOCIAL_DEV_ACCOUNTS")
		}
		logger.WithField("accounts", len(links)).Warn("DATABASE_URL not set, using in-memory social accounts")
		store = accounts.NewMemoryStore(links...)
	}

	cacheEvents := metricsCollector.NewCounter("snapshot_cache_events_total", "Insight snapshot cache events", []string{"outcome"})
	source := insights.NewCachedSource(insights.MockSource{}, snapshotTTL, func(o cache.Outcome) {
		cacheEvents.WithLabelValues(string(o)).Inc()
	})

	metrics := &handlers.SocialMetrics{
		Requests: metricsCollector.NewCounter("requests_total", "Social data requests by platform and outcome", []string{"platform", "outcome"}),
	}

	app := server.SetupServiceRouter(logger, "social", healthChecker, metricsCollector)
	handlers.NewSocialHandler(store, source, logger, metrics).Register(app, auth.NewJWTResolver(jwtSecret))

	serverConfig := server.DefaultConfig("social", port)
	if err := server.Start(serverConfig, app, logger); err != nil {
		logger.Fatal(err.Error())
	}
}
