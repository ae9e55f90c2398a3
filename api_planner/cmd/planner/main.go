package main

import (
	"context"

	"stratagix/api_planner/internal/handlers"
	"stratagix/pkg/auth"
	"stratagix/pkg/config"
	"stratagix/pkg/logging"
	"stratagix/pkg/monitoring"
	"stratagix/pkg/provider"
	"stratagix/pkg/server"
	"stratagix/pkg/version"
)

func main() {
	logger := logging.NewLoggerWithService("planner")
	config.LoadEnv(logger)

	port := config.GetEnv("PORT", "18041")
	jwtSecret := config.RequireEnv("SUPABASE_JWT_SECRET")
	providerConfig := provider.ConfigFromEnv()

	healthChecker := monitoring.NewHealthChecker("planner", version.Version)
	metricsCollector := monitoring.NewMetricsCollector("planner", version.Version, version.GitCommit)

	healthChecker.AddCheck("config", monitoring.ConfigurationHealthCheck(map[string]string{
		"SUPABASE_JWT_SECRET": jwtSecret,
		"PLANNER_DATA_SOURCE": string(providerConfig.Source),
	}))

	ctx := context.Background()
	source, closeSource, err := provider.Open(ctx, providerConfig, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open data source")
	}
	defer closeSource()

	snapshot, err := provider.Load(ctx, source)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load planner data")
	}
	logger.WithFields(logging.Fields{
		"source":        providerConfig.Source,
		"content_items": snapshot.Registry.Len(),
		"trends":        len(snapshot.Trends),
	}).Info("Planner data loaded")
	healthChecker.AddCheck("content", monitoring.DatasetHealthCheck("content items", snapshot.Registry.Len))
	healthChecker.AddCheck("trends", monitoring.DatasetHealthCheck("trends", func() int { return len(snapshot.Trends) }))

	metrics := &handlers.PlannerMetrics{
		Queries: metricsCollector.NewCounter("queries_total", "Planner queries by endpoint and outcome", []string{"endpoint", "outcome"}),
	}

	app := server.SetupServiceRouter(logger, "planner", healthChecker, metricsCollector)
	handlers.NewPlannerHandler(snapshot, logger, metrics, nil).Register(app, auth.NewJWTResolver(jwtSecret))

	serverConfig := server.DefaultConfig("planner", port)
	if err := server.Start(serverConfig, app, logger); err != nil {
		logger.Fatal(err.Error())
	}
}
