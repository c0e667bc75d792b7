// Package observability provides structured logging, Prometheus metrics, and health checks.
//
// # Overview
//
// This package centralizes observability infrastructure: JSON logging,
// request metrics, dependency health probes, and graceful shutdown.
//
// # Structured Logging
//
// Create logger:
//
//	logger := observability.NewLogger("info")
//	logger.WithField("port", 8000).Info("server started")
//
// # Prometheus Metrics
//
// Initialize metrics and mount the middleware and handler:
//
//	metrics := observability.NewMetrics(nil)
//	router.Use(metrics.Middleware)
//	router.Handle("/metrics", metrics.Handler())
//
// # Health Checks
//
// Configure health checker:
//
//	checker := observability.NewHealthChecker(db)
//	router.HandleFunc("/health", checker.Readiness)
//
// # Graceful Shutdown
//
//	sm := observability.NewShutdownManager(logger, server, 30*time.Second)
//	sm.RegisterShutdownFunc(func(ctx context.Context) error { return db.Close() })
//	sm.WaitForShutdown()
//
// # Related Packages
//
//   - pkg/config: Log level configuration
//   - pkg/httputil: Request logging middleware
package observability
